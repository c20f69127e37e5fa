package store

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/tibas2004/Trabalho1-HugoAntunes32120-RicardoLaranjeira32121/internal/metrics"
	"github.com/tibas2004/Trabalho1-HugoAntunes32120-RicardoLaranjeira32121/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	ctx := context.Background()
	db, err := Open(ctx, DriverSQLite, ":memory:", nil)
	require.NoError(t, err)
	s := New(db)
	require.NoError(t, s.Migrate(ctx))
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func seedUser(t *testing.T, s *Store, email string) *models.User {
	t.Helper()
	u := &models.User{Name: "Ana", Email: email, Password: "hash"}
	require.NoError(t, s.CreateUser(context.Background(), u))
	return u
}

func seedMovie(t *testing.T, s *Store, title string, categoryIDs ...uint) *models.Movie {
	t.Helper()
	m := &models.Movie{Title: title, Genre: "Drama", ReleaseDate: time.Date(2010, 7, 16, 0, 0, 0, 0, time.Local)}
	require.NoError(t, s.CreateMovie(context.Background(), m, categoryIDs))
	return m
}

func count[T any](t *testing.T, s *Store) int64 {
	t.Helper()
	var n int64
	require.NoError(t, s.DB.Model(new(T)).Count(&n).Error)
	return n
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), "mysql", "dsn", nil)
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestUsers(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := seedUser(t, s, "a@x.com")
	assert.NotZero(t, u.ID)
	assert.False(t, u.CreatedAt.IsZero())

	got, err := s.GetUserByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = s.GetUserByEmail(ctx, "nobody@x.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	err = s.CreateUser(ctx, &models.User{Name: "Dup", Email: "a@x.com", Password: "x"})
	assert.Error(t, err)

	list, err := s.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestListEmptyIsNotNil(t *testing.T) {
	s := newTestStore(t)
	movies, err := s.ListMovies(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, movies)
	assert.Empty(t, movies)
}

func TestUpdateIsPartial(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	m := seedMovie(t, s, "Inception")

	updated, err := s.UpdateMovie(ctx, m.ID, map[string]any{"title": "Inception (2010)"})
	require.NoError(t, err)
	assert.Equal(t, "Inception (2010)", updated.Title)
	assert.Equal(t, "Drama", updated.Genre)
	assert.True(t, updated.ReleaseDate.Equal(m.ReleaseDate))

	same, err := s.UpdateMovie(ctx, m.ID, map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, "Inception (2010)", same.Title)

	_, err = s.UpdateMovie(ctx, 999, map[string]any{"title": "x"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteMissing(t *testing.T) {
	s := newTestStore(t)
	assert.ErrorIs(t, s.DeleteMovie(context.Background(), 42), gorm.ErrRecordNotFound)
	assert.ErrorIs(t, s.DeleteShare(context.Background(), 42), gorm.ErrRecordNotFound)
}

func TestExistsRecordsMetric(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	u := seedUser(t, s, "a@x.com")

	before := testutil.ToFloat64(metrics.ReferenceChecks.WithLabelValues("user", "missing"))

	ok, err := s.UserExists(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.UserExists(ctx, u.ID+100)
	require.NoError(t, err)
	assert.False(t, ok)

	after := testutil.ToFloat64(metrics.ReferenceChecks.WithLabelValues("user", "missing"))
	assert.Equal(t, before+1, after)

	ok, err = s.MovieExists(ctx, 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMovieCategories(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	drama := &models.MovieCategory{Name: "Drama"}
	scifi := &models.MovieCategory{Name: "Sci-Fi"}
	require.NoError(t, s.CreateMovieCategory(ctx, drama))
	require.NoError(t, s.CreateMovieCategory(ctx, scifi))

	n, err := s.CountMovieCategories(ctx, []uint{drama.ID, scifi.ID, 999})
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	m := seedMovie(t, s, "Inception", drama.ID, scifi.ID)
	got, err := s.GetMovie(ctx, m.ID)
	require.NoError(t, err)
	require.Len(t, got.CategoryRelations, 2)
	names := []string{got.CategoryRelations[0].Category.Name, got.CategoryRelations[1].Category.Name}
	assert.ElementsMatch(t, []string{"Drama", "Sci-Fi"}, names)

	// Unknown category ids are rejected by the foreign key.
	err = s.CreateMovie(ctx, &models.Movie{Title: "Bad", Genre: "x", ReleaseDate: time.Now()}, []uint{999})
	assert.Error(t, err)
}

func TestRatingCheckConstraint(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	u := seedUser(t, s, "a@x.com")
	m := seedMovie(t, s, "Inception")

	err := s.CreateMovieRating(ctx, &models.MovieRating{UserID: u.ID, MovieID: m.ID, Rating: 11})
	assert.Error(t, err)
	assert.Zero(t, count[models.MovieRating](t, s))

	r := &models.MovieRating{UserID: u.ID, MovieID: m.ID, Rating: 8}
	require.NoError(t, s.CreateMovieRating(ctx, r))

	got, err := s.GetMovieRating(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.User.Name)
}

func TestDeleteMovieCascades(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	u := seedUser(t, s, "a@x.com")
	other := seedUser(t, s, "b@x.com")
	cat := &models.MovieCategory{Name: "Drama"}
	require.NoError(t, s.CreateMovieCategory(ctx, cat))
	m := seedMovie(t, s, "Inception", cat.ID)

	require.NoError(t, s.CreateMovieRating(ctx, &models.MovieRating{UserID: u.ID, MovieID: m.ID, Rating: 7}))
	require.NoError(t, s.CreateMovieNote(ctx, &models.MovieNote{UserID: u.ID, MovieID: m.ID, NoteText: "rever"}))
	require.NoError(t, s.CreateMovieComment(ctx, &models.MovieComment{UserID: u.ID, MovieID: m.ID, CommentText: "ótimo"}))
	require.NoError(t, s.CreateEvent(ctx, &models.SchedulingEvent{UserID: u.ID, MovieID: &m.ID, EventDate: time.Now()}))
	require.NoError(t, s.CreateShare(ctx, &models.Share{SenderUserID: u.ID, RecipientUserID: other.ID, MovieID: &m.ID}))

	require.NoError(t, s.DeleteMovie(ctx, m.ID))

	assert.Zero(t, count[models.MovieRating](t, s))
	assert.Zero(t, count[models.MovieNote](t, s))
	assert.Zero(t, count[models.MovieComment](t, s))
	assert.Zero(t, count[models.SchedulingEvent](t, s))
	assert.Zero(t, count[models.Share](t, s))
	assert.Zero(t, count[models.MovieCategoryRelation](t, s))
	assert.EqualValues(t, 1, count[models.MovieCategory](t, s))
	assert.EqualValues(t, 2, count[models.User](t, s))
}

func TestDeleteUserCascades(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	u := seedUser(t, s, "a@x.com")
	other := seedUser(t, s, "b@x.com")
	m := seedMovie(t, s, "Inception")

	require.NoError(t, s.CreateMovieRating(ctx, &models.MovieRating{UserID: u.ID, MovieID: m.ID, Rating: 7}))
	require.NoError(t, s.CreateShare(ctx, &models.Share{SenderUserID: other.ID, RecipientUserID: u.ID}))

	require.NoError(t, s.DeleteUser(ctx, u.ID))
	assert.Zero(t, count[models.MovieRating](t, s))
	assert.Zero(t, count[models.Share](t, s))
	assert.EqualValues(t, 1, count[models.Movie](t, s))
}

func TestNotesOfUser(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	u := seedUser(t, s, "a@x.com")
	other := seedUser(t, s, "b@x.com")
	m := seedMovie(t, s, "Inception")

	n := &models.MovieNote{UserID: u.ID, MovieID: m.ID, NoteText: "rever"}
	require.NoError(t, s.CreateMovieNote(ctx, n))

	got, err := s.FindMovieNoteOfUser(ctx, u.ID, n.ID)
	require.NoError(t, err)
	assert.Equal(t, "Inception", got.Movie.Title)

	_, err = s.FindMovieNoteOfUser(ctx, other.ID, n.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	list, err := s.ListMovieNotesByUser(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Inception", list[0].Movie.Title)

	series, err := s.ListSeriesNotesByUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, series)
}

func TestEventsAndShares(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	u := seedUser(t, s, "a@x.com")
	other := seedUser(t, s, "b@x.com")
	m := seedMovie(t, s, "Inception")

	e := &models.SchedulingEvent{UserID: u.ID, MovieID: &m.ID, EventDate: time.Now().Add(24 * time.Hour)}
	require.NoError(t, s.CreateEvent(ctx, e))
	require.NotNil(t, e.Movie)
	assert.Equal(t, "Inception", e.Movie.Title)
	assert.Nil(t, e.Series)

	note := "com pipocas"
	updated, err := s.UpdateEvent(ctx, e.ID, map[string]any{"note": note})
	require.NoError(t, err)
	require.NotNil(t, updated.Note)
	assert.Equal(t, note, *updated.Note)

	byUser, err := s.ListEventsByUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Len(t, byUser, 1)

	sh := &models.Share{SenderUserID: u.ID, RecipientUserID: other.ID, MovieID: &m.ID}
	require.NoError(t, s.CreateShare(ctx, sh))

	sent, err := s.ListSharesSent(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, sent, 1)
	assert.Equal(t, "b@x.com", sent[0].RecipientUser.Email)

	received, err := s.ListSharesReceived(ctx, other.ID)
	require.NoError(t, err)
	require.Len(t, received, 1)
	assert.Equal(t, "a@x.com", received[0].SenderUser.Email)

	none, err := s.ListSharesReceived(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, none)
}
