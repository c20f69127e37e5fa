package views

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tibas2004/Trabalho1-HugoAntunes32120-RicardoLaranjeira32121/internal/models"
)

var (
	created = time.Date(2024, 3, 5, 10, 11, 12, 0, time.Local)
	updated = time.Date(2024, 3, 6, 1, 2, 3, 0, time.Local)
)

func TestUserOmitsPassword(t *testing.T) {
	u := &models.User{ID: 1, Name: "Ana", Email: "a@x.com", Password: "hash", CreatedAt: created, UpdatedAt: updated}
	b, err := json.Marshal(User(u))
	require.NoError(t, err)
	assert.JSONEq(t, `{"UserId":1,"Name":"Ana","Email":"a@x.com","CreatedAt":"05-03-2024 10:11:12","UpdatedAt":"06-03-2024 01:02:03"}`, string(b))
}

func TestMovieDates(t *testing.T) {
	m := &models.Movie{ID: 2, Title: "Inception", Genre: "Sci-Fi", ReleaseDate: time.Date(2010, 7, 16, 0, 0, 0, 0, time.Local), CreatedAt: created, UpdatedAt: updated}
	v := Movie(m)
	assert.Equal(t, "16-07-2010", v.ReleaseDate)
	assert.Equal(t, "05-03-2024 10:11:12", v.CreatedAt)
	assert.Nil(t, v.Description)
}

func TestMovieDetailCategories(t *testing.T) {
	m := &models.Movie{ID: 2, Title: "Inception", CategoryRelations: []models.MovieCategoryRelation{
		{MovieID: 2, MovieCategoryID: 4, Category: models.MovieCategory{ID: 4, Name: "Sci-Fi"}},
	}}
	b, err := json.Marshal(MovieDetail(m))
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, "Inception", got["Title"])
	assert.Equal(t, []any{map[string]any{"MovieCategoryId": float64(4), "Name": "Sci-Fi"}}, got["Categories"])

	empty := MovieDetail(&models.Movie{ID: 3})
	assert.NotNil(t, empty.Categories)
}

func TestRatingUserJoin(t *testing.T) {
	r := &models.MovieRating{ID: 1, UserID: 1, MovieID: 2, Rating: 8}
	assert.Nil(t, MovieRating(r).User)

	r.User = models.User{ID: 1, Name: "Ana", Email: "a@x.com"}
	assert.Equal(t, &UserRef{Name: "Ana", Email: "a@x.com"}, MovieRating(r).User)

	b, err := json.Marshal(MovieRating(&models.MovieRating{ID: 1}))
	require.NoError(t, err)
	assert.NotContains(t, string(b), `"User"`)
}

func TestUserNotesFlatten(t *testing.T) {
	mn := &models.MovieNote{ID: 5, NoteText: "rever", Movie: models.Movie{Title: "Inception"}}
	sn := &models.SeriesNote{ID: 6, NoteText: "ver T2", Series: models.Series{Title: "Dark"}}

	assert.Equal(t, UserNoteView{NoteId: 5, Type: "Movie", RelatedTitle: "Inception", NoteText: "rever",
		CreatedAt: "NaN-NaN-NaN NaN:NaN:NaN", UpdatedAt: "NaN-NaN-NaN NaN:NaN:NaN"}, UserMovieNote(mn))
	assert.Equal(t, "Series", UserSeriesNote(sn).Type)
	assert.Equal(t, "Dark", UserSeriesNote(sn).RelatedTitle)
}

func TestEventTitles(t *testing.T) {
	mid := uint(2)
	e := &models.SchedulingEvent{ID: 1, UserID: 1, MovieID: &mid, EventDate: created, Movie: &models.Movie{Title: "Inception"}}
	v := Event(e)
	assert.Equal(t, "05-03-2024 10:11:12", v.EventDate)
	assert.Equal(t, &TitleRef{Title: "Inception"}, v.Movie)
	assert.Nil(t, v.Series)

	b, err := json.Marshal(v)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"Series":null`)
}

func TestShareJoins(t *testing.T) {
	s := &models.Share{ID: 1, SenderUserID: 1, RecipientUserID: 2, CreatedAt: created,
		RecipientUser: models.User{ID: 2, Name: "Rui", Email: "r@x.com"},
		Series:        &models.Series{Title: "Dark", Genre: "Sci-Fi"}}
	v := Share(s)
	assert.Nil(t, v.SenderUser)
	assert.Equal(t, "Rui", v.RecipientUser.Name)
	assert.Equal(t, &TitleGenreRef{Title: "Dark", Genre: "Sci-Fi"}, v.Series)
	assert.Nil(t, v.Movie)
}

func TestMap(t *testing.T) {
	out := Map([]models.MovieCategory(nil), MovieCategory)
	assert.NotNil(t, out)
	assert.Empty(t, out)

	out = Map([]models.MovieCategory{{ID: 1, Name: "Drama"}, {ID: 2, Name: "Comédia"}}, MovieCategory)
	require.Len(t, out, 2)
	assert.Equal(t, "Comédia", out[1].Name)
}
