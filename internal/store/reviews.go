package store

import (
	"context"

	"github.com/tibas2004/Trabalho1-HugoAntunes32120-RicardoLaranjeira32121/internal/models"
)

var (
	withUser   = []string{"User"}
	withMovie  = []string{"Movie"}
	withSeries = []string{"Series"}
)

// Ratings

func (s *Store) ListMovieRatings(ctx context.Context, movieID uint) ([]models.MovieRating, error) {
	return findWhere[models.MovieRating](ctx, s.DB, withUser, "movie_id = ?", movieID)
}

func (s *Store) GetMovieRating(ctx context.Context, id uint) (*models.MovieRating, error) {
	return first[models.MovieRating](ctx, s.DB, id, withUser...)
}

func (s *Store) CreateMovieRating(ctx context.Context, r *models.MovieRating) error {
	return create(ctx, s.DB, r)
}

func (s *Store) UpdateMovieRating(ctx context.Context, id uint, fields map[string]any) (*models.MovieRating, error) {
	return update[models.MovieRating](ctx, s.DB, id, fields, withUser...)
}

func (s *Store) DeleteMovieRating(ctx context.Context, id uint) error {
	return remove[models.MovieRating](ctx, s.DB, id)
}

func (s *Store) ListSeriesRatings(ctx context.Context, seriesID uint) ([]models.SeriesRating, error) {
	return findWhere[models.SeriesRating](ctx, s.DB, withUser, "series_id = ?", seriesID)
}

func (s *Store) GetSeriesRating(ctx context.Context, id uint) (*models.SeriesRating, error) {
	return first[models.SeriesRating](ctx, s.DB, id, withUser...)
}

func (s *Store) CreateSeriesRating(ctx context.Context, r *models.SeriesRating) error {
	return create(ctx, s.DB, r)
}

func (s *Store) UpdateSeriesRating(ctx context.Context, id uint, fields map[string]any) (*models.SeriesRating, error) {
	return update[models.SeriesRating](ctx, s.DB, id, fields, withUser...)
}

func (s *Store) DeleteSeriesRating(ctx context.Context, id uint) error {
	return remove[models.SeriesRating](ctx, s.DB, id)
}

// Notes

func (s *Store) ListMovieNotes(ctx context.Context, movieID uint) ([]models.MovieNote, error) {
	return findWhere[models.MovieNote](ctx, s.DB, withUser, "movie_id = ?", movieID)
}

func (s *Store) GetMovieNote(ctx context.Context, id uint) (*models.MovieNote, error) {
	return first[models.MovieNote](ctx, s.DB, id, withUser...)
}

func (s *Store) CreateMovieNote(ctx context.Context, n *models.MovieNote) error {
	return create(ctx, s.DB, n)
}

func (s *Store) UpdateMovieNote(ctx context.Context, id uint, fields map[string]any) (*models.MovieNote, error) {
	return update[models.MovieNote](ctx, s.DB, id, fields, withUser...)
}

func (s *Store) DeleteMovieNote(ctx context.Context, id uint) error {
	return remove[models.MovieNote](ctx, s.DB, id)
}

// ListMovieNotesByUser loads every movie note written by userID with the
// movie it belongs to.
func (s *Store) ListMovieNotesByUser(ctx context.Context, userID uint) ([]models.MovieNote, error) {
	return findWhere[models.MovieNote](ctx, s.DB, withMovie, "user_id = ?", userID)
}

// FindMovieNoteOfUser returns gorm.ErrRecordNotFound unless noteID exists
// and was written by userID.
func (s *Store) FindMovieNoteOfUser(ctx context.Context, userID, noteID uint) (*models.MovieNote, error) {
	var n models.MovieNote
	err := s.DB.WithContext(ctx).Preload("Movie").
		Where("user_id = ? AND note_id = ?", userID, noteID).First(&n).Error
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (s *Store) ListSeriesNotes(ctx context.Context, seriesID uint) ([]models.SeriesNote, error) {
	return findWhere[models.SeriesNote](ctx, s.DB, withUser, "series_id = ?", seriesID)
}

func (s *Store) GetSeriesNote(ctx context.Context, id uint) (*models.SeriesNote, error) {
	return first[models.SeriesNote](ctx, s.DB, id, withUser...)
}

func (s *Store) CreateSeriesNote(ctx context.Context, n *models.SeriesNote) error {
	return create(ctx, s.DB, n)
}

func (s *Store) UpdateSeriesNote(ctx context.Context, id uint, fields map[string]any) (*models.SeriesNote, error) {
	return update[models.SeriesNote](ctx, s.DB, id, fields, withUser...)
}

func (s *Store) DeleteSeriesNote(ctx context.Context, id uint) error {
	return remove[models.SeriesNote](ctx, s.DB, id)
}

func (s *Store) ListSeriesNotesByUser(ctx context.Context, userID uint) ([]models.SeriesNote, error) {
	return findWhere[models.SeriesNote](ctx, s.DB, withSeries, "user_id = ?", userID)
}

func (s *Store) FindSeriesNoteOfUser(ctx context.Context, userID, noteID uint) (*models.SeriesNote, error) {
	var n models.SeriesNote
	err := s.DB.WithContext(ctx).Preload("Series").
		Where("user_id = ? AND note_id = ?", userID, noteID).First(&n).Error
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// Comments

func (s *Store) ListMovieComments(ctx context.Context, movieID uint) ([]models.MovieComment, error) {
	return findWhere[models.MovieComment](ctx, s.DB, withUser, "movie_id = ?", movieID)
}

// GetMovieComment loads the comment with its author and movie.
func (s *Store) GetMovieComment(ctx context.Context, id uint) (*models.MovieComment, error) {
	return first[models.MovieComment](ctx, s.DB, id, "User", "Movie")
}

func (s *Store) CreateMovieComment(ctx context.Context, c *models.MovieComment) error {
	return create(ctx, s.DB, c)
}

func (s *Store) UpdateMovieComment(ctx context.Context, id uint, fields map[string]any) (*models.MovieComment, error) {
	return update[models.MovieComment](ctx, s.DB, id, fields, withUser...)
}

func (s *Store) DeleteMovieComment(ctx context.Context, id uint) error {
	return remove[models.MovieComment](ctx, s.DB, id)
}

func (s *Store) ListMovieCommentsByUser(ctx context.Context, userID uint) ([]models.MovieComment, error) {
	return findWhere[models.MovieComment](ctx, s.DB, withMovie, "user_id = ?", userID)
}

func (s *Store) ListSeriesComments(ctx context.Context, seriesID uint) ([]models.SeriesComment, error) {
	return findWhere[models.SeriesComment](ctx, s.DB, withUser, "series_id = ?", seriesID)
}

func (s *Store) GetSeriesComment(ctx context.Context, id uint) (*models.SeriesComment, error) {
	return first[models.SeriesComment](ctx, s.DB, id, "User", "Series")
}

func (s *Store) CreateSeriesComment(ctx context.Context, c *models.SeriesComment) error {
	return create(ctx, s.DB, c)
}

func (s *Store) UpdateSeriesComment(ctx context.Context, id uint, fields map[string]any) (*models.SeriesComment, error) {
	return update[models.SeriesComment](ctx, s.DB, id, fields, withUser...)
}

func (s *Store) DeleteSeriesComment(ctx context.Context, id uint) error {
	return remove[models.SeriesComment](ctx, s.DB, id)
}

func (s *Store) ListSeriesCommentsByUser(ctx context.Context, userID uint) ([]models.SeriesComment, error) {
	return findWhere[models.SeriesComment](ctx, s.DB, withSeries, "user_id = ?", userID)
}
