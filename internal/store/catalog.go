package store

import (
	"context"

	"github.com/tibas2004/Trabalho1-HugoAntunes32120-RicardoLaranjeira32121/internal/metrics"
	"github.com/tibas2004/Trabalho1-HugoAntunes32120-RicardoLaranjeira32121/internal/models"
)

const categoriesPreload = "CategoryRelations.Category"

// Movies

func (s *Store) ListMovies(ctx context.Context) ([]models.Movie, error) {
	return findWhere[models.Movie](ctx, s.DB, nil, nil)
}

// GetMovie loads a movie with its categories.
func (s *Store) GetMovie(ctx context.Context, id uint) (*models.Movie, error) {
	return first[models.Movie](ctx, s.DB, id, categoriesPreload)
}

// CreateMovie inserts the movie and one relation row per category id in a
// single create.
func (s *Store) CreateMovie(ctx context.Context, m *models.Movie, categoryIDs []uint) error {
	m.CategoryRelations = make([]models.MovieCategoryRelation, 0, len(categoryIDs))
	for _, id := range categoryIDs {
		m.CategoryRelations = append(m.CategoryRelations, models.MovieCategoryRelation{MovieCategoryID: id})
	}
	return s.DB.WithContext(ctx).Create(m).Error
}

func (s *Store) UpdateMovie(ctx context.Context, id uint, fields map[string]any) (*models.Movie, error) {
	return update[models.Movie](ctx, s.DB, id, fields)
}

func (s *Store) DeleteMovie(ctx context.Context, id uint) error {
	return remove[models.Movie](ctx, s.DB, id)
}

func (s *Store) MovieExists(ctx context.Context, id uint) (bool, error) {
	return exists[models.Movie](ctx, s.DB, "movie", id)
}

// Series

func (s *Store) ListSeries(ctx context.Context) ([]models.Series, error) {
	return findWhere[models.Series](ctx, s.DB, nil, nil)
}

func (s *Store) GetSeries(ctx context.Context, id uint) (*models.Series, error) {
	return first[models.Series](ctx, s.DB, id, categoriesPreload)
}

func (s *Store) CreateSeries(ctx context.Context, sr *models.Series, categoryIDs []uint) error {
	sr.CategoryRelations = make([]models.SeriesCategoryRelation, 0, len(categoryIDs))
	for _, id := range categoryIDs {
		sr.CategoryRelations = append(sr.CategoryRelations, models.SeriesCategoryRelation{SeriesCategoryID: id})
	}
	return s.DB.WithContext(ctx).Create(sr).Error
}

func (s *Store) UpdateSeries(ctx context.Context, id uint, fields map[string]any) (*models.Series, error) {
	return update[models.Series](ctx, s.DB, id, fields)
}

func (s *Store) DeleteSeries(ctx context.Context, id uint) error {
	return remove[models.Series](ctx, s.DB, id)
}

func (s *Store) SeriesExists(ctx context.Context, id uint) (bool, error) {
	return exists[models.Series](ctx, s.DB, "series", id)
}

// Categories

func (s *Store) ListMovieCategories(ctx context.Context) ([]models.MovieCategory, error) {
	return findWhere[models.MovieCategory](ctx, s.DB, nil, nil)
}

func (s *Store) GetMovieCategory(ctx context.Context, id uint) (*models.MovieCategory, error) {
	return first[models.MovieCategory](ctx, s.DB, id)
}

func (s *Store) CreateMovieCategory(ctx context.Context, c *models.MovieCategory) error {
	return create(ctx, s.DB, c)
}

func (s *Store) UpdateMovieCategory(ctx context.Context, id uint, fields map[string]any) (*models.MovieCategory, error) {
	return update[models.MovieCategory](ctx, s.DB, id, fields)
}

func (s *Store) DeleteMovieCategory(ctx context.Context, id uint) error {
	return remove[models.MovieCategory](ctx, s.DB, id)
}

// CountMovieCategories returns how many of ids name an existing category.
// Duplicate ids count once.
func (s *Store) CountMovieCategories(ctx context.Context, ids []uint) (int64, error) {
	var n int64
	err := s.DB.WithContext(ctx).Model(&models.MovieCategory{}).
		Where("movie_category_id IN ?", ids).Count(&n).Error
	recordBatch("movie_category", n, len(ids), err)
	return n, err
}

func (s *Store) ListSeriesCategories(ctx context.Context) ([]models.SeriesCategory, error) {
	return findWhere[models.SeriesCategory](ctx, s.DB, nil, nil)
}

func (s *Store) GetSeriesCategory(ctx context.Context, id uint) (*models.SeriesCategory, error) {
	return first[models.SeriesCategory](ctx, s.DB, id)
}

func (s *Store) CreateSeriesCategory(ctx context.Context, c *models.SeriesCategory) error {
	return create(ctx, s.DB, c)
}

func (s *Store) UpdateSeriesCategory(ctx context.Context, id uint, fields map[string]any) (*models.SeriesCategory, error) {
	return update[models.SeriesCategory](ctx, s.DB, id, fields)
}

func (s *Store) DeleteSeriesCategory(ctx context.Context, id uint) error {
	return remove[models.SeriesCategory](ctx, s.DB, id)
}

func (s *Store) CountSeriesCategories(ctx context.Context, ids []uint) (int64, error) {
	var n int64
	err := s.DB.WithContext(ctx).Model(&models.SeriesCategory{}).
		Where("series_category_id IN ?", ids).Count(&n).Error
	recordBatch("series_category", n, len(ids), err)
	return n, err
}

func recordBatch(entity string, found int64, want int, err error) {
	if err != nil {
		metrics.ReferenceChecks.WithLabelValues(entity, "error").Inc()
		return
	}
	metrics.ReferenceChecks.WithLabelValues(entity, outcome(found == int64(want))).Inc()
}
