package views

import (
	"github.com/tibas2004/Trabalho1-HugoAntunes32120-RicardoLaranjeira32121/internal/datefmt"
	"github.com/tibas2004/Trabalho1-HugoAntunes32120-RicardoLaranjeira32121/internal/models"
)

type MovieView struct {
	MovieId     uint
	Title       string
	Genre       string
	ReleaseDate string
	Description *string
	CreatedAt   string
	UpdatedAt   string
}

type MovieCategoryRef struct {
	MovieCategoryId uint
	Name            string
}

// MovieDetailView is the single-movie shape, with its categories.
type MovieDetailView struct {
	MovieView
	Categories []MovieCategoryRef
}

func Movie(m *models.Movie) MovieView {
	return MovieView{
		MovieId:     m.ID,
		Title:       m.Title,
		Genre:       m.Genre,
		ReleaseDate: datefmt.Date(m.ReleaseDate),
		Description: m.Description,
		CreatedAt:   datefmt.DateTime(m.CreatedAt),
		UpdatedAt:   datefmt.DateTime(m.UpdatedAt),
	}
}

func MovieDetail(m *models.Movie) MovieDetailView {
	cats := make([]MovieCategoryRef, 0, len(m.CategoryRelations))
	for _, rel := range m.CategoryRelations {
		cats = append(cats, MovieCategoryRef{MovieCategoryId: rel.MovieCategoryID, Name: rel.Category.Name})
	}
	return MovieDetailView{MovieView: Movie(m), Categories: cats}
}

type SeriesView struct {
	SeriesId     uint
	Title        string
	Genre        string
	ReleaseDate  string
	Description  *string
	SeasonsCount int
	CreatedAt    string
	UpdatedAt    string
}

type SeriesCategoryRef struct {
	SeriesCategoryId uint
	Name             string
}

type SeriesDetailView struct {
	SeriesView
	Categories []SeriesCategoryRef
}

func Series(s *models.Series) SeriesView {
	return SeriesView{
		SeriesId:     s.ID,
		Title:        s.Title,
		Genre:        s.Genre,
		ReleaseDate:  datefmt.Date(s.ReleaseDate),
		Description:  s.Description,
		SeasonsCount: s.SeasonsCount,
		CreatedAt:    datefmt.DateTime(s.CreatedAt),
		UpdatedAt:    datefmt.DateTime(s.UpdatedAt),
	}
}

func SeriesDetail(s *models.Series) SeriesDetailView {
	cats := make([]SeriesCategoryRef, 0, len(s.CategoryRelations))
	for _, rel := range s.CategoryRelations {
		cats = append(cats, SeriesCategoryRef{SeriesCategoryId: rel.SeriesCategoryID, Name: rel.Category.Name})
	}
	return SeriesDetailView{SeriesView: Series(s), Categories: cats}
}

type MovieCategoryView struct {
	MovieCategoryId uint
	Name            string
	CreatedAt       string
	UpdatedAt       string
}

func MovieCategory(c *models.MovieCategory) MovieCategoryView {
	return MovieCategoryView{
		MovieCategoryId: c.ID,
		Name:            c.Name,
		CreatedAt:       datefmt.DateTime(c.CreatedAt),
		UpdatedAt:       datefmt.DateTime(c.UpdatedAt),
	}
}

type SeriesCategoryView struct {
	SeriesCategoryId uint
	Name             string
	CreatedAt        string
	UpdatedAt        string
}

func SeriesCategory(c *models.SeriesCategory) SeriesCategoryView {
	return SeriesCategoryView{
		SeriesCategoryId: c.ID,
		Name:             c.Name,
		CreatedAt:        datefmt.DateTime(c.CreatedAt),
		UpdatedAt:        datefmt.DateTime(c.UpdatedAt),
	}
}
