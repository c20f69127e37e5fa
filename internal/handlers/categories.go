package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tibas2004/Trabalho1-HugoAntunes32120-RicardoLaranjeira32121/internal/apperr"
	"github.com/tibas2004/Trabalho1-HugoAntunes32120-RicardoLaranjeira32121/internal/models"
	"github.com/tibas2004/Trabalho1-HugoAntunes32120-RicardoLaranjeira32121/internal/store"
	"github.com/tibas2004/Trabalho1-HugoAntunes32120-RicardoLaranjeira32121/internal/views"
)

// CategoryHandler serves both /movie-categories and /series-categories.
type CategoryHandler struct{ Store *store.Store }

func NewCategoryHandler(s *store.Store) *CategoryHandler { return &CategoryHandler{Store: s} }

func (h *CategoryHandler) MovieRoutes(r chi.Router) {
	r.Get("/", serve(h.listMovie))
	r.Post("/", serve(h.createMovie))
	r.Get("/{categoryId}", serve(h.getMovie))
	r.Put("/{categoryId}", serve(h.updateMovie))
	r.Delete("/{categoryId}", serve(h.deleteMovie))
}

func (h *CategoryHandler) SeriesRoutes(r chi.Router) {
	r.Get("/", serve(h.listSeries))
	r.Post("/", serve(h.createSeries))
	r.Get("/{categoryId}", serve(h.getSeries))
	r.Put("/{categoryId}", serve(h.updateSeries))
	r.Delete("/{categoryId}", serve(h.deleteSeries))
}

type categoryCreate struct {
	Name string `json:"name" validate:"required"`
}

type categoryUpdate struct {
	Name *string `json:"name" validate:"omitnil,min=1"`
}

func (b categoryUpdate) fields() map[string]any {
	fields := map[string]any{}
	if b.Name != nil {
		fields["name"] = *b.Name
	}
	return fields
}

func (h *CategoryHandler) listMovie(r *http.Request) (result, error) {
	cats, err := h.Store.ListMovieCategories(r.Context())
	if err != nil {
		return result{}, apperr.Internal(err)
	}
	return ok(views.Map(cats, views.MovieCategory)), nil
}

func (h *CategoryHandler) getMovie(r *http.Request) (result, error) {
	id, err := pathID(r, "categoryId")
	if err != nil {
		return result{}, err
	}
	c, err := h.Store.GetMovieCategory(r.Context(), id)
	if err != nil {
		return result{}, apperr.Read(err, msgCategoryNotFound)
	}
	return ok(views.MovieCategory(c)), nil
}

func (h *CategoryHandler) createMovie(r *http.Request) (result, error) {
	var b categoryCreate
	if err := decode(r, &b); err != nil {
		return result{}, err
	}
	c := &models.MovieCategory{Name: b.Name}
	if err := h.Store.CreateMovieCategory(r.Context(), c); err != nil {
		return result{}, apperr.Create(msgCategoryCreate, err)
	}
	return created(views.MovieCategory(c)), nil
}

func (h *CategoryHandler) updateMovie(r *http.Request) (result, error) {
	id, err := pathID(r, "categoryId")
	if err != nil {
		return result{}, err
	}
	var b categoryUpdate
	if err := decodeUpdate(r, &b); err != nil {
		return result{}, err
	}
	c, err := h.Store.UpdateMovieCategory(r.Context(), id, b.fields())
	if err != nil {
		return result{}, apperr.Write(msgCategoryNotFound, err)
	}
	return ok(views.MovieCategory(c)), nil
}

func (h *CategoryHandler) deleteMovie(r *http.Request) (result, error) {
	id, err := pathID(r, "categoryId")
	if err != nil {
		return result{}, err
	}
	if err := h.Store.DeleteMovieCategory(r.Context(), id); err != nil {
		return result{}, apperr.Write(msgCategoryNotFound, err)
	}
	return message(msgCategoryDeleted), nil
}

func (h *CategoryHandler) listSeries(r *http.Request) (result, error) {
	cats, err := h.Store.ListSeriesCategories(r.Context())
	if err != nil {
		return result{}, apperr.Internal(err)
	}
	return ok(views.Map(cats, views.SeriesCategory)), nil
}

func (h *CategoryHandler) getSeries(r *http.Request) (result, error) {
	id, err := pathID(r, "categoryId")
	if err != nil {
		return result{}, err
	}
	c, err := h.Store.GetSeriesCategory(r.Context(), id)
	if err != nil {
		return result{}, apperr.Read(err, msgCategoryNotFound)
	}
	return ok(views.SeriesCategory(c)), nil
}

func (h *CategoryHandler) createSeries(r *http.Request) (result, error) {
	var b categoryCreate
	if err := decode(r, &b); err != nil {
		return result{}, err
	}
	c := &models.SeriesCategory{Name: b.Name}
	if err := h.Store.CreateSeriesCategory(r.Context(), c); err != nil {
		return result{}, apperr.Create(msgCategoryCreate, err)
	}
	return created(views.SeriesCategory(c)), nil
}

func (h *CategoryHandler) updateSeries(r *http.Request) (result, error) {
	id, err := pathID(r, "categoryId")
	if err != nil {
		return result{}, err
	}
	var b categoryUpdate
	if err := decodeUpdate(r, &b); err != nil {
		return result{}, err
	}
	c, err := h.Store.UpdateSeriesCategory(r.Context(), id, b.fields())
	if err != nil {
		return result{}, apperr.Write(msgCategoryNotFound, err)
	}
	return ok(views.SeriesCategory(c)), nil
}

func (h *CategoryHandler) deleteSeries(r *http.Request) (result, error) {
	id, err := pathID(r, "categoryId")
	if err != nil {
		return result{}, err
	}
	if err := h.Store.DeleteSeriesCategory(r.Context(), id); err != nil {
		return result{}, apperr.Write(msgCategoryNotFound, err)
	}
	return message(msgCategoryDeleted), nil
}
