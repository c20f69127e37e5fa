package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tibas2004/Trabalho1-HugoAntunes32120-RicardoLaranjeira32121/internal/apperr"
	"github.com/tibas2004/Trabalho1-HugoAntunes32120-RicardoLaranjeira32121/internal/models"
	"github.com/tibas2004/Trabalho1-HugoAntunes32120-RicardoLaranjeira32121/internal/store"
	"github.com/tibas2004/Trabalho1-HugoAntunes32120-RicardoLaranjeira32121/internal/views"
)

type SeriesHandler struct{ Store *store.Store }

func NewSeriesHandler(s *store.Store) *SeriesHandler { return &SeriesHandler{Store: s} }

// Routes is mounted under /series.
func (h *SeriesHandler) Routes(r chi.Router) {
	r.Get("/", serve(h.list))
	r.Post("/", serve(h.create))
	r.Get("/{seriesId}", serve(h.get))
	r.Put("/{seriesId}", serve(h.update))
	r.Delete("/{seriesId}", serve(h.delete))

	r.Get("/{seriesId}/ratings", serve(h.listRatings))
	r.Post("/{seriesId}/rating", serve(h.createRating))
	r.Get("/{seriesId}/rating/{ratingId}", serve(h.getRating))
	r.Put("/{seriesId}/rating/{ratingId}", serve(h.updateRating))
	r.Delete("/{seriesId}/rating/{ratingId}", serve(h.deleteRating))

	r.Get("/{seriesId}/notes", serve(h.listNotes))
	r.Post("/{seriesId}/notes", serve(h.createNote))
	r.Get("/{seriesId}/notes/{noteId}", serve(h.getNote))
	r.Put("/{seriesId}/notes/{noteId}", serve(h.updateNote))
	r.Delete("/{seriesId}/notes/{noteId}", serve(h.deleteNote))

	r.Get("/{seriesId}/comments", serve(h.listComments))
	r.Post("/{seriesId}/comments", serve(h.createComment))
	r.Get("/{seriesId}/comments/{commentId}", serve(h.getComment))
	r.Put("/{seriesId}/comments/{commentId}", serve(h.updateComment))
	r.Delete("/{seriesId}/comments/{commentId}", serve(h.deleteComment))
}

type seriesCreate struct {
	Title        string  `json:"title" validate:"required"`
	Genre        string  `json:"genre" validate:"required"`
	ReleaseDate  string  `json:"releaseDate" validate:"required"`
	Description  *string `json:"description"`
	SeasonsCount int     `json:"seasonsCount" validate:"gte=0"`
	CategoryIDs  []uint  `json:"categoryIds"`
}

type seriesUpdate struct {
	Title        *string `json:"title" validate:"omitnil,min=1"`
	Genre        *string `json:"genre" validate:"omitnil,min=1"`
	ReleaseDate  *string `json:"releaseDate"`
	Description  *string `json:"description"`
	SeasonsCount *int    `json:"seasonsCount" validate:"omitnil,gte=0"`
}

func (h *SeriesHandler) list(r *http.Request) (result, error) {
	series, err := h.Store.ListSeries(r.Context())
	if err != nil {
		return result{}, apperr.Internal(err)
	}
	return ok(views.Map(series, views.Series)), nil
}

func (h *SeriesHandler) get(r *http.Request) (result, error) {
	id, err := pathID(r, "seriesId")
	if err != nil {
		return result{}, err
	}
	s, err := h.Store.GetSeries(r.Context(), id)
	if err != nil {
		return result{}, apperr.Read(err, msgSeriesNotFound)
	}
	return ok(views.SeriesDetail(s)), nil
}

func (h *SeriesHandler) create(r *http.Request) (result, error) {
	var b seriesCreate
	if err := decode(r, &b); err != nil {
		return result{}, err
	}
	released, err := parseDate(b.ReleaseDate)
	if err != nil {
		return result{}, err
	}
	ctx := r.Context()
	if len(b.CategoryIDs) > 0 {
		n, err := h.Store.CountSeriesCategories(ctx, b.CategoryIDs)
		if err != nil {
			return result{}, apperr.Internal(err)
		}
		if n != int64(len(b.CategoryIDs)) {
			return result{}, apperr.Invalid(msgCategoriesMissing)
		}
	}
	s := &models.Series{
		Title:        b.Title,
		Genre:        b.Genre,
		ReleaseDate:  released,
		Description:  optionalText(b.Description),
		SeasonsCount: b.SeasonsCount,
	}
	if err := h.Store.CreateSeries(ctx, s, b.CategoryIDs); err != nil {
		return result{}, apperr.Create(msgSeriesCreate, err)
	}
	return created(views.Series(s)), nil
}

func (h *SeriesHandler) update(r *http.Request) (result, error) {
	id, err := pathID(r, "seriesId")
	if err != nil {
		return result{}, err
	}
	var b seriesUpdate
	if err := decodeUpdate(r, &b); err != nil {
		return result{}, err
	}
	fields, err := titleFields(b.Title, b.Genre, b.ReleaseDate, b.Description)
	if err != nil {
		return result{}, err
	}
	if b.SeasonsCount != nil {
		fields["seasons_count"] = *b.SeasonsCount
	}
	s, err := h.Store.UpdateSeries(r.Context(), id, fields)
	if err != nil {
		return result{}, apperr.Write(msgSeriesUpdate, err)
	}
	return ok(views.Series(s)), nil
}

func (h *SeriesHandler) delete(r *http.Request) (result, error) {
	id, err := pathID(r, "seriesId")
	if err != nil {
		return result{}, err
	}
	if err := h.Store.DeleteSeries(r.Context(), id); err != nil {
		return result{}, apperr.Write(msgSeriesNotFound, err)
	}
	return message(msgSeriesDeleted), nil
}
