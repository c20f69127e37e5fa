package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tibas2004/Trabalho1-HugoAntunes32120-RicardoLaranjeira32121/internal/apperr"
	"github.com/tibas2004/Trabalho1-HugoAntunes32120-RicardoLaranjeira32121/internal/models"
	"github.com/tibas2004/Trabalho1-HugoAntunes32120-RicardoLaranjeira32121/internal/store"
	"github.com/tibas2004/Trabalho1-HugoAntunes32120-RicardoLaranjeira32121/internal/views"
)

type ShareHandler struct{ Store *store.Store }

func NewShareHandler(s *store.Store) *ShareHandler { return &ShareHandler{Store: s} }

// Routes is mounted under /shares.
func (h *ShareHandler) Routes(r chi.Router) {
	r.Get("/", serve(h.list))
	r.Post("/", serve(h.create))
	r.Get("/{shareId}", serve(h.get))
	r.Put("/{shareId}", serve(h.update))
	r.Delete("/{shareId}", serve(h.delete))
}

type shareCreate struct {
	SenderUserID    uint  `json:"senderUserId" validate:"required"`
	RecipientUserID uint  `json:"recipientUserId" validate:"required"`
	MovieID         *uint `json:"movieId"`
	SeriesID        *uint `json:"seriesId"`
}

// The sender of a share is fixed once it is created.
type shareUpdate struct {
	RecipientUserID *uint `json:"recipientUserId" validate:"omitnil,gt=0"`
	MovieID         *uint `json:"movieId"`
	SeriesID        *uint `json:"seriesId"`
}

func (h *ShareHandler) list(r *http.Request) (result, error) {
	shares, err := h.Store.ListShares(r.Context())
	if err != nil {
		return result{}, apperr.Internal(err)
	}
	return ok(views.Map(shares, views.Share)), nil
}

func (h *ShareHandler) get(r *http.Request) (result, error) {
	id, err := pathID(r, "shareId")
	if err != nil {
		return result{}, err
	}
	sh, err := h.Store.GetShare(r.Context(), id)
	if err != nil {
		return result{}, apperr.Read(err, msgShareNotFound)
	}
	return ok(views.Share(sh)), nil
}

func (h *ShareHandler) create(r *http.Request) (result, error) {
	var b shareCreate
	if err := decode(r, &b); err != nil {
		return result{}, err
	}
	ctx := r.Context()
	movieID, seriesID := optionalID(b.MovieID), optionalID(b.SeriesID)
	if err := requireRow(ctx, h.Store.UserExists, b.SenderUserID, msgSenderNotFound); err != nil {
		return result{}, err
	}
	if err := requireRow(ctx, h.Store.UserExists, b.RecipientUserID, msgRecipientNotFound); err != nil {
		return result{}, err
	}
	if err := h.checkTitles(ctx, movieID, seriesID); err != nil {
		return result{}, err
	}
	sh := &models.Share{
		SenderUserID:    b.SenderUserID,
		RecipientUserID: b.RecipientUserID,
		MovieID:         movieID,
		SeriesID:        seriesID,
	}
	if err := h.Store.CreateShare(ctx, sh); err != nil {
		return result{}, apperr.Create("", err)
	}
	return created(views.Share(sh)), nil
}

func (h *ShareHandler) update(r *http.Request) (result, error) {
	id, err := pathID(r, "shareId")
	if err != nil {
		return result{}, err
	}
	var b shareUpdate
	if err := decodeUpdate(r, &b); err != nil {
		return result{}, err
	}
	ctx := r.Context()
	fields := map[string]any{}
	if b.RecipientUserID != nil {
		if err := requireRow(ctx, h.Store.UserExists, *b.RecipientUserID, msgRecipientNotFound); err != nil {
			return result{}, err
		}
		fields["recipient_user_id"] = *b.RecipientUserID
	}
	// A zero id clears the reference.
	movieID, seriesID := optionalID(b.MovieID), optionalID(b.SeriesID)
	if err := h.checkTitles(ctx, movieID, seriesID); err != nil {
		return result{}, err
	}
	if b.MovieID != nil {
		fields["movie_id"] = movieID
	}
	if b.SeriesID != nil {
		fields["series_id"] = seriesID
	}
	sh, err := h.Store.UpdateShare(ctx, id, fields)
	if err != nil {
		return result{}, apperr.Write(msgShareNotFound, err)
	}
	return ok(views.Share(sh)), nil
}

func (h *ShareHandler) delete(r *http.Request) (result, error) {
	id, err := pathID(r, "shareId")
	if err != nil {
		return result{}, err
	}
	if err := h.Store.DeleteShare(r.Context(), id); err != nil {
		return result{}, apperr.Write(msgShareNotFound, err)
	}
	return message(msgShareRemoved), nil
}

func (h *ShareHandler) checkTitles(ctx context.Context, movieID, seriesID *uint) error {
	if movieID != nil {
		if err := requireRow(ctx, h.Store.MovieExists, *movieID, msgMovieNotFound); err != nil {
			return err
		}
	}
	if seriesID != nil {
		if err := requireRow(ctx, h.Store.SeriesExists, *seriesID, msgSeriesNotFound); err != nil {
			return err
		}
	}
	return nil
}
