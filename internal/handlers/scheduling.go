package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tibas2004/Trabalho1-HugoAntunes32120-RicardoLaranjeira32121/internal/apperr"
	"github.com/tibas2004/Trabalho1-HugoAntunes32120-RicardoLaranjeira32121/internal/models"
	"github.com/tibas2004/Trabalho1-HugoAntunes32120-RicardoLaranjeira32121/internal/store"
	"github.com/tibas2004/Trabalho1-HugoAntunes32120-RicardoLaranjeira32121/internal/views"
)

type SchedulingHandler struct{ Store *store.Store }

func NewSchedulingHandler(s *store.Store) *SchedulingHandler { return &SchedulingHandler{Store: s} }

// Routes is mounted under /scheduling.
func (h *SchedulingHandler) Routes(r chi.Router) {
	r.Get("/", serve(h.list))
	r.Post("/", serve(h.create))
	r.Get("/{eventId}", serve(h.get))
	r.Put("/{eventId}", serve(h.update))
	r.Delete("/{eventId}", serve(h.delete))
}

// An event may point at a movie, a series, both or neither.
type eventCreate struct {
	UserID    uint    `json:"userId" validate:"required"`
	MovieID   *uint   `json:"movieId"`
	SeriesID  *uint   `json:"seriesId"`
	EventDate string  `json:"eventDate" validate:"required"`
	Note      *string `json:"note"`
}

// Only the date and the note of an event can change.
type eventUpdate struct {
	EventDate *string `json:"eventDate"`
	Note      *string `json:"note"`
}

func (h *SchedulingHandler) list(r *http.Request) (result, error) {
	events, err := h.Store.ListEvents(r.Context())
	if err != nil {
		return result{}, apperr.Internal(err)
	}
	return ok(views.Map(events, views.Event)), nil
}

func (h *SchedulingHandler) get(r *http.Request) (result, error) {
	id, err := pathID(r, "eventId")
	if err != nil {
		return result{}, err
	}
	e, err := h.Store.GetEvent(r.Context(), id)
	if err != nil {
		return result{}, apperr.Read(err, msgEventNotFound)
	}
	return ok(views.Event(e)), nil
}

func (h *SchedulingHandler) create(r *http.Request) (result, error) {
	var b eventCreate
	if err := decode(r, &b); err != nil {
		return result{}, err
	}
	when, err := parseDate(b.EventDate)
	if err != nil {
		return result{}, err
	}
	ctx := r.Context()
	movieID, seriesID := optionalID(b.MovieID), optionalID(b.SeriesID)
	if err := requireRow(ctx, h.Store.UserExists, b.UserID, msgUserNotFound); err != nil {
		return result{}, err
	}
	if movieID != nil {
		if err := requireRow(ctx, h.Store.MovieExists, *movieID, msgMovieNotFound); err != nil {
			return result{}, err
		}
	}
	if seriesID != nil {
		if err := requireRow(ctx, h.Store.SeriesExists, *seriesID, msgSeriesNotFound); err != nil {
			return result{}, err
		}
	}
	e := &models.SchedulingEvent{
		UserID:    b.UserID,
		MovieID:   movieID,
		SeriesID:  seriesID,
		EventDate: when,
		Note:      optionalText(b.Note),
	}
	if err := h.Store.CreateEvent(ctx, e); err != nil {
		return result{}, apperr.Create("", err)
	}
	return created(views.Event(e)), nil
}

func (h *SchedulingHandler) update(r *http.Request) (result, error) {
	id, err := pathID(r, "eventId")
	if err != nil {
		return result{}, err
	}
	var b eventUpdate
	if err := decodeUpdate(r, &b); err != nil {
		return result{}, err
	}
	fields := map[string]any{}
	if givenDate(b.EventDate) {
		when, err := parseDate(*b.EventDate)
		if err != nil {
			return result{}, err
		}
		fields["event_date"] = when
	}
	if b.Note != nil {
		fields["note"] = optionalText(b.Note)
	}
	e, err := h.Store.UpdateEvent(r.Context(), id, fields)
	if err != nil {
		return result{}, apperr.Write(msgEventNotFound, err)
	}
	return ok(views.Event(e)), nil
}

func (h *SchedulingHandler) delete(r *http.Request) (result, error) {
	id, err := pathID(r, "eventId")
	if err != nil {
		return result{}, err
	}
	if err := h.Store.DeleteEvent(r.Context(), id); err != nil {
		return result{}, apperr.Write(msgEventNotFound, err)
	}
	return message(msgEventRemoved), nil
}
