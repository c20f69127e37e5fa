package handlers

import (
	"net/http"

	"github.com/tibas2004/Trabalho1-HugoAntunes32120-RicardoLaranjeira32121/internal/apperr"
	"github.com/tibas2004/Trabalho1-HugoAntunes32120-RicardoLaranjeira32121/internal/models"
	"github.com/tibas2004/Trabalho1-HugoAntunes32120-RicardoLaranjeira32121/internal/views"
)

type noteCreate struct {
	UserID   uint   `json:"userId" validate:"required"`
	NoteText string `json:"noteText" validate:"required"`
}

type noteUpdate struct {
	NoteText *string `json:"noteText" validate:"omitnil,min=1"`
}

func noteFields(b noteUpdate) map[string]any {
	fields := map[string]any{}
	if b.NoteText != nil {
		fields["note_text"] = *b.NoteText
	}
	return fields
}

// Movie notes

func (h *MovieHandler) listNotes(r *http.Request) (result, error) {
	movieID, err := pathID(r, "movieId")
	if err != nil {
		return result{}, err
	}
	notes, err := h.Store.ListMovieNotes(r.Context(), movieID)
	if err != nil {
		return result{}, apperr.Internal(err)
	}
	return ok(views.Map(notes, views.MovieNote)), nil
}

func (h *MovieHandler) createNote(r *http.Request) (result, error) {
	movieID, err := pathID(r, "movieId")
	if err != nil {
		return result{}, err
	}
	var b noteCreate
	if err := decode(r, &b); err != nil {
		return result{}, err
	}
	ctx := r.Context()
	if err := requireRow(ctx, h.Store.UserExists, b.UserID, msgUserNotFound); err != nil {
		return result{}, err
	}
	if err := requireRow(ctx, h.Store.MovieExists, movieID, msgMovieNotFound); err != nil {
		return result{}, err
	}
	note := &models.MovieNote{UserID: b.UserID, MovieID: movieID, NoteText: b.NoteText}
	if err := h.Store.CreateMovieNote(ctx, note); err != nil {
		return result{}, apperr.Create("", err)
	}
	return created(views.MovieNote(note)), nil
}

func (h *MovieHandler) movieNote(r *http.Request, fail lookupFailed) (*models.MovieNote, error) {
	movieID, noteID, err := pathIDs(r, "movieId", "noteId")
	if err != nil {
		return nil, err
	}
	note, err := h.Store.GetMovieNote(r.Context(), noteID)
	if err != nil {
		return nil, fail(err, msgNoteNotFoundMovie)
	}
	if note.MovieID != movieID {
		return nil, apperr.NotFound(msgNoteNotFoundMovie)
	}
	return note, nil
}

func (h *MovieHandler) getNote(r *http.Request) (result, error) {
	note, err := h.movieNote(r, apperr.Read)
	if err != nil {
		return result{}, err
	}
	return ok(views.MovieNote(note)), nil
}

func (h *MovieHandler) updateNote(r *http.Request) (result, error) {
	var b noteUpdate
	if err := decodeUpdate(r, &b); err != nil {
		return result{}, err
	}
	note, err := h.movieNote(r, writeFailed)
	if err != nil {
		return result{}, err
	}
	updated, err := h.Store.UpdateMovieNote(r.Context(), note.ID, noteFields(b))
	if err != nil {
		return result{}, apperr.Write(msgNoteUpdate, err)
	}
	return ok(views.MovieNote(updated)), nil
}

func (h *MovieHandler) deleteNote(r *http.Request) (result, error) {
	note, err := h.movieNote(r, writeFailed)
	if err != nil {
		return result{}, err
	}
	if err := h.Store.DeleteMovieNote(r.Context(), note.ID); err != nil {
		return result{}, apperr.Write(msgNoteNotFound, err)
	}
	return message(msgNoteRemoved), nil
}

// Series notes

func (h *SeriesHandler) listNotes(r *http.Request) (result, error) {
	seriesID, err := pathID(r, "seriesId")
	if err != nil {
		return result{}, err
	}
	notes, err := h.Store.ListSeriesNotes(r.Context(), seriesID)
	if err != nil {
		return result{}, apperr.Internal(err)
	}
	return ok(views.Map(notes, views.SeriesNote)), nil
}

func (h *SeriesHandler) createNote(r *http.Request) (result, error) {
	seriesID, err := pathID(r, "seriesId")
	if err != nil {
		return result{}, err
	}
	var b noteCreate
	if err := decode(r, &b); err != nil {
		return result{}, err
	}
	ctx := r.Context()
	if err := requireRow(ctx, h.Store.UserExists, b.UserID, msgUserNotFound); err != nil {
		return result{}, err
	}
	if err := requireRow(ctx, h.Store.SeriesExists, seriesID, msgSeriesNotFound); err != nil {
		return result{}, err
	}
	note := &models.SeriesNote{UserID: b.UserID, SeriesID: seriesID, NoteText: b.NoteText}
	if err := h.Store.CreateSeriesNote(ctx, note); err != nil {
		return result{}, apperr.Create("", err)
	}
	return created(views.SeriesNote(note)), nil
}

func (h *SeriesHandler) seriesNote(r *http.Request, fail lookupFailed) (*models.SeriesNote, error) {
	seriesID, noteID, err := pathIDs(r, "seriesId", "noteId")
	if err != nil {
		return nil, err
	}
	note, err := h.Store.GetSeriesNote(r.Context(), noteID)
	if err != nil {
		return nil, fail(err, msgNoteNotFoundSeries)
	}
	if note.SeriesID != seriesID {
		return nil, apperr.NotFound(msgNoteNotFoundSeries)
	}
	return note, nil
}

func (h *SeriesHandler) getNote(r *http.Request) (result, error) {
	note, err := h.seriesNote(r, apperr.Read)
	if err != nil {
		return result{}, err
	}
	return ok(views.SeriesNote(note)), nil
}

func (h *SeriesHandler) updateNote(r *http.Request) (result, error) {
	var b noteUpdate
	if err := decodeUpdate(r, &b); err != nil {
		return result{}, err
	}
	note, err := h.seriesNote(r, writeFailed)
	if err != nil {
		return result{}, err
	}
	updated, err := h.Store.UpdateSeriesNote(r.Context(), note.ID, noteFields(b))
	if err != nil {
		return result{}, apperr.Write(msgNoteUpdate, err)
	}
	return ok(views.SeriesNote(updated)), nil
}

func (h *SeriesHandler) deleteNote(r *http.Request) (result, error) {
	note, err := h.seriesNote(r, writeFailed)
	if err != nil {
		return result{}, err
	}
	if err := h.Store.DeleteSeriesNote(r.Context(), note.ID); err != nil {
		return result{}, apperr.Write(msgNoteNotFound, err)
	}
	return message(msgNoteRemoved), nil
}
