package handlers

import (
	"net/http"

	"github.com/tibas2004/Trabalho1-HugoAntunes32120-RicardoLaranjeira32121/internal/apperr"
	"github.com/tibas2004/Trabalho1-HugoAntunes32120-RicardoLaranjeira32121/internal/models"
	"github.com/tibas2004/Trabalho1-HugoAntunes32120-RicardoLaranjeira32121/internal/views"
)

type commentCreate struct {
	UserID      uint   `json:"userId" validate:"required"`
	CommentText string `json:"commentText" validate:"required"`
}

type commentUpdate struct {
	CommentText *string `json:"commentText" validate:"omitnil,min=1"`
}

func commentFields(b commentUpdate) map[string]any {
	fields := map[string]any{}
	if b.CommentText != nil {
		fields["comment_text"] = *b.CommentText
	}
	return fields
}

// Movie comments

func (h *MovieHandler) listComments(r *http.Request) (result, error) {
	movieID, err := pathID(r, "movieId")
	if err != nil {
		return result{}, err
	}
	comments, err := h.Store.ListMovieComments(r.Context(), movieID)
	if err != nil {
		return result{}, apperr.Internal(err)
	}
	return ok(views.Map(comments, views.MovieComment)), nil
}

func (h *MovieHandler) createComment(r *http.Request) (result, error) {
	movieID, err := pathID(r, "movieId")
	if err != nil {
		return result{}, err
	}
	var b commentCreate
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
	c := &models.MovieComment{UserID: b.UserID, MovieID: movieID, CommentText: b.CommentText}
	if err := h.Store.CreateMovieComment(ctx, c); err != nil {
		return result{}, apperr.Create("", err)
	}
	return created(views.MovieComment(c)), nil
}

func (h *MovieHandler) movieComment(r *http.Request, fail lookupFailed) (*models.MovieComment, error) {
	movieID, commentID, err := pathIDs(r, "movieId", "commentId")
	if err != nil {
		return nil, err
	}
	c, err := h.Store.GetMovieComment(r.Context(), commentID)
	if err != nil {
		return nil, fail(err, msgCommentNotFoundMovie)
	}
	if c.MovieID != movieID {
		return nil, apperr.NotFound(msgCommentNotFoundMovie)
	}
	return c, nil
}

func (h *MovieHandler) getComment(r *http.Request) (result, error) {
	c, err := h.movieComment(r, apperr.Read)
	if err != nil {
		return result{}, err
	}
	return ok(views.MovieComment(c)), nil
}

func (h *MovieHandler) updateComment(r *http.Request) (result, error) {
	var b commentUpdate
	if err := decodeUpdate(r, &b); err != nil {
		return result{}, err
	}
	c, err := h.movieComment(r, writeFailed)
	if err != nil {
		return result{}, err
	}
	updated, err := h.Store.UpdateMovieComment(r.Context(), c.ID, commentFields(b))
	if err != nil {
		return result{}, apperr.Write(msgCommentNotFound, err)
	}
	return ok(views.MovieComment(updated)), nil
}

func (h *MovieHandler) deleteComment(r *http.Request) (result, error) {
	c, err := h.movieComment(r, writeFailed)
	if err != nil {
		return result{}, err
	}
	if err := h.Store.DeleteMovieComment(r.Context(), c.ID); err != nil {
		return result{}, apperr.Write(msgCommentNotFound, err)
	}
	return message(msgCommentRemoved), nil
}

// Series comments

func (h *SeriesHandler) listComments(r *http.Request) (result, error) {
	seriesID, err := pathID(r, "seriesId")
	if err != nil {
		return result{}, err
	}
	comments, err := h.Store.ListSeriesComments(r.Context(), seriesID)
	if err != nil {
		return result{}, apperr.Internal(err)
	}
	return ok(views.Map(comments, views.SeriesComment)), nil
}

func (h *SeriesHandler) createComment(r *http.Request) (result, error) {
	seriesID, err := pathID(r, "seriesId")
	if err != nil {
		return result{}, err
	}
	var b commentCreate
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
	c := &models.SeriesComment{UserID: b.UserID, SeriesID: seriesID, CommentText: b.CommentText}
	if err := h.Store.CreateSeriesComment(ctx, c); err != nil {
		return result{}, apperr.Create("", err)
	}
	return created(views.SeriesComment(c)), nil
}

func (h *SeriesHandler) seriesComment(r *http.Request, fail lookupFailed) (*models.SeriesComment, error) {
	seriesID, commentID, err := pathIDs(r, "seriesId", "commentId")
	if err != nil {
		return nil, err
	}
	c, err := h.Store.GetSeriesComment(r.Context(), commentID)
	if err != nil {
		return nil, fail(err, msgCommentNotFoundSeries)
	}
	if c.SeriesID != seriesID {
		return nil, apperr.NotFound(msgCommentNotFoundSeries)
	}
	return c, nil
}

func (h *SeriesHandler) getComment(r *http.Request) (result, error) {
	c, err := h.seriesComment(r, apperr.Read)
	if err != nil {
		return result{}, err
	}
	return ok(views.SeriesComment(c)), nil
}

func (h *SeriesHandler) updateComment(r *http.Request) (result, error) {
	var b commentUpdate
	if err := decodeUpdate(r, &b); err != nil {
		return result{}, err
	}
	c, err := h.seriesComment(r, writeFailed)
	if err != nil {
		return result{}, err
	}
	updated, err := h.Store.UpdateSeriesComment(r.Context(), c.ID, commentFields(b))
	if err != nil {
		return result{}, apperr.Write(msgCommentNotFound, err)
	}
	return ok(views.SeriesComment(updated)), nil
}

func (h *SeriesHandler) deleteComment(r *http.Request) (result, error) {
	c, err := h.seriesComment(r, writeFailed)
	if err != nil {
		return result{}, err
	}
	if err := h.Store.DeleteSeriesComment(r.Context(), c.ID); err != nil {
		return result{}, apperr.Write(msgCommentNotFound, err)
	}
	return message(msgCommentRemoved), nil
}
