package handlers

import (
	"net/http"

	"github.com/tibas2004/Trabalho1-HugoAntunes32120-RicardoLaranjeira32121/internal/apperr"
	"github.com/tibas2004/Trabalho1-HugoAntunes32120-RicardoLaranjeira32121/internal/models"
	"github.com/tibas2004/Trabalho1-HugoAntunes32120-RicardoLaranjeira32121/internal/views"
)

// The rating is validated before anything else, so an out of range value
// is rejected even when the user or the title does not exist.
type ratingCreate struct {
	Rating *int `json:"rating" validate:"required,rating"`
	UserID uint `json:"userId" validate:"required"`
}

type ratingUpdate struct {
	Rating *int `json:"rating" validate:"omitnil,rating"`
}

func ratingFields(b ratingUpdate) map[string]any {
	fields := map[string]any{}
	if b.Rating != nil {
		fields["rating"] = *b.Rating
	}
	return fields
}

// Movie ratings

func (h *MovieHandler) listRatings(r *http.Request) (result, error) {
	movieID, err := pathID(r, "movieId")
	if err != nil {
		return result{}, err
	}
	ratings, err := h.Store.ListMovieRatings(r.Context(), movieID)
	if err != nil {
		return result{}, apperr.Internal(err)
	}
	return ok(views.Map(ratings, views.MovieRating)), nil
}

func (h *MovieHandler) createRating(r *http.Request) (result, error) {
	movieID, err := pathID(r, "movieId")
	if err != nil {
		return result{}, err
	}
	var b ratingCreate
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
	rating := &models.MovieRating{UserID: b.UserID, MovieID: movieID, Rating: *b.Rating}
	if err := h.Store.CreateMovieRating(ctx, rating); err != nil {
		return result{}, apperr.Create("", err)
	}
	return created(views.MovieRating(rating)), nil
}

// movieRating loads a rating and checks it belongs to the movie in the path.
func (h *MovieHandler) movieRating(r *http.Request, fail lookupFailed) (*models.MovieRating, error) {
	movieID, ratingID, err := pathIDs(r, "movieId", "ratingId")
	if err != nil {
		return nil, err
	}
	rating, err := h.Store.GetMovieRating(r.Context(), ratingID)
	if err != nil {
		return nil, fail(err, msgRatingNotFoundMovie)
	}
	if rating.MovieID != movieID {
		return nil, apperr.NotFound(msgRatingNotFoundMovie)
	}
	return rating, nil
}

func (h *MovieHandler) getRating(r *http.Request) (result, error) {
	rating, err := h.movieRating(r, apperr.Read)
	if err != nil {
		return result{}, err
	}
	return ok(views.MovieRating(rating)), nil
}

func (h *MovieHandler) updateRating(r *http.Request) (result, error) {
	var b ratingUpdate
	if err := decodeUpdate(r, &b); err != nil {
		return result{}, err
	}
	rating, err := h.movieRating(r, writeFailed)
	if err != nil {
		return result{}, err
	}
	updated, err := h.Store.UpdateMovieRating(r.Context(), rating.ID, ratingFields(b))
	if err != nil {
		return result{}, apperr.Write(msgRatingNotFound, err)
	}
	return ok(views.MovieRating(updated)), nil
}

func (h *MovieHandler) deleteRating(r *http.Request) (result, error) {
	rating, err := h.movieRating(r, writeFailed)
	if err != nil {
		return result{}, err
	}
	if err := h.Store.DeleteMovieRating(r.Context(), rating.ID); err != nil {
		return result{}, apperr.Write(msgRatingNotFound, err)
	}
	return message(msgRatingRemoved), nil
}

// Series ratings

func (h *SeriesHandler) listRatings(r *http.Request) (result, error) {
	seriesID, err := pathID(r, "seriesId")
	if err != nil {
		return result{}, err
	}
	ratings, err := h.Store.ListSeriesRatings(r.Context(), seriesID)
	if err != nil {
		return result{}, apperr.Internal(err)
	}
	return ok(views.Map(ratings, views.SeriesRating)), nil
}

func (h *SeriesHandler) createRating(r *http.Request) (result, error) {
	seriesID, err := pathID(r, "seriesId")
	if err != nil {
		return result{}, err
	}
	var b ratingCreate
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
	rating := &models.SeriesRating{UserID: b.UserID, SeriesID: seriesID, Rating: *b.Rating}
	if err := h.Store.CreateSeriesRating(ctx, rating); err != nil {
		return result{}, apperr.Create("", err)
	}
	return created(views.SeriesRating(rating)), nil
}

func (h *SeriesHandler) seriesRating(r *http.Request, fail lookupFailed) (*models.SeriesRating, error) {
	seriesID, ratingID, err := pathIDs(r, "seriesId", "ratingId")
	if err != nil {
		return nil, err
	}
	rating, err := h.Store.GetSeriesRating(r.Context(), ratingID)
	if err != nil {
		return nil, fail(err, msgRatingNotFoundSeries)
	}
	if rating.SeriesID != seriesID {
		return nil, apperr.NotFound(msgRatingNotFoundSeries)
	}
	return rating, nil
}

func (h *SeriesHandler) getRating(r *http.Request) (result, error) {
	rating, err := h.seriesRating(r, apperr.Read)
	if err != nil {
		return result{}, err
	}
	return ok(views.SeriesRating(rating)), nil
}

func (h *SeriesHandler) updateRating(r *http.Request) (result, error) {
	var b ratingUpdate
	if err := decodeUpdate(r, &b); err != nil {
		return result{}, err
	}
	rating, err := h.seriesRating(r, writeFailed)
	if err != nil {
		return result{}, err
	}
	updated, err := h.Store.UpdateSeriesRating(r.Context(), rating.ID, ratingFields(b))
	if err != nil {
		return result{}, apperr.Write(msgRatingNotFound, err)
	}
	return ok(views.SeriesRating(updated)), nil
}

func (h *SeriesHandler) deleteRating(r *http.Request) (result, error) {
	rating, err := h.seriesRating(r, writeFailed)
	if err != nil {
		return result{}, err
	}
	if err := h.Store.DeleteSeriesRating(r.Context(), rating.ID); err != nil {
		return result{}, apperr.Write(msgRatingNotFound, err)
	}
	return message(msgRatingRemoved), nil
}
