package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tibas2004/Trabalho1-HugoAntunes32120-RicardoLaranjeira32121/internal/apperr"
	"github.com/tibas2004/Trabalho1-HugoAntunes32120-RicardoLaranjeira32121/internal/models"
	"github.com/tibas2004/Trabalho1-HugoAntunes32120-RicardoLaranjeira32121/internal/store"
	"github.com/tibas2004/Trabalho1-HugoAntunes32120-RicardoLaranjeira32121/internal/views"
)

type MovieHandler struct{ Store *store.Store }

func NewMovieHandler(s *store.Store) *MovieHandler { return &MovieHandler{Store: s} }

// Routes is mounted under /movies, together with the ratings, notes and
// comments of each movie.
func (h *MovieHandler) Routes(r chi.Router) {
	r.Get("/", serve(h.list))
	r.Post("/", serve(h.create))
	r.Get("/{movieId}", serve(h.get))
	r.Put("/{movieId}", serve(h.update))
	r.Delete("/{movieId}", serve(h.delete))

	r.Get("/{movieId}/ratings", serve(h.listRatings))
	r.Post("/{movieId}/rating", serve(h.createRating))
	r.Get("/{movieId}/rating/{ratingId}", serve(h.getRating))
	r.Put("/{movieId}/rating/{ratingId}", serve(h.updateRating))
	r.Delete("/{movieId}/rating/{ratingId}", serve(h.deleteRating))

	r.Get("/{movieId}/notes", serve(h.listNotes))
	r.Post("/{movieId}/notes", serve(h.createNote))
	r.Get("/{movieId}/notes/{noteId}", serve(h.getNote))
	r.Put("/{movieId}/notes/{noteId}", serve(h.updateNote))
	r.Delete("/{movieId}/notes/{noteId}", serve(h.deleteNote))

	r.Get("/{movieId}/comments", serve(h.listComments))
	r.Post("/{movieId}/comments", serve(h.createComment))
	r.Get("/{movieId}/comments/{commentId}", serve(h.getComment))
	r.Put("/{movieId}/comments/{commentId}", serve(h.updateComment))
	r.Delete("/{movieId}/comments/{commentId}", serve(h.deleteComment))
}

type movieCreate struct {
	Title       string  `json:"title" validate:"required"`
	Genre       string  `json:"genre" validate:"required"`
	ReleaseDate string  `json:"releaseDate" validate:"required"`
	Description *string `json:"description"`
	CategoryIDs []uint  `json:"categoryIds"`
}

type movieUpdate struct {
	Title       *string `json:"title" validate:"omitnil,min=1"`
	Genre       *string `json:"genre" validate:"omitnil,min=1"`
	ReleaseDate *string `json:"releaseDate"`
	Description *string `json:"description"`
}

func (h *MovieHandler) list(r *http.Request) (result, error) {
	movies, err := h.Store.ListMovies(r.Context())
	if err != nil {
		return result{}, apperr.Internal(err)
	}
	return ok(views.Map(movies, views.Movie)), nil
}

func (h *MovieHandler) get(r *http.Request) (result, error) {
	id, err := pathID(r, "movieId")
	if err != nil {
		return result{}, err
	}
	m, err := h.Store.GetMovie(r.Context(), id)
	if err != nil {
		return result{}, apperr.Read(err, msgMovieNotFound)
	}
	return ok(views.MovieDetail(m)), nil
}

func (h *MovieHandler) create(r *http.Request) (result, error) {
	var b movieCreate
	if err := decode(r, &b); err != nil {
		return result{}, err
	}
	released, err := parseDate(b.ReleaseDate)
	if err != nil {
		return result{}, err
	}
	ctx := r.Context()
	if len(b.CategoryIDs) > 0 {
		n, err := h.Store.CountMovieCategories(ctx, b.CategoryIDs)
		if err != nil {
			return result{}, apperr.Internal(err)
		}
		if n != int64(len(b.CategoryIDs)) {
			return result{}, apperr.Invalid(msgCategoriesMissing)
		}
	}
	m := &models.Movie{
		Title:       b.Title,
		Genre:       b.Genre,
		ReleaseDate: released,
		Description: optionalText(b.Description),
	}
	if err := h.Store.CreateMovie(ctx, m, b.CategoryIDs); err != nil {
		return result{}, apperr.Create(msgMovieCreate, err)
	}
	return created(views.Movie(m)), nil
}

func (h *MovieHandler) update(r *http.Request) (result, error) {
	id, err := pathID(r, "movieId")
	if err != nil {
		return result{}, err
	}
	var b movieUpdate
	if err := decodeUpdate(r, &b); err != nil {
		return result{}, err
	}
	fields, err := titleFields(b.Title, b.Genre, b.ReleaseDate, b.Description)
	if err != nil {
		return result{}, err
	}
	m, err := h.Store.UpdateMovie(r.Context(), id, fields)
	if err != nil {
		return result{}, apperr.Write(msgMovieUpdate, err)
	}
	return ok(views.Movie(m)), nil
}

func (h *MovieHandler) delete(r *http.Request) (result, error) {
	id, err := pathID(r, "movieId")
	if err != nil {
		return result{}, err
	}
	if err := h.Store.DeleteMovie(r.Context(), id); err != nil {
		return result{}, apperr.Write(msgMovieNotFound, err)
	}
	return message(msgMovieDeleted), nil
}

// titleFields collects the columns shared by movies and series that a
// partial update sets.
func titleFields(title, genre, releaseDate, description *string) (map[string]any, error) {
	fields := map[string]any{}
	if title != nil {
		fields["title"] = *title
	}
	if genre != nil {
		fields["genre"] = *genre
	}
	if givenDate(releaseDate) {
		t, err := parseDate(*releaseDate)
		if err != nil {
			return nil, err
		}
		fields["release_date"] = t
	}
	if description != nil {
		fields["description"] = optionalText(description)
	}
	return fields, nil
}
