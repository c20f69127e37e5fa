package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"

	"github.com/tibas2004/Trabalho1-HugoAntunes32120-RicardoLaranjeira32121/internal/apperr"
	"github.com/tibas2004/Trabalho1-HugoAntunes32120-RicardoLaranjeira32121/internal/auth"
	"github.com/tibas2004/Trabalho1-HugoAntunes32120-RicardoLaranjeira32121/internal/models"
	"github.com/tibas2004/Trabalho1-HugoAntunes32120-RicardoLaranjeira32121/internal/store"
	"github.com/tibas2004/Trabalho1-HugoAntunes32120-RicardoLaranjeira32121/internal/views"
)

type UserHandler struct{ Store *store.Store }

func NewUserHandler(s *store.Store) *UserHandler { return &UserHandler{Store: s} }

// Routes is mounted under /users.
func (h *UserHandler) Routes(r chi.Router) {
	r.Get("/", serve(h.list))
	r.Post("/", serve(h.create))
	r.Get("/{userId}", serve(h.get))
	r.Put("/{userId}", serve(h.update))
	r.Delete("/{userId}", serve(h.delete))

	// per-user views over other entities
	r.Get("/{userId}/scheduling", serve(h.events))
	r.Get("/{userId}/scheduling/{eventId}", serve(h.event))
	r.Get("/{userId}/shares-sent", serve(h.sharesSent))
	r.Get("/{userId}/shares-received", serve(h.sharesReceived))
	r.Get("/{userId}/notes", serve(h.notes))
	r.Get("/{userId}/notes/{noteId}", serve(h.note))
	r.Get("/{userId}/movies/comments", serve(h.movieComments))
	r.Get("/{userId}/movies/comments/{commentId}", serve(h.movieComment))
	r.Get("/{userId}/series/comments", serve(h.seriesComments))
	r.Get("/{userId}/series/comments/{commentId}", serve(h.seriesComment))
}

type userCreate struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type userUpdate struct {
	Name     *string `json:"name" validate:"omitnil,min=1"`
	Email    *string `json:"email" validate:"omitnil,email"`
	Password *string `json:"password" validate:"omitnil,min=1"`
}

func (h *UserHandler) list(r *http.Request) (result, error) {
	users, err := h.Store.ListUsers(r.Context())
	if err != nil {
		return result{}, apperr.Internal(err)
	}
	return ok(views.Map(users, views.User)), nil
}

func (h *UserHandler) get(r *http.Request) (result, error) {
	id, err := pathID(r, "userId")
	if err != nil {
		return result{}, err
	}
	u, err := h.Store.GetUser(r.Context(), id)
	if err != nil {
		return result{}, apperr.Read(err, msgUserNotFound)
	}
	return ok(views.User(u)), nil
}

func (h *UserHandler) create(r *http.Request) (result, error) {
	var b userCreate
	if err := decode(r, &b); err != nil {
		return result{}, err
	}
	u, err := newUser(b)
	if err != nil {
		return result{}, err
	}
	if err := h.Store.CreateUser(r.Context(), u); err != nil {
		return result{}, createUserFailed(err)
	}
	return created(views.User(u)), nil
}

func (h *UserHandler) update(r *http.Request) (result, error) {
	id, err := pathID(r, "userId")
	if err != nil {
		return result{}, err
	}
	var b userUpdate
	if err := decodeUpdate(r, &b); err != nil {
		return result{}, err
	}
	fields := map[string]any{}
	if b.Name != nil {
		fields["name"] = *b.Name
	}
	if b.Email != nil {
		fields["email"] = *b.Email
	}
	if b.Password != nil {
		hash, err := auth.HashPassword(*b.Password)
		if err != nil {
			return result{}, apperr.Internal(err)
		}
		fields["password"] = hash
	}
	u, err := h.Store.UpdateUser(r.Context(), id, fields)
	if err != nil {
		return result{}, apperr.Write(msgUserNotFound, err)
	}
	return ok(views.User(u)), nil
}

func (h *UserHandler) delete(r *http.Request) (result, error) {
	id, err := pathID(r, "userId")
	if err != nil {
		return result{}, err
	}
	if err := h.Store.DeleteUser(r.Context(), id); err != nil {
		return result{}, apperr.Write(msgUserNotFound, err)
	}
	return message(msgUserDeleted), nil
}

func (h *UserHandler) events(r *http.Request) (result, error) {
	userID, err := pathID(r, "userId")
	if err != nil {
		return result{}, err
	}
	ctx := r.Context()
	if err := requireRow(ctx, h.Store.UserExists, userID, msgUserNotFound); err != nil {
		return result{}, err
	}
	events, err := h.Store.ListEventsByUser(ctx, userID)
	if err != nil {
		return result{}, apperr.Internal(err)
	}
	return ok(views.Map(events, views.Event)), nil
}

func (h *UserHandler) event(r *http.Request) (result, error) {
	userID, eventID, err := pathIDs(r, "userId", "eventId")
	if err != nil {
		return result{}, err
	}
	ctx := r.Context()
	if err := requireRow(ctx, h.Store.UserExists, userID, msgUserNotFound); err != nil {
		return result{}, err
	}
	e, err := h.Store.GetEvent(ctx, eventID)
	if err != nil {
		return result{}, apperr.Read(err, msgEventNotFoundUser)
	}
	if e.UserID != userID {
		return result{}, apperr.NotFound(msgEventNotFoundUser)
	}
	return ok(views.Event(e)), nil
}

func (h *UserHandler) sharesSent(r *http.Request) (result, error) {
	userID, err := pathID(r, "userId")
	if err != nil {
		return result{}, err
	}
	shares, err := h.Store.ListSharesSent(r.Context(), userID)
	if err != nil {
		return result{}, apperr.Internal(err)
	}
	return ok(views.Map(shares, views.Share)), nil
}

func (h *UserHandler) sharesReceived(r *http.Request) (result, error) {
	userID, err := pathID(r, "userId")
	if err != nil {
		return result{}, err
	}
	shares, err := h.Store.ListSharesReceived(r.Context(), userID)
	if err != nil {
		return result{}, apperr.Internal(err)
	}
	return ok(views.Map(shares, views.Share)), nil
}

// notes lists movie notes followed by series notes.
func (h *UserHandler) notes(r *http.Request) (result, error) {
	userID, err := pathID(r, "userId")
	if err != nil {
		return result{}, err
	}
	ctx := r.Context()
	if err := requireRow(ctx, h.Store.UserExists, userID, msgUserNotFound); err != nil {
		return result{}, err
	}
	movieNotes, err := h.Store.ListMovieNotesByUser(ctx, userID)
	if err != nil {
		return result{}, apperr.Internal(err)
	}
	seriesNotes, err := h.Store.ListSeriesNotesByUser(ctx, userID)
	if err != nil {
		return result{}, apperr.Internal(err)
	}
	out := append(views.Map(movieNotes, views.UserMovieNote), views.Map(seriesNotes, views.UserSeriesNote)...)
	return ok(out), nil
}

// note looks the id up among movie notes first, then series notes.
func (h *UserHandler) note(r *http.Request) (result, error) {
	userID, noteID, err := pathIDs(r, "userId", "noteId")
	if err != nil {
		return result{}, err
	}
	ctx := r.Context()
	if err := requireRow(ctx, h.Store.UserExists, userID, msgUserNotFound); err != nil {
		return result{}, err
	}
	mn, err := h.Store.FindMovieNoteOfUser(ctx, userID, noteID)
	switch {
	case err == nil:
		return ok(views.UserMovieNote(mn)), nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return result{}, apperr.Internal(err)
	}
	sn, err := h.Store.FindSeriesNoteOfUser(ctx, userID, noteID)
	if err != nil {
		return result{}, apperr.Read(err, msgNoteNotFoundUser)
	}
	return ok(views.UserSeriesNote(sn)), nil
}

func (h *UserHandler) movieComments(r *http.Request) (result, error) {
	userID, err := pathID(r, "userId")
	if err != nil {
		return result{}, err
	}
	comments, err := h.Store.ListMovieCommentsByUser(r.Context(), userID)
	if err != nil {
		return result{}, apperr.Internal(err)
	}
	return ok(views.Map(comments, views.UserMovieComment)), nil
}

func (h *UserHandler) movieComment(r *http.Request) (result, error) {
	userID, commentID, err := pathIDs(r, "userId", "commentId")
	if err != nil {
		return result{}, err
	}
	ctx := r.Context()
	if err := requireRow(ctx, h.Store.UserExists, userID, msgUserNotFound); err != nil {
		return result{}, err
	}
	c, err := h.Store.GetMovieComment(ctx, commentID)
	if err != nil {
		return result{}, apperr.Read(err, msgCommentNotFoundUser)
	}
	if c.UserID != userID {
		return result{}, apperr.NotFound(msgCommentNotFoundUser)
	}
	return ok(views.UserMovieComment(c)), nil
}

// seriesComments answers an empty list when the user has no comments.
func (h *UserHandler) seriesComments(r *http.Request) (result, error) {
	userID, err := pathID(r, "userId")
	if err != nil {
		return result{}, err
	}
	comments, err := h.Store.ListSeriesCommentsByUser(r.Context(), userID)
	if err != nil {
		return result{}, apperr.Internal(err)
	}
	return ok(views.Map(comments, views.UserSeriesComment)), nil
}

func (h *UserHandler) seriesComment(r *http.Request) (result, error) {
	userID, commentID, err := pathIDs(r, "userId", "commentId")
	if err != nil {
		return result{}, err
	}
	ctx := r.Context()
	if err := requireRow(ctx, h.Store.UserExists, userID, msgUserNotFound); err != nil {
		return result{}, err
	}
	c, err := h.Store.GetSeriesComment(ctx, commentID)
	if err != nil {
		return result{}, apperr.Read(err, msgCommentNotFoundUser)
	}
	if c.UserID != userID {
		return result{}, apperr.NotFound(msgCommentNotFoundUser)
	}
	return ok(views.UserSeriesComment(c)), nil
}

func newUser(b userCreate) (*models.User, error) {
	hash, err := auth.HashPassword(b.Password)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return &models.User{Name: b.Name, Email: b.Email, Password: hash}, nil
}

func createUserFailed(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperr.Create("", errors.New(msgEmailTaken))
	}
	return apperr.Create("", err)
}
