package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tibas2004/Trabalho1-HugoAntunes32120-RicardoLaranjeira32121/internal/apperr"
	"github.com/tibas2004/Trabalho1-HugoAntunes32120-RicardoLaranjeira32121/internal/auth"
	"github.com/tibas2004/Trabalho1-HugoAntunes32120-RicardoLaranjeira32121/internal/store"
	"github.com/tibas2004/Trabalho1-HugoAntunes32120-RicardoLaranjeira32121/internal/views"
)

type AuthHandler struct {
	Store  *store.Store
	Tokens *auth.Tokens
}

func NewAuthHandler(s *store.Store, t *auth.Tokens) *AuthHandler {
	return &AuthHandler{Store: s, Tokens: t}
}

// Routes is mounted under /auth. me and logout always need a token.
func (h *AuthHandler) Routes(r chi.Router) {
	r.Post("/register", serve(h.register))
	r.Post("/login", serve(h.login))
	r.Group(func(r chi.Router) {
		r.Use(h.Tokens.Middleware)
		r.Get("/me", serve(h.me))
		r.Post("/logout", serve(h.logout))
	})
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type registered struct {
	Message string         `json:"message"`
	User    views.UserView `json:"user"`
}

func (h *AuthHandler) register(r *http.Request) (result, error) {
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
	return created(registered{Message: msgUserRegistered, User: views.User(u)}), nil
}

func (h *AuthHandler) login(r *http.Request) (result, error) {
	var b loginRequest
	if err := decode(r, &b); err != nil {
		return result{}, err
	}
	u, err := h.Store.GetUserByEmail(r.Context(), b.Email)
	if err != nil {
		return result{}, apperr.Read(err, msgUserNotFound)
	}
	if !auth.CheckPassword(u.Password, b.Password) {
		return result{}, apperr.Unauthorized(msgWrongPassword)
	}
	tok, err := h.Tokens.Issue(u.ID)
	if err != nil {
		return result{}, apperr.Internal(err)
	}
	return ok(map[string]string{"token": tok}), nil
}

func (h *AuthHandler) me(r *http.Request) (result, error) {
	u, err := h.Store.GetUser(r.Context(), auth.UserID(r.Context()))
	if err != nil {
		return result{}, apperr.Read(err, msgUserNotFound)
	}
	return ok(views.User(u)), nil
}

func (h *AuthHandler) logout(r *http.Request) (result, error) {
	if c, found := auth.ClaimsFrom(r.Context()); found {
		h.Tokens.Revoke(c)
	}
	return message(msgLoggedOut), nil
}
