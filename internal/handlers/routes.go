package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tibas2004/Trabalho1-HugoAntunes32120-RicardoLaranjeira32121/internal/auth"
	"github.com/tibas2004/Trabalho1-HugoAntunes32120-RicardoLaranjeira32121/internal/store"
)

// Mount returns the function that registers every API route. With
// requireAuth set, writes need a bearer token except for the routes that
// create an account or a session.
func Mount(st *store.Store, tokens *auth.Tokens, requireAuth bool) func(chi.Router) {
	return func(r chi.Router) {
		if requireAuth {
			r.Use(guardWrites(tokens))
		}

		r.Get("/", root)
		r.Route("/users", NewUserHandler(st).Routes)
		r.Route("/movies", NewMovieHandler(st).Routes)
		r.Route("/series", NewSeriesHandler(st).Routes)
		r.Route("/scheduling", NewSchedulingHandler(st).Routes)
		r.Route("/shares", NewShareHandler(st).Routes)

		cats := NewCategoryHandler(st)
		r.Route("/movie-categories", cats.MovieRoutes)
		r.Route("/series-categories", cats.SeriesRoutes)

		r.Route("/auth", NewAuthHandler(st, tokens).Routes)
	}
}

func root(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(msgRootAlive))
}

// openWrites can be called without a token even when writes are guarded.
var openWrites = map[string]bool{
	http.MethodPost + " /auth/register": true,
	http.MethodPost + " /auth/login":    true,
	http.MethodPost + " /users":         true,
	http.MethodPost + " /users/":        true,
}

func guardWrites(tokens *auth.Tokens) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		protected := tokens.Middleware(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodPost, http.MethodPut, http.MethodDelete:
				if !openWrites[r.Method+" "+r.URL.Path] {
					protected.ServeHTTP(w, r)
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
