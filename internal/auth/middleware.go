package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
)

const (
	MsgMissingToken = "Token não fornecido"
	MsgInvalidToken = "Token inválido ou expirado"
)

type ctxKeyClaims struct{}

// Middleware requires a bearer token. A missing token is 401, a token that
// fails verification or was revoked is 403.
func (t *Tokens) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tok := bearer(r.Header.Get("Authorization"))
		if tok == "" {
			deny(w, http.StatusUnauthorized, MsgMissingToken)
			return
		}
		claims, err := t.Verify(tok)
		if err != nil {
			deny(w, http.StatusForbidden, MsgInvalidToken)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKeyClaims{}, claims)))
	})
}

// bearer takes the second word of the Authorization header.
func bearer(header string) string {
	parts := strings.Fields(header)
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

func deny(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func ClaimsFrom(ctx context.Context) (*Claims, bool) {
	c, ok := ctx.Value(ctxKeyClaims{}).(*Claims)
	return c, ok
}

// UserID returns the authenticated user id, or 0 outside the middleware.
func UserID(ctx context.Context) uint {
	if c, ok := ClaimsFrom(ctx); ok {
		return c.UserID
	}
	return 0
}
