package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPassword(t *testing.T) {
	h, err := HashPassword("p")
	require.NoError(t, err)
	assert.NotEqual(t, "p", h)
	assert.True(t, CheckPassword(h, "p"))
	assert.False(t, CheckPassword(h, "q"))
	assert.False(t, CheckPassword("not-a-hash", "p"))
}

func TestIssueVerify(t *testing.T) {
	tk := NewTokens("secret", time.Hour)
	raw, err := tk.Issue(7)
	require.NoError(t, err)

	c, err := tk.Verify(raw)
	require.NoError(t, err)
	assert.EqualValues(t, 7, c.UserID)
	assert.NotEmpty(t, c.ID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), c.ExpiresAt.Time, 5*time.Second)
}

func TestVerifyRejects(t *testing.T) {
	tk := NewTokens("secret", time.Hour)

	other := NewTokens("other", time.Hour)
	raw, err := other.Issue(1)
	require.NoError(t, err)
	_, err = tk.Verify(raw)
	assert.Error(t, err, "wrong key")

	tk.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, err := tk.Issue(1)
	require.NoError(t, err)
	tk.now = time.Now
	_, err = tk.Verify(expired)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	_, err = tk.Verify("garbage")
	assert.Error(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: 1}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = tk.Verify(none)
	assert.Error(t, err)
}

func TestRevoke(t *testing.T) {
	tk := NewTokens("secret", time.Hour)
	raw, err := tk.Issue(1)
	require.NoError(t, err)
	c, err := tk.Verify(raw)
	require.NoError(t, err)

	tk.Revoke(c)
	_, err = tk.Verify(raw)
	assert.ErrorIs(t, err, ErrRevoked)

	fresh, err := tk.Issue(1)
	require.NoError(t, err)
	_, err = tk.Verify(fresh)
	assert.NoError(t, err)
}

func TestMiddleware(t *testing.T) {
	tk := NewTokens("secret", time.Hour)
	var seen uint
	h := tk.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = UserID(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	do := func(header string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	rec := do("")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Token não fornecido"}`, rec.Body.String())

	rec = do("Bearer")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do("Bearer nope")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"error":"Token inválido ou expirado"}`, rec.Body.String())

	raw, err := tk.Issue(3)
	require.NoError(t, err)
	rec = do("Bearer " + raw)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.EqualValues(t, 3, seen)
}

func TestUserIDOutsideMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Zero(t, UserID(req.Context()))
	_, ok := ClaimsFrom(req.Context())
	assert.False(t, ok)
}
