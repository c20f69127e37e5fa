package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/tibas2004/Trabalho1-HugoAntunes32120-RicardoLaranjeira32121/internal/cache"
)

var ErrRevoked = errors.New("token revoked")

type Claims struct {
	UserID uint `json:"userId"`
	jwt.RegisteredClaims
}

// Tokens issues and verifies HS256 access tokens. Revoked token ids are kept
// until the token would have expired anyway.
type Tokens struct {
	secret  []byte
	ttl     time.Duration
	revoked *cache.Expiring[string]
	now     func() time.Time
}

func NewTokens(secret string, ttl time.Duration) *Tokens {
	return &Tokens{
		secret:  []byte(secret),
		ttl:     ttl,
		revoked: cache.NewExpiring[string](),
		now:     time.Now,
	}
}

func (t *Tokens) Issue(userID uint) (string, error) {
	now := t.now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (t *Tokens) Verify(raw string) (*Claims, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(raw, &claims, t.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.ID != "" && t.revoked.Has(claims.ID) {
		return nil, ErrRevoked
	}
	return &claims, nil
}

// Revoke rejects the token carrying c from now until its expiry.
func (t *Tokens) Revoke(c *Claims) {
	if c == nil || c.ID == "" || c.ExpiresAt == nil {
		return
	}
	t.revoked.Sweep()
	t.revoked.Add(c.ID, c.ExpiresAt.Time)
}

func (t *Tokens) keyFunc(token *jwt.Token) (any, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected method: %v", token.Header["alg"])
	}
	return t.secret, nil
}
