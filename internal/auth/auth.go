// Package auth issues and verifies the signed identity token that the
// login handler sets as a cookie and the auth gate checks on every
// protected route.
package auth

import (
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// ErrInvalidToken covers expired, malformed and wrongly-signed tokens.
// The gate treats all of them the same way: redirect to login.
var ErrInvalidToken = errors.New("invalid token")

// Claims carries the logged-in username.
type Claims struct {
	Username string `json:"username"`
	jwt.StandardClaims
}

// TokenSource signs and parses identity tokens with a shared HS256 key.
type TokenSource struct {
	key []byte
	ttl time.Duration
}

// NewTokenSource builds a token source from the configured secret and
// token lifetime.
func NewTokenSource(secret string, ttl time.Duration) *TokenSource {
	return &TokenSource{key: []byte(secret), ttl: ttl}
}

// Issue signs a token for username, valid for the configured lifetime.
func (t *TokenSource) Issue(username string) (string, error) {
	claims := &Claims{
		Username: username,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(t.ttl).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.key)
}

// Verify parses a token and returns the username it was issued for.
func (t *TokenSource) Verify(tokenString string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return t.key, nil
	})
	if err != nil {
		return "", ErrInvalidToken
	}
	if !token.Valid || claims.Username == "" {
		return "", ErrInvalidToken
	}
	return claims.Username, nil
}
