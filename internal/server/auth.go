package server

import (
	"context"
	"net/http"
	"time"
)

const tokenCookie = "token"

type contextKey string

const usernameKey contextKey = "username"

// requireLogin is the auth gate: every protected route needs a valid
// identity cookie, otherwise the request is redirected to the login page.
// Failures are never reported as errors.
func (s *Server) requireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie(tokenCookie)
		if err != nil || c.Value == "" {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		username, err := s.tokens.Verify(c.Value)
		if err != nil {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		ctx := context.WithValue(r.Context(), usernameKey, username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// usernameFrom returns the identity the gate put on the request context.
func usernameFrom(r *http.Request) string {
	username, _ := r.Context().Value(usernameKey).(string)
	return username
}

func (s *Server) setIdentity(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     tokenCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(s.cfg.Auth.TokenTTL / time.Second),
	})
}

func (s *Server) clearIdentity(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     tokenCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}
