// Package session wraps the cookie session that carries the shopping cart
// between requests.
package session

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/stylemart/stylemart/internal/cart"
)

const (
	sessionName = "stylemart"
	cartKey     = "cart"
)

// Manager reads and writes the per-browser session cookie.
type Manager struct {
	store *sessions.CookieStore
}

// NewManager builds a manager signing cookies with the given secret.
func NewManager(secret string) *Manager {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Manager{store: store}
}

// Cart returns the cart held in the request's session. A missing or
// undecodable session yields an empty cart; the cookie store already
// treats bad cookies as a fresh session.
func (m *Manager) Cart(r *http.Request) cart.Cart {
	sess, err := m.store.Get(r, sessionName)
	if err != nil {
		return nil
	}
	names, ok := sess.Values[cartKey].([]string)
	if !ok {
		return nil
	}
	return cart.Cart(names)
}

// SaveCart writes the cart back into the session cookie.
func (m *Manager) SaveCart(w http.ResponseWriter, r *http.Request, c cart.Cart) error {
	sess, _ := m.store.Get(r, sessionName)
	sess.Values[cartKey] = []string(c)
	return sess.Save(r, w)
}

// Destroy expires the session cookie. Used on logout.
func (m *Manager) Destroy(w http.ResponseWriter, r *http.Request) error {
	sess, _ := m.store.Get(r, sessionName)
	sess.Options.MaxAge = -1
	return sess.Save(r, w)
}
