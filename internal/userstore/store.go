// Package userstore persists username/password-hash pairs behind a small
// repository interface, so the file-backed default and the sqlite backend
// are interchangeable from the handlers' point of view.
package userstore

import "errors"

// ErrNotFound is returned by Lookup when the username has no row.
var ErrNotFound = errors.New("user not found")

// Store is the credential repository. Append does not enforce uniqueness;
// the signup handler checks Lookup first.
type Store interface {
	// Lookup returns the stored password hash for username.
	Lookup(username string) (string, error)

	// Append adds a new credential row.
	Append(username, passwordHash string) error
}
