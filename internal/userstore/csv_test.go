package userstore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVAutoCreatesWithHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user_data", "users.csv")
	store := NewCSV(path)

	_, err := store.Lookup("nobody")
	assert.ErrorIs(t, err, ErrNotFound)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "username,password", strings.TrimSpace(string(data)))
}

func TestCSVAppendAndLookup(t *testing.T) {
	store := NewCSV(filepath.Join(t.TempDir(), "users.csv"))

	require.NoError(t, store.Append("alice", "$2a$10$hash-a"))
	require.NoError(t, store.Append("bob", "$2a$10$hash-b"))

	hash, err := store.Lookup("alice")
	require.NoError(t, err)
	assert.Equal(t, "$2a$10$hash-a", hash)

	hash, err = store.Lookup("bob")
	require.NoError(t, err)
	assert.Equal(t, "$2a$10$hash-b", hash)

	_, err = store.Lookup("carol")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCSVLookupReturnsFirstMatch(t *testing.T) {
	store := NewCSV(filepath.Join(t.TempDir(), "users.csv"))

	// The store does not enforce uniqueness; the first row wins on read.
	require.NoError(t, store.Append("alice", "first"))
	require.NoError(t, store.Append("alice", "second"))

	hash, err := store.Lookup("alice")
	require.NoError(t, err)
	assert.Equal(t, "first", hash)
}

func TestCSVSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.csv")

	require.NoError(t, NewCSV(path).Append("alice", "hash"))

	hash, err := NewCSV(path).Lookup("alice")
	require.NoError(t, err)
	assert.Equal(t, "hash", hash)
}

func TestCSVHandlesCommasInHash(t *testing.T) {
	store := NewCSV(filepath.Join(t.TempDir(), "users.csv"))

	require.NoError(t, store.Append("alice", `ha,sh"value`))

	hash, err := store.Lookup("alice")
	require.NoError(t, err)
	assert.Equal(t, `ha,sh"value`, hash)
}
