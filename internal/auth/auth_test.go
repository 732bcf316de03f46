package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	ts := NewTokenSource("test-secret", time.Minute)

	token, err := ts.Issue("alice")
	require.NoError(t, err)

	username, err := ts.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", username)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	ts := NewTokenSource("test-secret", time.Minute)

	_, err := ts.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	token, err := NewTokenSource("secret-one", time.Minute).Issue("alice")
	require.NoError(t, err)

	_, err = NewTokenSource("secret-two", time.Minute).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsExpired(t *testing.T) {
	token, err := NewTokenSource("test-secret", -time.Minute).Issue("alice")
	require.NoError(t, err)

	_, err = NewTokenSource("test-secret", -time.Minute).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
