package infrastructure

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Demureaxs/weaver-final-v1/internal/domain/entities"
)

func TestSessionIssueAndResolve(t *testing.T) {
	svc := NewSessionService("test-secret", 8*time.Hour)

	token, expires, err := svc.Issue("user-42")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(8*time.Hour), expires, time.Minute)

	userID, ok := svc.Resolve(token)
	assert.True(t, ok)
	assert.Equal(t, "user-42", userID)
}

func TestSessionResolveBadTokens(t *testing.T) {
	svc := NewSessionService("test-secret", time.Hour)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, ok := svc.Resolve(token)
		assert.False(t, ok, "token %q", token)
	}

	// A token sealed with a different secret does not resolve.
	other := NewSessionService("other-secret", time.Hour)
	token, _, err := other.Issue("user-42")
	require.NoError(t, err)
	_, ok := svc.Resolve(token)
	assert.False(t, ok)
}

func TestSessionResolveExpired(t *testing.T) {
	svc := NewSessionService("test-secret", -time.Minute)

	token, _, err := svc.Issue("user-42")
	require.NoError(t, err)
	_, ok := svc.Resolve(token)
	assert.False(t, ok)
}

func TestSessionIssueWithoutSecret(t *testing.T) {
	svc := NewSessionService("", time.Hour)
	_, _, err := svc.Issue("user-42")
	assert.ErrorIs(t, err, entities.ErrNotConfigured)
}
