package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUserHashesPassword(t *testing.T) {
	user, err := NewUser("  Alice@Example.COM ", "hunter2secret", "Alice")
	require.NoError(t, err)

	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "hunter2secret", user.PasswordHash)

	assert.NoError(t, user.CheckPassword("hunter2secret"))
	assert.Error(t, user.CheckPassword("wrong"))
}

func TestNewUserRejectsEmptyFields(t *testing.T) {
	for _, tc := range []struct{ email, password, name string }{
		{"", "secret123", "Alice"},
		{"a@b.com", "", "Alice"},
		{"a@b.com", "secret123", ""},
	} {
		_, err := NewUser(tc.email, tc.password, tc.name)
		assert.ErrorIs(t, err, ErrInvalidRequest)
	}
}

func TestNewProfileStartsWithCredits(t *testing.T) {
	profile := NewProfile("user-1")
	assert.Equal(t, "user-1", profile.UserID)
	assert.Equal(t, StartingCredits, profile.Credits)
	assert.NotNil(t, profile.Keywords)
}
