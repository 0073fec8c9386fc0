package db

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Demureaxs/weaver-final-v1/internal/domain/entities"
)

// newTestDB opens a uniquely named shared in-memory database so every test
// gets an isolated schema while connection pooling still sees one store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	require.NoError(t, err)
	require.NoError(t, Migrate(gdb))
	return gdb
}

func seedUser(t *testing.T, gdb *gorm.DB, credits int) *entities.User {
	t.Helper()
	user, err := entities.NewUser(uuid.NewString()+"@example.com", "password123", "Test User")
	require.NoError(t, err)
	profile := entities.NewProfile(user.ID)
	profile.Credits = credits
	require.NoError(t, NewUserRepository(gdb).Create(context.Background(), user, profile))
	return user
}
