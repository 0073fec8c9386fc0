package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Demureaxs/weaver-final-v1/internal/domain/entities"
	"github.com/Demureaxs/weaver-final-v1/internal/infrastructure/db"
)

type recordingMailer struct {
	sent []string
}

func (m *recordingMailer) SendWelcome(toEmail, toName string) error {
	m.sent = append(m.sent, toEmail)
	return nil
}

func newServiceDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := db.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))
	return gdb
}

func TestRegisterCreatesUserWithStartingCredits(t *testing.T) {
	gdb := newServiceDB(t)
	mailer := &recordingMailer{}
	svc := NewAuthService(db.NewUserRepository(gdb), mailer, zap.NewNop())

	user, err := svc.Register(context.Background(), "new@example.com", "password123", "Newcomer")
	require.NoError(t, err)

	require.NotNil(t, user.Profile)
	assert.Equal(t, entities.StartingCredits, user.Profile.Credits)
	assert.Equal(t, []string{"new@example.com"}, mailer.sent)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	gdb := newServiceDB(t)
	svc := NewAuthService(db.NewUserRepository(gdb), &recordingMailer{}, zap.NewNop())
	ctx := context.Background()

	_, err := svc.Register(ctx, "taken@example.com", "password123", "First")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "taken@example.com", "different456", "Second")
	assert.ErrorIs(t, err, entities.ErrConflict)
}

func TestLogin(t *testing.T) {
	gdb := newServiceDB(t)
	svc := NewAuthService(db.NewUserRepository(gdb), &recordingMailer{}, zap.NewNop())
	ctx := context.Background()

	_, err := svc.Register(ctx, "login@example.com", "password123", "User")
	require.NoError(t, err)

	user, err := svc.Login(ctx, "login@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "login@example.com", user.Email)

	// Wrong password and unknown email both look the same to the caller.
	_, err = svc.Login(ctx, "login@example.com", "wrongwrong")
	assert.ErrorIs(t, err, entities.ErrUnauthorized)
	_, err = svc.Login(ctx, "nobody@example.com", "password123")
	assert.ErrorIs(t, err, entities.ErrUnauthorized)
}
