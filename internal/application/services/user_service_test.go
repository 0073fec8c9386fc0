package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Demureaxs/weaver-final-v1/internal/domain/entities"
	"github.com/Demureaxs/weaver-final-v1/internal/infrastructure/db"
)

func TestAdjustCredits(t *testing.T) {
	gdb := newServiceDB(t)
	auth := NewAuthService(db.NewUserRepository(gdb), &recordingMailer{}, zap.NewNop())
	svc := NewUserService(db.NewUserRepository(gdb), db.NewProfileRepository(gdb))
	ctx := context.Background()

	user, err := auth.Register(ctx, "credits@example.com", "password123", "User")
	require.NoError(t, err)

	balance, err := svc.AdjustCredits(ctx, user.ID, 10, "add")
	require.NoError(t, err)
	assert.Equal(t, 60, balance)

	balance, err = svc.AdjustCredits(ctx, user.ID, 60, "deduct")
	require.NoError(t, err)
	assert.Zero(t, balance)

	// Deducting below zero is refused outright.
	_, err = svc.AdjustCredits(ctx, user.ID, 1, "deduct")
	assert.ErrorIs(t, err, entities.ErrInsufficientCredits)

	_, err = svc.AdjustCredits(ctx, user.ID, -5, "add")
	assert.ErrorIs(t, err, entities.ErrInvalidRequest)
	_, err = svc.AdjustCredits(ctx, user.ID, 5, "transfer")
	assert.ErrorIs(t, err, entities.ErrInvalidRequest)
}

func TestUpdateKeywordsRoundTrip(t *testing.T) {
	gdb := newServiceDB(t)
	auth := NewAuthService(db.NewUserRepository(gdb), &recordingMailer{}, zap.NewNop())
	svc := NewUserService(db.NewUserRepository(gdb), db.NewProfileRepository(gdb))
	ctx := context.Background()

	user, err := auth.Register(ctx, "kw@example.com", "password123", "User")
	require.NoError(t, err)

	profile, err := svc.UpdateKeywords(ctx, user.ID, []string{"espresso", "latte art"})
	require.NoError(t, err)
	assert.Equal(t, []string{"espresso", "latte art"}, []string(profile.Keywords))

	credits, err := svc.GetCredits(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.StartingCredits, credits)
}
