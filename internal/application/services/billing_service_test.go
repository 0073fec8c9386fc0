package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Demureaxs/weaver-final-v1/internal/infrastructure"
	"github.com/Demureaxs/weaver-final-v1/internal/infrastructure/db"
)

func TestApplyPaymentEventGrantsOnce(t *testing.T) {
	gdb := newServiceDB(t)
	auth := NewAuthService(db.NewUserRepository(gdb), &recordingMailer{}, zap.NewNop())
	profiles := db.NewProfileRepository(gdb)
	svc := NewBillingService(nil, db.NewPaymentRepository(gdb), nil, zap.NewNop())
	ctx := context.Background()

	user, err := auth.Register(ctx, "buyer@example.com", "password123", "Buyer")
	require.NoError(t, err)

	event := &infrastructure.PaymentEvent{
		ID:                "evt_100",
		Type:              "checkout.session.completed",
		CheckoutCompleted: true,
		UserID:            user.ID,
		Credits:           500,
	}

	// The same event delivered three times grants exactly once.
	for i := 0; i < 3; i++ {
		require.NoError(t, svc.ApplyPaymentEvent(ctx, event))
	}

	profile, err := profiles.FindByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 550, profile.Credits)
}

func TestApplyPaymentEventIgnoresOtherTypes(t *testing.T) {
	gdb := newServiceDB(t)
	svc := NewBillingService(nil, db.NewPaymentRepository(gdb), nil, zap.NewNop())

	// Unhandled event types and incomplete metadata are acknowledged, never
	// retried by the provider.
	assert.NoError(t, svc.ApplyPaymentEvent(context.Background(), &infrastructure.PaymentEvent{
		ID:   "evt_other",
		Type: "invoice.paid",
	}))
	assert.NoError(t, svc.ApplyPaymentEvent(context.Background(), &infrastructure.PaymentEvent{
		ID:                "evt_nometa",
		Type:              "checkout.session.completed",
		CheckoutCompleted: true,
	}))
}
