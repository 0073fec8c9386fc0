package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrantCheckoutCreditsOnce(t *testing.T) {
	gdb := newTestDB(t)
	payments := NewPaymentRepository(gdb)
	profiles := NewProfileRepository(gdb)
	ctx := context.Background()
	user := seedUser(t, gdb, 50)

	granted, err := payments.GrantCheckoutCredits(ctx, "evt_1", "checkout.session.completed", user.ID, 500)
	require.NoError(t, err)
	assert.True(t, granted)

	profile, err := profiles.FindByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 550, profile.Credits)
}

// A redelivered event is acknowledged without a second grant.
func TestGrantCheckoutCreditsRedelivery(t *testing.T) {
	gdb := newTestDB(t)
	payments := NewPaymentRepository(gdb)
	profiles := NewProfileRepository(gdb)
	ctx := context.Background()
	user := seedUser(t, gdb, 50)

	for i, want := range []bool{true, false, false} {
		granted, err := payments.GrantCheckoutCredits(ctx, "evt_dup", "checkout.session.completed", user.ID, 500)
		require.NoError(t, err, "delivery %d", i)
		assert.Equal(t, want, granted, "delivery %d", i)
	}

	profile, err := profiles.FindByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 550, profile.Credits)
}

// Granting to a user with no profile fails and records nothing, so a retry
// after the profile exists can still succeed.
func TestGrantCheckoutCreditsMissingProfile(t *testing.T) {
	gdb := newTestDB(t)
	payments := NewPaymentRepository(gdb)
	ctx := context.Background()

	_, err := payments.GrantCheckoutCredits(ctx, "evt_ghost", "checkout.session.completed", "ghost", 500)
	assert.Error(t, err)

	user := seedUser(t, gdb, 0)
	granted, err := payments.GrantCheckoutCredits(ctx, "evt_retry", "checkout.session.completed", user.ID, 500)
	require.NoError(t, err)
	assert.True(t, granted)
}
