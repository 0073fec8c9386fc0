package db

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Demureaxs/weaver-final-v1/internal/domain/entities"
)

func TestProfileDebitAndCredit(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewProfileRepository(gdb)
	ctx := context.Background()
	user := seedUser(t, gdb, 50)

	balance, err := repo.Debit(ctx, user.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 45, balance)

	balance, err = repo.Credit(ctx, user.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 50, balance)
}

func TestProfileDebitInsufficient(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewProfileRepository(gdb)
	ctx := context.Background()
	user := seedUser(t, gdb, 3)

	_, err := repo.Debit(ctx, user.ID, 5)
	assert.ErrorIs(t, err, entities.ErrInsufficientCredits)

	// A refused debit leaves the balance untouched.
	profile, err := repo.FindByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, profile.Credits)
}

func TestProfileDebitExactBalance(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewProfileRepository(gdb)
	ctx := context.Background()
	user := seedUser(t, gdb, 5)

	balance, err := repo.Debit(ctx, user.ID, 5)
	require.NoError(t, err)
	assert.Zero(t, balance)
}

func TestProfileDebitMissingProfile(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewProfileRepository(gdb)
	ctx := context.Background()

	_, err := repo.Debit(ctx, "ghost", 5)
	assert.ErrorIs(t, err, entities.ErrNotFound)
	_, err = repo.Credit(ctx, "ghost", 5)
	assert.ErrorIs(t, err, entities.ErrNotFound)
}

// Concurrent debits are guarded by a conditional update, so no interleaving
// can drive the balance negative.
func TestProfileDebitConcurrent(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewProfileRepository(gdb)
	ctx := context.Background()
	user := seedUser(t, gdb, 20)

	const workers = 10
	const amount = 5

	var successes int64
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.Debit(ctx, user.ID, amount); err == nil {
				atomic.AddInt64(&successes, 1)
			}
		}()
	}
	wg.Wait()

	profile, err := repo.FindByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, profile.Credits, 0)
	assert.Equal(t, 20-int(successes)*amount, profile.Credits)
}

func TestProfileUpdateKeywords(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewProfileRepository(gdb)
	ctx := context.Background()
	user := seedUser(t, gdb, 50)

	profile, err := repo.UpdateKeywords(ctx, user.ID, []string{"seo", "content marketing"})
	require.NoError(t, err)
	assert.Equal(t, []string{"seo", "content marketing"}, []string(profile.Keywords))
}
