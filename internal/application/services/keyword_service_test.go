package services

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Demureaxs/weaver-final-v1/internal/domain/entities"
)

func TestSuggestExpandsAllBatches(t *testing.T) {
	var mu sync.Mutex
	queried := map[string]bool{}
	fetch := func(ctx context.Context, query string) []string {
		mu.Lock()
		queried[query] = true
		mu.Unlock()
		return []string{query + " idea"}
	}

	svc := NewKeywordServiceWithFetcher(fetch)
	got, err := svc.Suggest(context.Background(), "coffee")
	require.NoError(t, err)

	assert.NotEmpty(t, got.Questions)
	assert.NotEmpty(t, got.Prepositions)
	assert.NotEmpty(t, got.Comparisons)
	assert.Len(t, got.Alphabetical, 26)

	// Question modifiers lead, everything else trails the seed.
	assert.True(t, queried["how coffee"])
	assert.True(t, queried["coffee vs"])
	assert.True(t, queried["coffee a"])
}

func TestSuggestDeduplicatesWithinBatch(t *testing.T) {
	fetch := func(ctx context.Context, query string) []string {
		return []string{"coffee beans", "coffee beans"}
	}
	svc := NewKeywordServiceWithFetcher(fetch)

	got, err := svc.Suggest(context.Background(), "coffee")
	require.NoError(t, err)
	assert.Len(t, got.Questions, 1)
}

func TestSuggestBlankKeyword(t *testing.T) {
	svc := NewKeywordServiceWithFetcher(func(ctx context.Context, query string) []string { return nil })
	_, err := svc.Suggest(context.Background(), "   ")
	assert.ErrorIs(t, err, entities.ErrInvalidRequest)
}

func TestEstimateSearchVolume(t *testing.T) {
	// Two words doubles the base, ten suggestions at 100 each.
	assert.Equal(t, "2.0K", EstimateSearchVolume("coffee beans", 10))
	// Five or more words halves it.
	assert.Equal(t, "250", EstimateSearchVolume("best way to brew strong coffee", 5))
	assert.Equal(t, "0", EstimateSearchVolume("coffee beans cheap", 0))
}

func TestEstimateDifficulty(t *testing.T) {
	// Single short keyword: 50+30+10 caps into Hard.
	assert.Equal(t, "Hard", EstimateDifficulty("coffee"))
	// Long question phrase: 50-20-15 lands in Easy.
	assert.Equal(t, "Easy", EstimateDifficulty("how to make cold brew coffee"))
	// Three medium words sit in the middle bucket.
	assert.Equal(t, "Medium", EstimateDifficulty("arabica coffee beans"))
}

func TestQuestionPrefixCaseInsensitive(t *testing.T) {
	easy := EstimateDifficulty("Where to buy arabica coffee beans")
	lower := EstimateDifficulty("where to buy arabica coffee beans")
	assert.Equal(t, lower, easy)
	assert.True(t, strings.EqualFold(lower, easy))
}
