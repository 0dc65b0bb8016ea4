package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gostorefront_api/internal/storefront/business/models"
	"gostorefront_api/internal/storefront/storage"
	"gostorefront_api/pkg/business/service"
)

type staticSource []models.Product

func (s staticSource) GetProducts() []models.Product {
	return s
}

func newTestSuggestionEngine(latency time.Duration) *SuggestionEngine {
	return NewSuggestionEngine(
		staticSource(storage.FixtureProducts()),
		service.NewTextService(),
		SuggestConfig{Latency: latency},
		nil,
	)
}

func TestSuggestBlankQueryResolvesEmptyImmediately(t *testing.T) {
	engine := newTestSuggestionEngine(time.Second)

	start := time.Now()
	suggestions, err := engine.Suggest(context.Background(), "   ")
	require.NoError(t, err)

	assert.Empty(t, suggestions)
	assert.Less(t, time.Since(start), 200*time.Millisecond, "blank query must short-circuit the latency")
}

func TestSuggestMatchesCategoryName(t *testing.T) {
	engine := newTestSuggestionEngine(time.Millisecond)

	suggestions, err := engine.Suggest(context.Background(), "drinks")
	require.NoError(t, err)

	ids := productIDs(suggestions)
	assert.Equal(t, []string{"prod3", "prod8"}, ids)
}

func TestSuggestExcludesInactiveProducts(t *testing.T) {
	inactive := false
	engine := NewSuggestionEngine(staticSource{
		{ID: "p1", Name: "Iced Coffee"},
		{ID: "p2", Name: "Iced Coffee Deluxe", Active: &inactive},
	}, service.NewTextService(), SuggestConfig{Latency: time.Millisecond}, nil)

	suggestions, err := engine.Suggest(context.Background(), "coffee")
	require.NoError(t, err)
	assert.Equal(t, []string{"p1"}, productIDs(suggestions))
}

func TestSuggestHonorsContextCancellation(t *testing.T) {
	engine := newTestSuggestionEngine(time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := engine.Suggest(ctx, "coffee")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

// delayedSuggester resolves each query after a fixed per-query delay, so a
// test can force an older response to arrive after a newer one.
type delayedSuggester struct {
	delays  map[string]time.Duration
	results map[string][]models.Product
}

func (d *delayedSuggester) Suggest(ctx context.Context, query string) ([]models.Product, error) {
	select {
	case <-time.After(d.delays[query]):
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return d.results[query], nil
}

func TestSessionDiscardsStaleResponses(t *testing.T) {
	suggester := &delayedSuggester{
		delays: map[string]time.Duration{
			"a":   120 * time.Millisecond, // oldest query resolves last
			"ab":  60 * time.Millisecond,
			"abc": 10 * time.Millisecond,
		},
		results: map[string][]models.Product{
			"a":   {{ID: "p1"}, {ID: "p2"}, {ID: "p3"}},
			"ab":  {{ID: "p1"}, {ID: "p2"}},
			"abc": {{ID: "p1"}},
		},
	}
	session := NewSuggestionSession(suggester)

	ctx := context.Background()
	first := session.Lookup(ctx, "a")
	second := session.Lookup(ctx, "ab")
	third := session.Lookup(ctx, "abc")

	require.NoError(t, <-third)
	require.NoError(t, <-second)
	require.NoError(t, <-first)

	// Only the most recently issued query may publish, even though "a"
	// finished after "abc".
	assert.Equal(t, []string{"p1"}, productIDs(session.Current()))
}

func TestSessionPublishesNewestResult(t *testing.T) {
	suggester := &delayedSuggester{
		delays:  map[string]time.Duration{"coffee": time.Millisecond},
		results: map[string][]models.Product{"coffee": {{ID: "prod8"}}},
	}
	session := NewSuggestionSession(suggester)

	require.NoError(t, <-session.Lookup(context.Background(), "coffee"))
	assert.Equal(t, []string{"prod8"}, productIDs(session.Current()))
}

func TestSessionResetClearsSuggestions(t *testing.T) {
	suggester := &delayedSuggester{
		delays:  map[string]time.Duration{"coffee": time.Millisecond},
		results: map[string][]models.Product{"coffee": {{ID: "prod8"}}},
	}
	session := NewSuggestionSession(suggester)

	require.NoError(t, <-session.Lookup(context.Background(), "coffee"))
	session.Reset()
	assert.Empty(t, session.Current())
}

func TestSessionResetInvalidatesInFlightLookups(t *testing.T) {
	suggester := &delayedSuggester{
		delays:  map[string]time.Duration{"coffee": 50 * time.Millisecond},
		results: map[string][]models.Product{"coffee": {{ID: "prod8"}}},
	}
	session := NewSuggestionSession(suggester)

	done := session.Lookup(context.Background(), "coffee")
	session.Reset()
	require.NoError(t, <-done)

	assert.Empty(t, session.Current())
}

func TestSessionDefaultDebounceInterval(t *testing.T) {
	session := NewSuggestionSession(&delayedSuggester{})
	assert.Equal(t, DefaultDebounceInterval, session.DebounceInterval())
}
