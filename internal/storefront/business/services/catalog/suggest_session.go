package catalog

import (
	"context"
	"sync"
	"time"

	"gostorefront_api/internal/storefront/business/models"
)

const DefaultDebounceInterval = 300 * time.Millisecond

type Suggester interface {
	Suggest(ctx context.Context, query string) ([]models.Product, error)
}

// SuggestionSession serializes concurrent lookups so that only the result of
// the most-recently-issued query is ever published. A slow response for an
// older query is discarded, never applied over a newer one.
type SuggestionSession struct {
	suggester Suggester
	debounce  time.Duration

	mu         sync.Mutex
	lastIssued uint64
	appliedID  uint64
	current    []models.Product
}

func NewSuggestionSession(suggester Suggester) *SuggestionSession {
	return &SuggestionSession{
		suggester: suggester,
		debounce:  DefaultDebounceInterval,
	}
}

// DebounceInterval is how long a caller should wait after the last keystroke
// before issuing a lookup.
func (s *SuggestionSession) DebounceInterval() time.Duration {
	return s.debounce
}

// Lookup issues a query under a fresh request id and resolves it in the
// background. The returned channel reports completion; stale completions
// leave the published suggestions untouched.
func (s *SuggestionSession) Lookup(ctx context.Context, query string) <-chan error {
	s.mu.Lock()
	s.lastIssued++
	id := s.lastIssued
	s.mu.Unlock()

	done := make(chan error, 1)
	go func() {
		products, err := s.suggester.Suggest(ctx, query)
		if err != nil {
			done <- err
			return
		}

		s.mu.Lock()
		if id == s.lastIssued && id > s.appliedID {
			s.appliedID = id
			s.current = products
		}
		s.mu.Unlock()
		done <- nil
	}()
	return done
}

// Current returns the last published suggestion list.
func (s *SuggestionSession) Current() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]models.Product, len(s.current))
	copy(snapshot, s.current)
	return snapshot
}

// Reset clears published suggestions and invalidates in-flight lookups.
func (s *SuggestionSession) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastIssued++
	s.appliedID = s.lastIssued
	s.current = nil
}
