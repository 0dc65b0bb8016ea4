package catalog

import (
	"context"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"gostorefront_api/internal/storefront/business/models"
	"gostorefront_api/metrics"
	"gostorefront_api/pkg/business/service"
	"gostorefront_api/pkg/logger"
)

const (
	DefaultSuggestLatency = 300 * time.Millisecond
	suggestRateLimit      = rate.Limit(20)
	suggestRateBurst      = 5
)

// ProductSource is the slice of the catalog the suggestion engine reads.
type ProductSource interface {
	GetProducts() []models.Product
}

type SuggestConfig struct {
	Latency   time.Duration
	RateLimit rate.Limit
	Burst     int
}

// SuggestionEngine matches an in-progress query against the catalog,
// simulating a remote lookup with a configurable latency.
type SuggestionEngine struct {
	source  ProductSource
	text    service.ITextService
	latency time.Duration
	limiter *rate.Limiter
	log     logger.Logger
}

func NewSuggestionEngine(source ProductSource, text service.ITextService, config SuggestConfig, log logger.Logger) *SuggestionEngine {
	if config.Latency <= 0 {
		config.Latency = DefaultSuggestLatency
	}
	if config.RateLimit <= 0 {
		config.RateLimit = suggestRateLimit
	}
	if config.Burst <= 0 {
		config.Burst = suggestRateBurst
	}
	return &SuggestionEngine{
		source:  source,
		text:    text,
		latency: config.Latency,
		limiter: rate.NewLimiter(config.RateLimit, config.Burst),
		log:     log,
	}
}

// Suggest resolves a ranked match list for the query. A blank query resolves
// to an empty list without doing any matching work. Inactive products never
// surface; the category, vegan and stock filters do not apply here.
func (e *SuggestionEngine) Suggest(ctx context.Context, query string) ([]models.Product, error) {
	if strings.TrimSpace(query) == "" {
		return []models.Product{}, nil
	}

	if err := e.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	// Simulated network latency standing in for a remote search service.
	start := time.Now()
	select {
	case <-time.After(e.latency):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	normalized := e.text.Normalize(query)
	products := e.source.GetProducts()
	matches := make([]models.Product, 0)
	for _, p := range products {
		if !p.IsActive() {
			continue
		}
		if e.matches(p, normalized) {
			matches = append(matches, p)
		}
	}

	metrics.RecordSuggestionLookup(time.Since(start))
	if e.log != nil {
		e.log.Log("suggest %q matched %d products", query, len(matches))
	}
	return matches, nil
}

func (e *SuggestionEngine) matches(p models.Product, query string) bool {
	if e.text.Contains(p.Name, query) || e.text.Contains(e.text.RemoveTags(p.Description), query) {
		return true
	}
	for _, c := range p.Categories {
		if e.text.Contains(c.Name, query) {
			return true
		}
	}
	return false
}
