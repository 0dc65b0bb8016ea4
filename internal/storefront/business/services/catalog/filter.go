package catalog

import (
	"gostorefront_api/internal/storefront/business/models"
	"gostorefront_api/pkg/business/service"
)

// Criteria narrows the visible product set. A zero CategoryID means all
// categories; ActiveOnly defaults to true via NewCriteria.
type Criteria struct {
	CategoryID string
	Query      string
	VeganOnly  bool
	ActiveOnly bool
}

func NewCriteria() Criteria {
	return Criteria{ActiveOnly: true}
}

type FilterEngine struct {
	text service.ITextService
}

func NewFilterEngine(text service.ITextService) *FilterEngine {
	return &FilterEngine{text: text}
}

// Filter applies the stages in a fixed order: active, vegan, category, query.
// All predicates commute; the order only narrows early. The catalog's
// insertion order is preserved.
func (e *FilterEngine) Filter(products []models.Product, criteria Criteria) []models.Product {
	results := make([]models.Product, 0, len(products))
	for _, p := range products {
		results = append(results, p)
	}

	if criteria.ActiveOnly {
		results = keep(results, func(p models.Product) bool {
			return p.IsActive()
		})
	}

	if criteria.VeganOnly {
		results = keep(results, func(p models.Product) bool {
			return p.IsVegan
		})
	}

	if criteria.CategoryID != "" {
		results = keep(results, func(p models.Product) bool {
			return p.HasCategory(criteria.CategoryID)
		})
	}

	if query := e.text.Normalize(criteria.Query); query != "" {
		results = keep(results, func(p models.Product) bool {
			return e.text.Contains(p.Name, query) ||
				e.text.Contains(e.text.RemoveTags(p.Description), query)
		})
	}

	return results
}

func keep(products []models.Product, predicate func(models.Product) bool) []models.Product {
	filtered := products[:0]
	for _, p := range products {
		if predicate(p) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
