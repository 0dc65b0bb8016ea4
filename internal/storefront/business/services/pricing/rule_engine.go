package pricing

import (
	"time"

	"gostorefront_api/internal/storefront/business/models"
	"gostorefront_api/pkg/logger"
)

// RuleSource feeds the engine the admin-defined rules currently switched on.
type RuleSource interface {
	GetActiveRules() []models.DiscountRule
}

// RuleEngine folds catalog-wide discount rules into per-item pricing. The
// effective unit price is the lowest of the explicit discounted price and the
// best applicable rule, never below zero.
type RuleEngine struct {
	rules RuleSource
	log   logger.Logger
}

func NewRuleEngine(rules RuleSource, log logger.Logger) *RuleEngine {
	return &RuleEngine{rules: rules, log: log}
}

func (e *RuleEngine) EffectiveUnitPrice(p models.Product, session models.Session, now time.Time) float64 {
	best := p.EffectivePrice()
	for _, rule := range e.rules.GetActiveRules() {
		if !ruleApplies(rule, p, session, now) {
			continue
		}
		if candidate := applyRule(rule, p.Price); candidate < best {
			best = candidate
		}
	}
	if best < 0 {
		best = 0
	}
	return best
}

func ruleApplies(rule models.DiscountRule, p models.Product, session models.Session, now time.Time) bool {
	conditions := rule.Conditions

	if conditions.DaysBeforeExpiry != nil {
		window := time.Duration(*conditions.DaysBeforeExpiry) * 24 * time.Hour
		if p.BestBeforeDate.After(now.Add(window)) {
			return false
		}
	}

	if len(conditions.CategoryIDs) > 0 {
		matched := false
		for _, id := range conditions.CategoryIDs {
			if p.HasCategory(id) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	if len(conditions.LocationIDs) > 0 {
		matched := false
		for _, id := range conditions.LocationIDs {
			if id == session.LocationID {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	return true
}

// applyRule computes the rule-adjusted price off the base price.
func applyRule(rule models.DiscountRule, basePrice float64) float64 {
	switch rule.Type {
	case models.DiscountPercentage:
		return basePrice * (1 - rule.Value/100)
	case models.DiscountFixed:
		return basePrice - rule.Value
	default:
		return basePrice
	}
}

type QuoteLine struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	LineTotal float64 `json:"lineTotal"`
}

// Quote is the itemized breakdown surfaced to the order summary and checkout.
type Quote struct {
	Lines           []QuoteLine       `json:"lines"`
	Subtotal        float64           `json:"subtotal"`
	ProductDiscount float64           `json:"productDiscount"`
	PromoDiscount   float64           `json:"promoDiscount"`
	Total           float64           `json:"total"`
	Promo           *models.PromoCode `json:"promo,omitempty"`
}

// Quote prices a cart snapshot with rules and an optional promo applied.
// Per-item discounts (explicit or rule-driven) come first; the promo
// percentage then applies to the already-discounted subtotal.
func (e *RuleEngine) Quote(items []models.CartItem, promo *models.PromoCode, session models.Session, now time.Time) Quote {
	quote := Quote{Promo: promo, Lines: make([]QuoteLine, 0, len(items))}

	for _, item := range items {
		unit := e.EffectiveUnitPrice(item.Product, session, now)
		line := QuoteLine{
			ProductID: item.Product.ID,
			Name:      item.Product.Name,
			Quantity:  item.Quantity,
			UnitPrice: unit,
			LineTotal: unit * float64(item.Quantity),
		}
		quote.Lines = append(quote.Lines, line)
		quote.Subtotal += line.LineTotal
		quote.ProductDiscount += (item.Product.Price - unit) * float64(item.Quantity)
	}

	quote.PromoDiscount = PromoDiscount(quote.Subtotal, promo)
	quote.Total = quote.Subtotal - quote.PromoDiscount
	return quote
}
