package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"gostorefront_api/internal/storefront/business/models"
)

type staticRules []models.DiscountRule

func (r staticRules) GetActiveRules() []models.DiscountRule {
	return r
}

func intPtr(v int) *int { return &v }

var testSession = models.Session{UserID: "u1", LocationID: "location1"}

func TestEffectiveUnitPriceNoRules(t *testing.T) {
	engine := NewRuleEngine(staticRules{}, nil)
	product := models.Product{ID: "p1", Price: 89}

	assert.Equal(t, 89.0, engine.EffectiveUnitPrice(product, testSession, time.Now()))
}

func TestPercentageRuleByCategory(t *testing.T) {
	engine := NewRuleEngine(staticRules{
		{
			ID: "disc3", Type: models.DiscountPercentage, Value: 15,
			Conditions: models.DiscountConditions{CategoryIDs: []string{"cat4"}},
			Active:     true,
		},
	}, nil)

	breakfast := models.Product{
		ID: "p5", Price: 40,
		Categories:     []models.Category{{ID: "cat4", Name: "Breakfast"}},
		BestBeforeDate: time.Now().Add(5 * 24 * time.Hour),
	}
	snack := models.Product{
		ID: "p4", Price: 40,
		Categories:     []models.Category{{ID: "cat2", Name: "Snacks"}},
		BestBeforeDate: time.Now().Add(5 * 24 * time.Hour),
	}

	assert.InDelta(t, 34.0, engine.EffectiveUnitPrice(breakfast, testSession, time.Now()), 1e-9)
	assert.Equal(t, 40.0, engine.EffectiveUnitPrice(snack, testSession, time.Now()))
}

func TestFixedRuleClampsAtZero(t *testing.T) {
	engine := NewRuleEngine(staticRules{
		{
			ID: "disc2", Type: models.DiscountFixed, Value: 10,
			Conditions: models.DiscountConditions{CategoryIDs: []string{"cat5"}},
			Active:     true,
		},
	}, nil)

	cheapVegan := models.Product{
		ID: "p9", Price: 8,
		Categories: []models.Category{{ID: "cat5", Name: "Vegan"}},
	}

	assert.Equal(t, 0.0, engine.EffectiveUnitPrice(cheapVegan, testSession, time.Now()))
}

func TestExpiryRuleOnlyAppliesInsideWindow(t *testing.T) {
	now := time.Now()
	engine := NewRuleEngine(staticRules{
		{
			ID: "disc1", Type: models.DiscountPercentage, Value: 20,
			Conditions: models.DiscountConditions{DaysBeforeExpiry: intPtr(2)},
			Active:     true,
		},
	}, nil)

	expiring := models.Product{ID: "p7", Price: 65, BestBeforeDate: now.Add(24 * time.Hour)}
	fresh := models.Product{ID: "p4", Price: 35, BestBeforeDate: now.Add(60 * 24 * time.Hour)}

	assert.InDelta(t, 52.0, engine.EffectiveUnitPrice(expiring, testSession, now), 1e-9)
	assert.Equal(t, 35.0, engine.EffectiveUnitPrice(fresh, testSession, now))
}

func TestLocationConditionUsesSession(t *testing.T) {
	engine := NewRuleEngine(staticRules{
		{
			ID: "disc4", Type: models.DiscountPercentage, Value: 50,
			Conditions: models.DiscountConditions{LocationIDs: []string{"location2"}},
			Active:     true,
		},
	}, nil)
	product := models.Product{ID: "p3", Price: 25}

	assert.Equal(t, 25.0, engine.EffectiveUnitPrice(product, testSession, time.Now()))

	solna := models.Session{UserID: "u1", LocationID: "location2"}
	assert.InDelta(t, 12.5, engine.EffectiveUnitPrice(product, solna, time.Now()), 1e-9)
}

func TestExplicitDiscountWinsWhenLower(t *testing.T) {
	engine := NewRuleEngine(staticRules{
		{
			ID: "disc5", Type: models.DiscountPercentage, Value: 10,
			Conditions: models.DiscountConditions{},
			Active:     true,
		},
	}, nil)

	// Explicit 65 beats the 10% rule price of 71.1.
	product := models.Product{ID: "p2", Price: 79, DiscountedPrice: floatPtr(65)}
	assert.Equal(t, 65.0, engine.EffectiveUnitPrice(product, testSession, time.Now()))

	// A deeper rule cut beats the explicit discount.
	half := NewRuleEngine(staticRules{
		{ID: "disc6", Type: models.DiscountPercentage, Value: 50, Active: true},
	}, nil)
	assert.InDelta(t, 39.5, half.EffectiveUnitPrice(product, testSession, time.Now()), 1e-9)
}

func TestQuoteBreakdown(t *testing.T) {
	engine := NewRuleEngine(staticRules{}, nil)
	items := []models.CartItem{
		{Product: models.Product{ID: "p1", Name: "Chicken Salad", Price: 89}, Quantity: 2},
		{Product: models.Product{ID: "p2", Name: "Vegan Avocado Wrap", Price: 79, DiscountedPrice: floatPtr(65)}, Quantity: 1},
	}
	welcome := &models.PromoCode{Code: "WELCOME10", Rate: 0.1}

	quote := engine.Quote(items, welcome, testSession, time.Now())

	assert.Len(t, quote.Lines, 2)
	assert.Equal(t, 243.0, quote.Subtotal)
	assert.Equal(t, 14.0, quote.ProductDiscount)
	assert.InDelta(t, 24.3, quote.PromoDiscount, 1e-9)
	assert.InDelta(t, 218.7, quote.Total, 1e-9)
	assert.Equal(t, welcome, quote.Promo)
}

func TestQuoteEmptyCart(t *testing.T) {
	engine := NewRuleEngine(staticRules{}, nil)
	quote := engine.Quote(nil, nil, testSession, time.Now())

	assert.Empty(t, quote.Lines)
	assert.Equal(t, 0.0, quote.Total)
}
