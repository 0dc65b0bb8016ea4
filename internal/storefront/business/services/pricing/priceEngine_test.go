package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gostorefront_api/internal/storefront/business/models"
)

func floatPtr(v float64) *float64 { return &v }

func TestLineTotalUsesDiscountedPriceWhenPresent(t *testing.T) {
	full := models.Product{ID: "p1", Price: 89}
	discounted := models.Product{ID: "p2", Price: 79, DiscountedPrice: floatPtr(65)}

	assert.Equal(t, 178.0, LineTotal(full, 2))
	assert.Equal(t, 65.0, LineTotal(discounted, 1))
}

func TestSubtotalPlainCart(t *testing.T) {
	cart := []models.CartItem{
		{Product: models.Product{ID: "p1", Price: 89}, Quantity: 2},
	}

	assert.Equal(t, 178.0, Subtotal(cart))
	assert.Equal(t, 0.0, ProductDiscountTotal(cart))
	assert.Equal(t, 178.0, GrandTotal(cart, nil))
}

func TestSubtotalWithProductDiscount(t *testing.T) {
	cart := []models.CartItem{
		{Product: models.Product{ID: "p2", Price: 79, DiscountedPrice: floatPtr(65)}, Quantity: 1},
	}

	assert.Equal(t, 65.0, Subtotal(cart))
	assert.Equal(t, 14.0, ProductDiscountTotal(cart))
	assert.Equal(t, 65.0, GrandTotal(cart, nil))
}

func TestPromoAppliesToDiscountedSubtotal(t *testing.T) {
	cart := []models.CartItem{
		{Product: models.Product{ID: "p2", Price: 79, DiscountedPrice: floatPtr(65)}, Quantity: 1},
	}
	welcome := &models.PromoCode{Code: "WELCOME10", Rate: 0.1}

	subtotal := Subtotal(cart)
	assert.InDelta(t, 6.5, PromoDiscount(subtotal, welcome), 1e-9)
	assert.InDelta(t, 58.5, GrandTotal(cart, welcome), 1e-9)
}

func TestEmptyCartTotalsAreZero(t *testing.T) {
	assert.Equal(t, 0.0, Subtotal(nil))
	assert.Equal(t, 0.0, ProductDiscountTotal(nil))
	assert.Equal(t, 0.0, GrandTotal(nil, &models.PromoCode{Code: "SUMMER20", Rate: 0.2}))
}

func TestSubtotalEqualsSumOfLineTotals(t *testing.T) {
	cart := []models.CartItem{
		{Product: models.Product{ID: "p1", Price: 89}, Quantity: 2},
		{Product: models.Product{ID: "p2", Price: 79, DiscountedPrice: floatPtr(65)}, Quantity: 3},
		{Product: models.Product{ID: "p3", Price: 25}, Quantity: 1},
	}

	sum := 0.0
	for _, item := range cart {
		sum += LineTotal(item.Product, item.Quantity)
	}
	assert.Equal(t, sum, Subtotal(cart))
}

func TestGrandTotalMatchesRateFormula(t *testing.T) {
	cart := []models.CartItem{
		{Product: models.Product{ID: "p1", Price: 89}, Quantity: 2},
		{Product: models.Product{ID: "p7", Price: 65, DiscountedPrice: floatPtr(55)}, Quantity: 1},
	}
	summer := &models.PromoCode{Code: "SUMMER20", Rate: 0.2}

	assert.InDelta(t, Subtotal(cart)*(1-summer.Rate), GrandTotal(cart, summer), 1e-9)
}

func TestFormatPriceRoundsForDisplayOnly(t *testing.T) {
	assert.Equal(t, "59 kr", FormatPrice(58.5, "kr"))
	assert.Equal(t, "178 kr", FormatPrice(178, "kr"))
	assert.Equal(t, "6 kr", FormatPrice(6.4, "kr"))
}
