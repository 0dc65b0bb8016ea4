package pricing

import (
	"fmt"
	"math"

	"gostorefront_api/internal/storefront/business/models"
)

// Pure functions over a cart snapshot. No rounding happens here; totals keep
// full float precision and are rounded at presentation time only.

// UnitPrice is the discounted price when set, the base price otherwise.
func UnitPrice(p models.Product) float64 {
	return p.EffectivePrice()
}

func LineTotal(p models.Product, quantity int) float64 {
	return UnitPrice(p) * float64(quantity)
}

// Subtotal sums the line totals. An empty cart yields 0, not an error.
func Subtotal(items []models.CartItem) float64 {
	total := 0.0
	for _, item := range items {
		total += LineTotal(item.Product, item.Quantity)
	}
	return total
}

// ProductDiscountTotal is the amount saved through per-product discounted
// prices, before any promo code.
func ProductDiscountTotal(items []models.CartItem) float64 {
	total := 0.0
	for _, item := range items {
		if item.Product.DiscountedPrice != nil {
			total += (item.Product.Price - *item.Product.DiscountedPrice) * float64(item.Quantity)
		}
	}
	return total
}

// PromoDiscount applies the promo rate to the already-discounted subtotal.
// Stacking order is fixed: per-item discounts first, then the promo.
func PromoDiscount(subtotal float64, promo *models.PromoCode) float64 {
	if promo == nil {
		return 0
	}
	return subtotal * promo.Rate
}

func GrandTotal(items []models.CartItem, promo *models.PromoCode) float64 {
	subtotal := Subtotal(items)
	return subtotal - PromoDiscount(subtotal, promo)
}

// FormatPrice renders an amount for display, rounding to whole units the way
// the storefront shows prices.
func FormatPrice(amount float64, currency string) string {
	return fmt.Sprintf("%.0f %s", math.Round(amount), currency)
}
