package models

import "time"

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

type DiscountConditions struct {
	DaysBeforeExpiry *int     `json:"daysBeforeExpiry,omitempty"`
	CategoryIDs      []string `json:"categoryIds,omitempty"`
	LocationIDs      []string `json:"locationIds,omitempty"`
}

// DiscountRule is an admin-defined catalog-wide discount, distinct from the
// per-product DiscountedPrice and from promo codes.
type DiscountRule struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Type        DiscountType       `json:"type"`
	Value       float64            `json:"value"`
	Conditions  DiscountConditions `json:"conditions"`
	Active      bool               `json:"active"`
	CreatedAt   time.Time          `json:"createdAt"`
}
