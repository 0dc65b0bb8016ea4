package models

import "time"

type ProductRating string

const (
	RatingHeart      ProductRating = "heart"
	RatingThumbsUp   ProductRating = "thumbsUp"
	RatingAlright    ProductRating = "alright"
	RatingThumbsDown ProductRating = "thumbsDown"
)

type Product struct {
	ID                string                `json:"id"`
	Name              string                `json:"name"`
	Description       string                `json:"description"`
	Price             float64               `json:"price"`
	DiscountedPrice   *float64              `json:"discountedPrice,omitempty"`
	Image             string                `json:"image"`
	Categories        []Category            `json:"categories"`
	IsVegan           bool                  `json:"isVegan"`
	Ingredients       []string              `json:"ingredients"`
	Allergens         []string              `json:"allergens"`
	BestBeforeDate    time.Time             `json:"bestBeforeDate"`
	DueDate           *time.Time            `json:"dueDate,omitempty"`
	Ratings           map[ProductRating]int `json:"ratings"`
	LocationInventory map[string]int        `json:"locationInventory"`
	Active            *bool                 `json:"active,omitempty"`
}

// IsActive treats a missing flag as active, matching the catalog default.
func (p *Product) IsActive() bool {
	return p.Active == nil || *p.Active
}

// EffectivePrice is the discounted price when one is set, the base price otherwise.
func (p *Product) EffectivePrice() float64 {
	if p.DiscountedPrice != nil {
		return *p.DiscountedPrice
	}
	return p.Price
}

func (p *Product) HasCategory(categoryID string) bool {
	for _, c := range p.Categories {
		if c.ID == categoryID {
			return true
		}
	}
	return false
}
