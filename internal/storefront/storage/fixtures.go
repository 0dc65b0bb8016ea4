package storage

import (
	"time"

	"gostorefront_api/internal/storefront/business/models"
)

// Seed data standing in for a backend, mirroring the demo catalog.

func FixtureCategories() []models.Category {
	return []models.Category{
		{ID: "cat1", Name: "Meals"},
		{ID: "cat2", Name: "Snacks"},
		{ID: "cat3", Name: "Drinks"},
		{ID: "cat4", Name: "Breakfast"},
		{ID: "cat5", Name: "Vegan"},
		{ID: "cat6", Name: "Desserts"},
	}
}

func FixtureLocations() []models.Location {
	return []models.Location{
		{ID: "location1", Name: "Kista Galleria", Address: "Kista Galleria 1", City: "Stockholm"},
		{ID: "location2", Name: "Solna Business Park", Address: "Svetsarvägen 15", City: "Solna"},
		{ID: "location3", Name: "Nacka Forum", Address: "Nacka Forum 12", City: "Nacka"},
	}
}

func FixtureProducts() []models.Product {
	categories := FixtureCategories()
	now := time.Now()
	days := func(n int) time.Time { return now.Add(time.Duration(n) * 24 * time.Hour) }
	price := func(v float64) *float64 { return &v }

	return []models.Product{
		{
			ID:          "prod1",
			Name:        "Chicken Salad",
			Description: "Fresh chicken salad with mixed greens and our special dressing",
			Price:       89,
			Image:       "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?auto=format&fit=crop&w=500&h=500",
			Categories:  []models.Category{categories[0], categories[3]},
			IsVegan:     false,
			Ingredients: []string{"Chicken", "Lettuce", "Tomato", "Cucumber", "Dressing"},
			Allergens:   []string{"Egg", "Mustard"},

			BestBeforeDate: days(2),
			Ratings: map[models.ProductRating]int{
				models.RatingHeart:      24,
				models.RatingThumbsUp:   45,
				models.RatingAlright:    12,
				models.RatingThumbsDown: 3,
			},
			LocationInventory: map[string]int{"location1": 15, "location2": 8, "location3": 0},
		},
		{
			ID:              "prod2",
			Name:            "Vegan Avocado Wrap",
			Description:     "Delicious avocado wrap with hummus and fresh vegetables",
			Price:           79,
			DiscountedPrice: price(65),
			Image:           "https://images.unsplash.com/photo-1551326844-4df70f78d0e9?auto=format&fit=crop&w=500&h=500",
			Categories:      []models.Category{categories[0], categories[4]},
			IsVegan:         true,
			Ingredients:     []string{"Avocado", "Hummus", "Lettuce", "Tomato", "Tortilla"},
			Allergens:       []string{"Wheat"},
			BestBeforeDate:  days(1),
			Ratings: map[models.ProductRating]int{
				models.RatingHeart:      35,
				models.RatingThumbsUp:   28,
				models.RatingAlright:    9,
				models.RatingThumbsDown: 2,
			},
			LocationInventory: map[string]int{"location1": 5, "location2": 12, "location3": 7},
		},
		{
			ID:             "prod3",
			Name:           "Sparkling Water",
			Description:    "Refreshing sparkling water with hint of lemon",
			Price:          25,
			Image:          "https://images.unsplash.com/photo-1523362628745-0c100150b504?auto=format&fit=crop&w=500&h=500",
			Categories:     []models.Category{categories[2]},
			IsVegan:        true,
			Ingredients:    []string{"Carbonated Water", "Natural Flavors"},
			Allergens:      []string{},
			BestBeforeDate: days(30),
			Ratings: map[models.ProductRating]int{
				models.RatingHeart:      18,
				models.RatingThumbsUp:   42,
				models.RatingAlright:    23,
				models.RatingThumbsDown: 5,
			},
			LocationInventory: map[string]int{"location1": 25, "location2": 30, "location3": 28},
		},
		{
			ID:             "prod4",
			Name:           "Protein Bar",
			Description:    "High protein bar with chocolate and nuts",
			Price:          35,
			Image:          "https://images.unsplash.com/photo-1622484212385-1e36fb5f4a35?auto=format&fit=crop&w=500&h=500",
			Categories:     []models.Category{categories[1]},
			IsVegan:        false,
			Ingredients:    []string{"Protein Blend", "Chocolate", "Nuts", "Sweetener"},
			Allergens:      []string{"Nuts", "Milk"},
			BestBeforeDate: days(60),
			Ratings: map[models.ProductRating]int{
				models.RatingHeart:      32,
				models.RatingThumbsUp:   56,
				models.RatingAlright:    14,
				models.RatingThumbsDown: 3,
			},
			LocationInventory: map[string]int{"location1": 18, "location2": 0, "location3": 12},
		},
		{
			ID:             "prod5",
			Name:           "Greek Yogurt",
			Description:    "Creamy Greek yogurt with berries and honey",
			Price:          45,
			Image:          "https://images.unsplash.com/photo-1579954115545-a95591f28bfc?auto=format&fit=crop&w=500&h=500",
			Categories:     []models.Category{categories[3], categories[1]},
			IsVegan:        false,
			Ingredients:    []string{"Greek Yogurt", "Berries", "Honey", "Granola"},
			Allergens:      []string{"Milk", "Nuts"},
			BestBeforeDate: days(5),
			Ratings: map[models.ProductRating]int{
				models.RatingHeart:      45,
				models.RatingThumbsUp:   38,
				models.RatingAlright:    7,
				models.RatingThumbsDown: 2,
			},
			LocationInventory: map[string]int{"location1": 8, "location2": 15, "location3": 10},
		},
		{
			ID:             "prod6",
			Name:           "Vegan Chocolate Cake",
			Description:    "Delicious vegan chocolate cake, perfect with coffee",
			Price:          55,
			Image:          "https://images.unsplash.com/photo-1606313564200-e75d5e30476c?auto=format&fit=crop&w=500&h=500",
			Categories:     []models.Category{categories[5], categories[4]},
			IsVegan:        true,
			Ingredients:    []string{"Flour", "Sugar", "Cocoa", "Plant Milk", "Vegetable Oil"},
			Allergens:      []string{"Wheat"},
			BestBeforeDate: days(3),
			Ratings: map[models.ProductRating]int{
				models.RatingHeart:      58,
				models.RatingThumbsUp:   32,
				models.RatingAlright:    5,
				models.RatingThumbsDown: 1,
			},
			LocationInventory: map[string]int{"location1": 3, "location2": 6, "location3": 0},
		},
		{
			ID:              "prod7",
			Name:            "Tuna Sandwich",
			Description:     "Classic tuna sandwich with mayo and lettuce",
			Price:           65,
			DiscountedPrice: price(55),
			Image:           "https://images.unsplash.com/photo-1592415499556-74fcb9f18667?auto=format&fit=crop&w=500&h=500",
			Categories:      []models.Category{categories[0], categories[1]},
			IsVegan:         false,
			Ingredients:     []string{"Tuna", "Mayo", "Lettuce", "Bread"},
			Allergens:       []string{"Fish", "Egg", "Wheat"},
			BestBeforeDate:  days(1),
			Ratings: map[models.ProductRating]int{
				models.RatingHeart:      29,
				models.RatingThumbsUp:   43,
				models.RatingAlright:    15,
				models.RatingThumbsDown: 7,
			},
			LocationInventory: map[string]int{"location1": 2, "location2": 0, "location3": 5},
		},
		{
			ID:             "prod8",
			Name:           "Iced Coffee",
			Description:    "Cold brewed coffee with optional milk",
			Price:          35,
			Image:          "https://images.unsplash.com/photo-1527156231393-7023794f363c?auto=format&fit=crop&w=500&h=500",
			Categories:     []models.Category{categories[2]},
			IsVegan:        true,
			Ingredients:    []string{"Coffee", "Ice"},
			Allergens:      []string{},
			BestBeforeDate: days(2),
			Ratings: map[models.ProductRating]int{
				models.RatingHeart:      65,
				models.RatingThumbsUp:   42,
				models.RatingAlright:    8,
				models.RatingThumbsDown: 2,
			},
			LocationInventory: map[string]int{"location1": 20, "location2": 18, "location3": 15},
		},
	}
}

func FixtureDiscountRules() []models.DiscountRule {
	now := time.Now()
	daysAgo := func(n int) time.Time { return now.Add(-time.Duration(n) * 24 * time.Hour) }
	intPtr := func(v int) *int { return &v }

	return []models.DiscountRule{
		{
			ID:          "disc1",
			Name:        "Near Expiry",
			Description: "Products nearing expiry date get 20% off",
			Type:        models.DiscountPercentage,
			Value:       20,
			Conditions:  models.DiscountConditions{DaysBeforeExpiry: intPtr(2)},
			Active:      true,
			CreatedAt:   now,
		},
		{
			ID:          "disc2",
			Name:        "Vegan Special",
			Description: "10kr off all vegan products",
			Type:        models.DiscountFixed,
			Value:       10,
			Conditions:  models.DiscountConditions{CategoryIDs: []string{"cat5"}},
			Active:      true,
			CreatedAt:   daysAgo(10),
		},
		{
			ID:          "disc3",
			Name:        "Breakfast Combo",
			Description: "15% off breakfast items",
			Type:        models.DiscountPercentage,
			Value:       15,
			Conditions:  models.DiscountConditions{CategoryIDs: []string{"cat4"}},
			Active:      false,
			CreatedAt:   daysAgo(20),
		},
	}
}
