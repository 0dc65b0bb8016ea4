package storage

import (
	"errors"
	"sync"

	"gostorefront_api/internal/storefront/business/models"
)

var ErrCategoryNotFound = errors.New("category not found")

type CategoryRepository struct {
	mu         sync.RWMutex
	categories []models.Category
}

func NewCategoryRepository(categories []models.Category) *CategoryRepository {
	return &CategoryRepository{categories: categories}
}

func (r *CategoryRepository) GetCategories() []models.Category {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make([]models.Category, len(r.categories))
	copy(snapshot, r.categories)
	return snapshot
}

func (r *CategoryRepository) GetCategoryByID(id string) (*models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.categories {
		if c.ID == id {
			category := c
			return &category, nil
		}
	}
	return nil, ErrCategoryNotFound
}
