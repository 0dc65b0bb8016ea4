package storage

import (
	"errors"
	"fmt"
	"sync"

	"gostorefront_api/internal/storefront/business/models"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrNegativeStock    = errors.New("stock count must not be negative")
	ErrDuplicateProduct = errors.New("product id already exists")
)

// ProductRepository holds the catalog in memory, preserving insertion order.
// Mutations are mutex-guarded so rating increments stay atomic even if the
// store is ever shared.
type ProductRepository struct {
	mu       sync.RWMutex
	products []models.Product
	index    map[string]int
}

func NewProductRepository(products []models.Product) *ProductRepository {
	repo := &ProductRepository{
		products: make([]models.Product, 0, len(products)),
		index:    make(map[string]int, len(products)),
	}
	for _, p := range products {
		repo.products = append(repo.products, cloneProduct(p))
		repo.index[p.ID] = len(repo.products) - 1
	}
	return repo
}

// cloneProduct detaches the product's maps so snapshots never alias the
// repository's live state. Without this, SetInventory and AddRating would
// write the same maps a previously handed-out snapshot is reading.
func cloneProduct(p models.Product) models.Product {
	if p.Ratings != nil {
		ratings := make(map[models.ProductRating]int, len(p.Ratings))
		for kind, count := range p.Ratings {
			ratings[kind] = count
		}
		p.Ratings = ratings
	}
	if p.LocationInventory != nil {
		stock := make(map[string]int, len(p.LocationInventory))
		for locationID, count := range p.LocationInventory {
			stock[locationID] = count
		}
		p.LocationInventory = stock
	}
	return p
}

// GetProducts returns a snapshot of the catalog in insertion order.
func (r *ProductRepository) GetProducts() []models.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make([]models.Product, len(r.products))
	for i, p := range r.products {
		snapshot[i] = cloneProduct(p)
	}
	return snapshot
}

func (r *ProductRepository) GetProductByID(id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	product := cloneProduct(r.products[i])
	return &product, nil
}

func (r *ProductRepository) Insert(product models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[product.ID]; exists {
		return ErrDuplicateProduct
	}
	r.products = append(r.products, cloneProduct(product))
	r.index[product.ID] = len(r.products) - 1
	return nil
}

func (r *ProductRepository) Update(product models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[product.ID]
	if !ok {
		return ErrProductNotFound
	}
	r.products[i] = cloneProduct(product)
	return nil
}

// SetActive flips the active flag; products are deactivated, never deleted.
func (r *ProductRepository) SetActive(id string, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return ErrProductNotFound
	}
	r.products[i].Active = &active
	return nil
}

func (r *ProductRepository) SetInventory(id, locationID string, count int) error {
	if count < 0 {
		return ErrNegativeStock
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return ErrProductNotFound
	}
	if r.products[i].LocationInventory == nil {
		r.products[i].LocationInventory = make(map[string]int)
	}
	r.products[i].LocationInventory[locationID] = count
	return nil
}

// AddRating increments a rating counter. Counters only ever grow.
func (r *ProductRepository) AddRating(id string, kind models.ProductRating) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return fmt.Errorf("rating %s: %w", kind, ErrProductNotFound)
	}
	if r.products[i].Ratings == nil {
		r.products[i].Ratings = make(map[models.ProductRating]int)
	}
	r.products[i].Ratings[kind]++
	return nil
}
