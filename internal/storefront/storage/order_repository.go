package storage

import (
	"sync"

	"gostorefront_api/internal/storefront/business/models"
)

// OrderRepository keeps checkout results for the session; there is no real
// payment or persistence behind it.
type OrderRepository struct {
	mu     sync.RWMutex
	orders []models.Order
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

func (r *OrderRepository) Insert(order models.Order) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders = append(r.orders, order)
}

func (r *OrderRepository) GetOrders() []models.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make([]models.Order, len(r.orders))
	copy(snapshot, r.orders)
	return snapshot
}

func (r *OrderRepository) GetOrdersByUser(userID string) []models.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []models.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			result = append(result, o)
		}
	}
	return result
}
