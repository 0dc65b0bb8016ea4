package cart

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"gostorefront_api/internal/storefront/business/models"
	"gostorefront_api/internal/storefront/business/services/inventory"
	"gostorefront_api/internal/storefront/business/services/pricing"
	"gostorefront_api/internal/storefront/business/services/promo"
	"gostorefront_api/internal/storefront/storage"
	"gostorefront_api/metrics"
	"gostorefront_api/pkg/logger"
)

var (
	ErrOutOfStock   = errors.New("product is out of stock at the selected location")
	ErrItemNotFound = errors.New("item is not in the cart")
	ErrEmptyCart    = errors.New("cart is empty")
)

// Notifier surfaces cart feedback to the UI layer (toasts in the original).
type Notifier interface {
	Notify(title, message string)
}

// ProductSource resolves live catalog state, so stock rechecks see inventory
// changes made after an item entered the cart.
type ProductSource interface {
	GetProductByID(id string) (*models.Product, error)
}

// Service owns the session cart: a list of product+quantity entries, unique
// per product, plus at most one applied promo. Stock checks guard every
// mutation so a stale UI cannot oversell a location.
type Service struct {
	mu    sync.Mutex
	items []models.CartItem
	promo *models.PromoCode

	stock     *inventory.Service
	products  ProductSource
	validator *promo.Validator
	rules     *pricing.RuleEngine
	orders    *storage.OrderRepository
	notifier  Notifier
	session   metrics.SessionMetrics
	log       logger.Logger
}

func NewService(stock *inventory.Service, products ProductSource, validator *promo.Validator, rules *pricing.RuleEngine, orders *storage.OrderRepository, notifier Notifier, log logger.Logger) *Service {
	return &Service{
		stock:     stock,
		products:  products,
		validator: validator,
		rules:     rules,
		orders:    orders,
		notifier:  notifier,
		log:       log,
	}
}

// AddItem inserts a product or increments its quantity. The addition is
// rejected outright when the location has no stock, and the resulting
// quantity is capped at the available count.
func (s *Service) AddItem(session models.Session, product models.Product, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}

	available := s.stock.AvailableStock(&product, session.LocationID)
	if available == 0 {
		s.session.RejectedAdds.Add(1)
		metrics.RecordCartMutation("add", false)
		return ErrOutOfStock
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.items {
		if item.Product.ID == product.ID {
			newQuantity := item.Quantity + quantity
			if newQuantity > available {
				newQuantity = available
			}
			s.items[i].Quantity = newQuantity
			s.afterMutation("add", "Added to cart", product.Name+" quantity updated")
			return nil
		}
	}

	if quantity > available {
		quantity = available
	}
	s.items = append(s.items, models.CartItem{Product: product, Quantity: quantity})
	s.session.ItemsAdded.Add(1)
	s.afterMutation("add", "Added to cart", product.Name+" has been added to your cart")
	return nil
}

// UpdateQuantity replaces an entry's quantity. Anything below 1 is a silent
// no-op, not a removal. The stock ceiling is re-checked on every update.
func (s *Service) UpdateQuantity(session models.Session, productID string, quantity int) error {
	if quantity < 1 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.items {
		if item.Product.ID == productID {
			available := s.availableFor(item.Product, session.LocationID)
			if available == 0 {
				metrics.RecordCartMutation("update", false)
				return ErrOutOfStock
			}
			if quantity > available {
				quantity = available
			}
			s.items[i].Quantity = quantity
			metrics.RecordCartMutation("update", true)
			return nil
		}
	}
	metrics.RecordCartMutation("update", false)
	return ErrItemNotFound
}

// RemoveItem deletes the entry entirely, regardless of quantity.
func (s *Service) RemoveItem(productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.items {
		if item.Product.ID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.session.ItemsRemoved.Add(1)
			s.afterMutation("remove", "Item removed", "Item has been removed from your cart")
			return nil
		}
	}
	metrics.RecordCartMutation("remove", false)
	return ErrItemNotFound
}

// Items returns a snapshot of the cart entries.
func (s *Service) Items() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]models.CartItem, len(s.items))
	copy(snapshot, s.items)
	return snapshot
}

// ApplyPromo validates and applies a code. A valid code replaces any
// previously applied promo; a rejected one leaves it untouched.
func (s *Service) ApplyPromo(code string) (*models.PromoCode, error) {
	applied, err := s.validator.Validate(code)
	if err != nil {
		metrics.RecordPromoApplication("rejected")
		return nil, err
	}

	s.mu.Lock()
	s.promo = applied
	s.mu.Unlock()

	metrics.RecordPromoApplication("applied")
	if s.log != nil {
		s.log.Log("promo %q applied at rate %.2f", applied.Code, applied.Rate)
	}
	return applied, nil
}

func (s *Service) Promo() *models.PromoCode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.promo
}

// Quote prices the current cart with discount rules and the applied promo.
func (s *Service) Quote(session models.Session, now time.Time) pricing.Quote {
	s.mu.Lock()
	items := make([]models.CartItem, len(s.items))
	copy(items, s.items)
	appliedPromo := s.promo
	s.mu.Unlock()

	return s.rules.Quote(items, appliedPromo, session, now)
}

// Checkout turns the cart into a pending order and clears the session. There
// is no payment integration behind it.
func (s *Service) Checkout(session models.Session) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.items) == 0 {
		return nil, ErrEmptyCart
	}

	now := time.Now()
	quote := s.rules.Quote(s.items, s.promo, session, now)
	order := models.Order{
		ID:          uuid.NewString(),
		UserID:      session.UserID,
		LocationID:  session.LocationID,
		Items:       s.items,
		TotalAmount: quote.Total,
		Status:      models.OrderPending,
		CreatedAt:   now,
	}
	s.orders.Insert(order)

	s.items = nil
	s.promo = nil
	if s.notifier != nil {
		s.notifier.Notify("Proceeding to checkout", "Your order has been placed")
	}
	if s.log != nil {
		s.log.Log("order %s placed, total %.2f", order.ID, order.TotalAmount)
	}
	return &order, nil
}

// Clear empties the cart and drops the applied promo.
func (s *Service) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.promo = nil
}

// availableFor prefers the catalog's current state over the copy stored in
// the cart entry, which may predate an inventory change.
func (s *Service) availableFor(product models.Product, locationID string) int {
	if fresh, err := s.products.GetProductByID(product.ID); err == nil {
		product = *fresh
	}
	return s.stock.AvailableStock(&product, locationID)
}

func (s *Service) afterMutation(operation, title, message string) {
	metrics.RecordCartMutation(operation, true)
	if s.notifier != nil {
		s.notifier.Notify(title, message)
	}
}
