package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"gostorefront_api/internal/storefront/business/services/cart"
	"gostorefront_api/internal/storefront/business/services/promo"
	"gostorefront_api/internal/storefront/storage"
)

type CartHandler struct {
	cart     *cart.Service
	products *storage.ProductRepository
}

func NewCartHandler(cartService *cart.Service, products *storage.ProductRepository) *CartHandler {
	return &CartHandler{cart: cartService, products: products}
}

// GetCartHandler returns the cart entries plus the priced quote.
func (h *CartHandler) GetCartHandler(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromRequest(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	respondJSON(w, map[string]interface{}{
		"items": h.cart.Items(),
		"quote": h.cart.Quote(session, time.Now()),
	})
}

type addItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

func (h *CartHandler) AddItemHandler(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromRequest(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	var request addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Failed to decode request body", http.StatusBadRequest)
		return
	}

	product, err := h.products.GetProductByID(request.ProductID)
	if err != nil {
		respondError(w, http.StatusNotFound, err)
		return
	}

	if err := h.cart.AddItem(session, *product, request.Quantity); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, cart.ErrOutOfStock) {
			status = http.StatusConflict
		}
		respondError(w, status, err)
		return
	}
	respondJSON(w, h.cart.Items())
}

type updateQuantityRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

func (h *CartHandler) UpdateQuantityHandler(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromRequest(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	var request updateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Failed to decode request body", http.StatusBadRequest)
		return
	}

	if err := h.cart.UpdateQuantity(session, request.ProductID, request.Quantity); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, cart.ErrItemNotFound) {
			status = http.StatusNotFound
		} else if errors.Is(err, cart.ErrOutOfStock) {
			status = http.StatusConflict
		}
		respondError(w, status, err)
		return
	}
	respondJSON(w, h.cart.Items())
}

type removeItemRequest struct {
	ProductID string `json:"productId"`
}

func (h *CartHandler) RemoveItemHandler(w http.ResponseWriter, r *http.Request) {
	var request removeItemRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Failed to decode request body", http.StatusBadRequest)
		return
	}

	if err := h.cart.RemoveItem(request.ProductID); err != nil {
		respondError(w, http.StatusNotFound, err)
		return
	}
	respondJSON(w, h.cart.Items())
}

type promoRequest struct {
	Code string `json:"code"`
}

// ApplyPromoHandler validates a code. The two rejection cases map to distinct
// messages so the UI can tell "enter a code" from "invalid or expired".
func (h *CartHandler) ApplyPromoHandler(w http.ResponseWriter, r *http.Request) {
	var request promoRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Failed to decode request body", http.StatusBadRequest)
		return
	}

	applied, err := h.cart.ApplyPromo(request.Code)
	if err != nil {
		status := http.StatusUnprocessableEntity
		if errors.Is(err, promo.ErrEmptyCode) {
			status = http.StatusBadRequest
		}
		respondError(w, status, err)
		return
	}
	respondJSON(w, applied)
}

func (h *CartHandler) CheckoutHandler(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromRequest(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	order, err := h.cart.Checkout(session)
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	respondJSON(w, order)
}
