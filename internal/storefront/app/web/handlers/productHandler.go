package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"gostorefront_api/internal/storefront/business/models"
	"gostorefront_api/internal/storefront/business/services/admin"
	"gostorefront_api/internal/storefront/business/services/catalog"
	"gostorefront_api/internal/storefront/business/services/inventory"
	"gostorefront_api/internal/storefront/storage"
)

type ProductHandler struct {
	products   *storage.ProductRepository
	categories *storage.CategoryRepository
	filter     *catalog.FilterEngine
	stock      *inventory.Service
	admin      *admin.ProductService
}

func NewProductHandler(products *storage.ProductRepository, categories *storage.CategoryRepository, filter *catalog.FilterEngine, stock *inventory.Service, adminService *admin.ProductService) *ProductHandler {
	return &ProductHandler{
		products:   products,
		categories: categories,
		filter:     filter,
		stock:      stock,
		admin:      adminService,
	}
}

// GetProductsHandler serves the filtered product grid.
func (h *ProductHandler) GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	criteria := catalog.NewCriteria()
	criteria.CategoryID = query.Get("category")
	criteria.Query = query.Get("q")
	criteria.VeganOnly = query.Get("vegan") == "true"
	if query.Get("includeInactive") == "true" {
		criteria.ActiveOnly = false
	}

	startTime := time.Now()
	filtered := h.filter.Filter(h.products.GetProducts(), criteria)
	log.Printf("product filter execution time: %v", time.Since(startTime))

	respondJSON(w, filtered)
}

func (h *ProductHandler) GetCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, h.categories.GetCategories())
}

type stockResponse struct {
	ProductID string               `json:"productId"`
	Stock     int                  `json:"stock"`
	Level     inventory.StockLevel `json:"level"`
}

// GetStockHandler answers the per-location availability query the tiles use.
func (h *ProductHandler) GetStockHandler(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromRequest(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	product, err := h.products.GetProductByID(r.URL.Query().Get("productId"))
	if err != nil {
		respondError(w, http.StatusNotFound, err)
		return
	}

	stock := h.stock.AvailableStock(product, session.LocationID)
	respondJSON(w, stockResponse{
		ProductID: product.ID,
		Stock:     stock,
		Level:     h.stock.Level(stock),
	})
}

type rateRequest struct {
	ProductID string               `json:"productId"`
	Rating    models.ProductRating `json:"rating"`
}

func (h *ProductHandler) RateProductHandler(w http.ResponseWriter, r *http.Request) {
	var request rateRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Failed to decode request body", http.StatusBadRequest)
		return
	}

	if err := h.admin.RateProduct(request.ProductID, request.Rating); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, storage.ErrProductNotFound) {
			status = http.StatusNotFound
		}
		respondError(w, status, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type productRequest struct {
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	Price           float64    `json:"price"`
	DiscountedPrice *float64   `json:"discountedPrice,omitempty"`
	Image           string     `json:"image"`
	CategoryIDs     []string   `json:"categoryIds"`
	IsVegan         bool       `json:"isVegan"`
	Ingredients     []string   `json:"ingredients"`
	Allergens       []string   `json:"allergens"`
	BestBeforeDate  time.Time  `json:"bestBeforeDate"`
	DueDate         *time.Time `json:"dueDate,omitempty"`
}

func (h *ProductHandler) resolveInput(request productRequest) (admin.ProductInput, error) {
	categories := make([]models.Category, 0, len(request.CategoryIDs))
	for _, id := range request.CategoryIDs {
		category, err := h.categories.GetCategoryByID(id)
		if err != nil {
			return admin.ProductInput{}, err
		}
		categories = append(categories, *category)
	}

	return admin.ProductInput{
		Name:            request.Name,
		Description:     request.Description,
		Price:           request.Price,
		DiscountedPrice: request.DiscountedPrice,
		Image:           request.Image,
		Categories:      categories,
		IsVegan:         request.IsVegan,
		Ingredients:     request.Ingredients,
		Allergens:       request.Allergens,
		BestBeforeDate:  request.BestBeforeDate,
		DueDate:         request.DueDate,
	}, nil
}

// ManageProductHandler covers the admin product surface: create, update,
// activate/deactivate and per-location inventory.
func (h *ProductHandler) ManageProductHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.createProduct(w, r)
	case http.MethodPut:
		h.updateProduct(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *ProductHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	var request productRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Failed to decode request body", http.StatusBadRequest)
		return
	}

	input, err := h.resolveInput(request)
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	product, err := h.admin.CreateProduct(input)
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	respondJSON(w, product)
}

func (h *ProductHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	var request productRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Failed to decode request body", http.StatusBadRequest)
		return
	}

	input, err := h.resolveInput(request)
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	product, err := h.admin.UpdateProduct(id, input)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, storage.ErrProductNotFound) {
			status = http.StatusNotFound
		}
		respondError(w, status, err)
		return
	}
	respondJSON(w, product)
}

type activeRequest struct {
	ProductID string `json:"productId"`
	Active    bool   `json:"active"`
}

func (h *ProductHandler) SetActiveHandler(w http.ResponseWriter, r *http.Request) {
	var request activeRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Failed to decode request body", http.StatusBadRequest)
		return
	}

	if err := h.admin.SetActive(request.ProductID, request.Active); err != nil {
		respondError(w, http.StatusNotFound, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type inventoryRequest struct {
	ProductID  string `json:"productId"`
	LocationID string `json:"locationId"`
	Count      int    `json:"count"`
}

func (h *ProductHandler) SetInventoryHandler(w http.ResponseWriter, r *http.Request) {
	var request inventoryRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Failed to decode request body", http.StatusBadRequest)
		return
	}

	if err := h.admin.SetInventory(request.ProductID, request.LocationID, request.Count); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, storage.ErrProductNotFound) {
			status = http.StatusNotFound
		}
		respondError(w, status, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
