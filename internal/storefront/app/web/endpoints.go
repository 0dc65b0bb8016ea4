package web

import (
	"log"
	"net/http"

	handlers2 "gostorefront_api/internal/storefront/app/web/handlers"
	"gostorefront_api/metrics"
	"gostorefront_api/pkg/middleware"
)

type Handlers struct {
	Product  *handlers2.ProductHandler
	Cart     *handlers2.CartHandler
	Suggest  *handlers2.SuggestHandler
	Location *handlers2.LocationHandler
	Discount *handlers2.DiscountHandler
	Report   *handlers2.ReportHandler
}

// NewMux wires every endpoint. Returned separately from ListenAndServe so
// tests can drive it with httptest.
func NewMux(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	if h.Product == nil || h.Cart == nil || h.Suggest == nil {
		log.Fatalf("storefront handlers not provided")
	}

	mux.HandleFunc("/api/products", h.Product.GetProductsHandler)
	mux.HandleFunc("/api/categories", h.Product.GetCategoriesHandler)
	mux.HandleFunc("/api/stock", h.Product.GetStockHandler)
	mux.HandleFunc("/api/products/rate", h.Product.RateProductHandler)
	mux.HandleFunc("/api/suggestions", h.Suggest.GetSuggestionsHandler)

	mux.HandleFunc("/api/cart", h.Cart.GetCartHandler)
	mux.HandleFunc("/api/cart/items", h.Cart.AddItemHandler)
	mux.HandleFunc("/api/cart/quantity", h.Cart.UpdateQuantityHandler)
	mux.HandleFunc("/api/cart/remove", h.Cart.RemoveItemHandler)
	mux.HandleFunc("/api/cart/promo", h.Cart.ApplyPromoHandler)
	mux.HandleFunc("/api/cart/checkout", h.Cart.CheckoutHandler)

	if h.Location != nil {
		mux.HandleFunc("/api/admin/locations", h.Location.ManageLocationsHandler)
	}
	if h.Discount != nil {
		mux.HandleFunc("/api/admin/discounts", h.Discount.ManageRulesHandler)
		mux.HandleFunc("/api/admin/discounts/toggle", h.Discount.ToggleRuleHandler)
	}
	mux.HandleFunc("/api/admin/products", h.Product.ManageProductHandler)
	mux.HandleFunc("/api/admin/products/active", h.Product.SetActiveHandler)
	mux.HandleFunc("/api/admin/inventory", h.Product.SetInventoryHandler)
	if h.Report != nil {
		mux.HandleFunc("/api/admin/reports", h.Report.GetReportHandler)
		mux.HandleFunc("/api/admin/reports/export", h.Report.ExportReportHandler)
	}

	mux.Handle("/metrics", metrics.Handler())
	return mux
}

// SetupRoutes starts the storefront HTTP surface and blocks.
func SetupRoutes(addr string, h Handlers) {
	mux := NewMux(h)
	log.Printf("storefront service listening on %s", addr)
	log.Fatal(http.ListenAndServe(addr, middleware.PrometheusMiddleware(mux)))
}
