package app

import (
	"io"
	"time"

	"gostorefront_api/config"
	"gostorefront_api/internal/storefront/app/web"
	"gostorefront_api/internal/storefront/app/web/handlers"
	"gostorefront_api/internal/storefront/business/services/admin"
	"gostorefront_api/internal/storefront/business/services/cart"
	"gostorefront_api/internal/storefront/business/services/catalog"
	"gostorefront_api/internal/storefront/business/services/inventory"
	"gostorefront_api/internal/storefront/business/services/pricing"
	"gostorefront_api/internal/storefront/business/services/promo"
	"gostorefront_api/internal/storefront/business/services/reports"
	"gostorefront_api/internal/storefront/storage"
	"gostorefront_api/pkg/business/service"
	"gostorefront_api/pkg/logger"
)

type StorefrontServer struct {
	config *config.AppConfig
	log    logger.Logger
	writer io.Writer
}

func NewStorefrontServer(appConfig *config.AppConfig, writer io.Writer) *StorefrontServer {
	_log := logger.NewLogger(writer, "[StorefrontServer]")
	return &StorefrontServer{config: appConfig, log: _log, writer: writer}
}

// Run seeds the in-memory catalog, wires the services and serves HTTP.
func (s *StorefrontServer) Run() {
	storefrontValues := s.config.Storefront.Values

	products := storage.NewProductRepository(storage.FixtureProducts())
	categories := storage.NewCategoryRepository(storage.FixtureCategories())
	locations := storage.NewLocationRepository(storage.FixtureLocations())
	rules := storage.NewDiscountRuleRepository(storage.FixtureDiscountRules())
	orders := storage.NewOrderRepository()
	s.log.Log("catalog seeded: %d products, %d categories, %d locations",
		len(products.GetProducts()), len(categories.GetCategories()), len(locations.GetLocations()))

	textService := service.NewTextService()
	filterEngine := catalog.NewFilterEngine(textService)
	suggestionEngine := catalog.NewSuggestionEngine(products, textService, catalog.SuggestConfig{
		Latency: time.Duration(storefrontValues.SuggestLatencyMs) * time.Millisecond,
	}, logger.NewLogger(s.writer, "[SuggestionEngine]"))

	stockService := inventory.NewService(storefrontValues.LowStockThreshold, s.log)
	ruleEngine := pricing.NewRuleEngine(rules, s.log)
	validator := promo.NewValidator(s.config.Storefront.Promos)

	notifier := NewLogNotifier(logger.NewLogger(s.writer, "[Cart]"))
	cartService := cart.NewService(stockService, products, validator, ruleEngine, orders, notifier, s.log)

	productAdmin := admin.NewProductService(products, s.log)
	locationAdmin := admin.NewLocationService(locations, s.log)
	discountAdmin := admin.NewDiscountRuleService(rules, s.log)
	reportService := reports.NewService(time.Now().UnixNano(), s.log)

	web.SetupRoutes(s.config.Address, web.Handlers{
		Product:  handlers.NewProductHandler(products, categories, filterEngine, stockService, productAdmin),
		Cart:     handlers.NewCartHandler(cartService, products),
		Suggest:  handlers.NewSuggestHandler(suggestionEngine),
		Location: handlers.NewLocationHandler(locations, locationAdmin),
		Discount: handlers.NewDiscountHandler(rules, discountAdmin),
		Report:   handlers.NewReportHandler(reportService),
	})
}
