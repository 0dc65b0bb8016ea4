package inventory

import (
	"gostorefront_api/internal/storefront/business/models"
	"gostorefront_api/pkg/logger"
)

type StockLevel string

const (
	InStock    StockLevel = "in_stock"
	LowStock   StockLevel = "low_stock"
	OutOfStock StockLevel = "out_of_stock"
)

const DefaultLowStockThreshold = 10

// Service answers per-location stock questions. Lookup only, no mutation.
type Service struct {
	lowStockThreshold int
	log               logger.Logger
}

func NewService(lowStockThreshold int, log logger.Logger) *Service {
	if lowStockThreshold <= 0 {
		lowStockThreshold = DefaultLowStockThreshold
	}
	return &Service{lowStockThreshold: lowStockThreshold, log: log}
}

// AvailableStock returns the stock count for a location, 0 when unmapped.
func (s *Service) AvailableStock(p *models.Product, locationID string) int {
	if p == nil || p.LocationInventory == nil {
		return 0
	}
	return p.LocationInventory[locationID]
}

// Level classifies a stock count into the three display tiers.
func (s *Service) Level(stock int) StockLevel {
	switch {
	case stock > s.lowStockThreshold:
		return InStock
	case stock > 0:
		return LowStock
	default:
		return OutOfStock
	}
}

func (s *Service) LevelAt(p *models.Product, locationID string) StockLevel {
	return s.Level(s.AvailableStock(p, locationID))
}

// Purchasable reports whether buy actions are allowed for the pair.
func (s *Service) Purchasable(p *models.Product, locationID string) bool {
	return s.AvailableStock(p, locationID) > 0
}
