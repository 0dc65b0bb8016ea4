package admin

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"gostorefront_api/internal/storefront/business/models"
	"gostorefront_api/internal/storefront/storage"
	"gostorefront_api/pkg/logger"
)

var (
	ErrInvalidPrice         = errors.New("price must not be negative")
	ErrDiscountExceedsPrice = errors.New("discounted price must not exceed the base price")
	ErrEmptyName            = errors.New("name must not be empty")
	ErrUnknownRating        = errors.New("unknown rating kind")
)

type ProductInput struct {
	Name            string
	Description     string
	Price           float64
	DiscountedPrice *float64
	Image           string
	Categories      []models.Category
	IsVegan         bool
	Ingredients     []string
	Allergens       []string
	BestBeforeDate  time.Time
	DueDate         *time.Time
}

// ProductService is the admin side of catalog management. Products are
// deactivated rather than deleted so historical orders keep resolving.
type ProductService struct {
	repo *storage.ProductRepository
	log  logger.Logger
}

func NewProductService(repo *storage.ProductRepository, log logger.Logger) *ProductService {
	return &ProductService{repo: repo, log: log}
}

func (s *ProductService) CreateProduct(input ProductInput) (*models.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	product := models.Product{
		ID:                uuid.NewString(),
		Name:              input.Name,
		Description:       input.Description,
		Price:             input.Price,
		DiscountedPrice:   input.DiscountedPrice,
		Image:             input.Image,
		Categories:        input.Categories,
		IsVegan:           input.IsVegan,
		Ingredients:       input.Ingredients,
		Allergens:         input.Allergens,
		BestBeforeDate:    input.BestBeforeDate,
		DueDate:           input.DueDate,
		Ratings:           map[models.ProductRating]int{},
		LocationInventory: map[string]int{},
	}
	if err := s.repo.Insert(product); err != nil {
		return nil, err
	}

	if s.log != nil {
		s.log.Log("product %s (%s) created", product.ID, product.Name)
	}
	return &product, nil
}

func (s *ProductService) UpdateProduct(id string, input ProductInput) (*models.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetProductByID(id)
	if err != nil {
		return nil, err
	}

	existing.Name = input.Name
	existing.Description = input.Description
	existing.Price = input.Price
	existing.DiscountedPrice = input.DiscountedPrice
	existing.Image = input.Image
	existing.Categories = input.Categories
	existing.IsVegan = input.IsVegan
	existing.Ingredients = input.Ingredients
	existing.Allergens = input.Allergens
	existing.BestBeforeDate = input.BestBeforeDate
	existing.DueDate = input.DueDate

	if err := s.repo.Update(*existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *ProductService) SetActive(id string, active bool) error {
	return s.repo.SetActive(id, active)
}

// SetInventory replaces the stock count for one location. Negative counts are
// rejected by the repository.
func (s *ProductService) SetInventory(id, locationID string, count int) error {
	return s.repo.SetInventory(id, locationID, count)
}

// RateProduct increments one of the four rating counters.
func (s *ProductService) RateProduct(id string, kind models.ProductRating) error {
	switch kind {
	case models.RatingHeart, models.RatingThumbsUp, models.RatingAlright, models.RatingThumbsDown:
	default:
		return ErrUnknownRating
	}
	return s.repo.AddRating(id, kind)
}

func validateProductInput(input ProductInput) error {
	if input.Name == "" {
		return ErrEmptyName
	}
	if input.Price < 0 {
		return ErrInvalidPrice
	}
	if input.DiscountedPrice != nil {
		if *input.DiscountedPrice < 0 {
			return ErrInvalidPrice
		}
		if *input.DiscountedPrice > input.Price {
			return ErrDiscountExceedsPrice
		}
	}
	return nil
}
