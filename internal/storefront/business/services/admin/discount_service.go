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
	ErrUnknownDiscountType = errors.New("discount type must be percentage or fixed")
	ErrPercentageRange     = errors.New("percentage value must be between 0 and 100")
	ErrNegativeDiscount    = errors.New("fixed discount must not be negative")
)

type DiscountRuleInput struct {
	Name        string
	Description string
	Type        models.DiscountType
	Value       float64
	Conditions  models.DiscountConditions
	Active      bool
}

// DiscountRuleService manages catalog-wide discount rules. Unlike products,
// rules support hard deletes.
type DiscountRuleService struct {
	repo *storage.DiscountRuleRepository
	log  logger.Logger
}

func NewDiscountRuleService(repo *storage.DiscountRuleRepository, log logger.Logger) *DiscountRuleService {
	return &DiscountRuleService{repo: repo, log: log}
}

func (s *DiscountRuleService) CreateRule(input DiscountRuleInput) (*models.DiscountRule, error) {
	if err := validateRuleInput(input); err != nil {
		return nil, err
	}

	rule := models.DiscountRule{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		Type:        input.Type,
		Value:       input.Value,
		Conditions:  input.Conditions,
		Active:      input.Active,
		CreatedAt:   time.Now(),
	}
	s.repo.Insert(rule)

	if s.log != nil {
		s.log.Log("discount rule %s (%s) created", rule.ID, rule.Name)
	}
	return &rule, nil
}

func (s *DiscountRuleService) UpdateRule(id string, input DiscountRuleInput) (*models.DiscountRule, error) {
	if err := validateRuleInput(input); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetRuleByID(id)
	if err != nil {
		return nil, err
	}

	existing.Name = input.Name
	existing.Description = input.Description
	existing.Type = input.Type
	existing.Value = input.Value
	existing.Conditions = input.Conditions
	existing.Active = input.Active

	if err := s.repo.Update(*existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *DiscountRuleService) ToggleActive(id string) error {
	rule, err := s.repo.GetRuleByID(id)
	if err != nil {
		return err
	}
	return s.repo.SetActive(id, !rule.Active)
}

func (s *DiscountRuleService) DeleteRule(id string) error {
	return s.repo.Delete(id)
}

func validateRuleInput(input DiscountRuleInput) error {
	if input.Name == "" {
		return ErrEmptyName
	}
	switch input.Type {
	case models.DiscountPercentage:
		if input.Value < 0 || input.Value > 100 {
			return ErrPercentageRange
		}
	case models.DiscountFixed:
		if input.Value < 0 {
			return ErrNegativeDiscount
		}
	default:
		return ErrUnknownDiscountType
	}
	return nil
}
