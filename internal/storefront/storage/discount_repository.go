package storage

import (
	"errors"
	"sync"

	"gostorefront_api/internal/storefront/business/models"
)

var ErrDiscountRuleNotFound = errors.New("discount rule not found")

type DiscountRuleRepository struct {
	mu    sync.RWMutex
	rules []models.DiscountRule
}

func NewDiscountRuleRepository(rules []models.DiscountRule) *DiscountRuleRepository {
	return &DiscountRuleRepository{rules: rules}
}

func (r *DiscountRuleRepository) GetRules() []models.DiscountRule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make([]models.DiscountRule, len(r.rules))
	copy(snapshot, r.rules)
	return snapshot
}

// GetActiveRules returns only rules currently switched on; the pricing engine
// never sees inactive ones.
func (r *DiscountRuleRepository) GetActiveRules() []models.DiscountRule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var active []models.DiscountRule
	for _, rule := range r.rules {
		if rule.Active {
			active = append(active, rule)
		}
	}
	return active
}

func (r *DiscountRuleRepository) GetRuleByID(id string) (*models.DiscountRule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rule := range r.rules {
		if rule.ID == id {
			found := rule
			return &found, nil
		}
	}
	return nil, ErrDiscountRuleNotFound
}

func (r *DiscountRuleRepository) Insert(rule models.DiscountRule) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, rule)
}

func (r *DiscountRuleRepository) Update(rule models.DiscountRule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.rules {
		if existing.ID == rule.ID {
			r.rules[i] = rule
			return nil
		}
	}
	return ErrDiscountRuleNotFound
}

func (r *DiscountRuleRepository) SetActive(id string, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, rule := range r.rules {
		if rule.ID == id {
			r.rules[i].Active = active
			return nil
		}
	}
	return ErrDiscountRuleNotFound
}

func (r *DiscountRuleRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, rule := range r.rules {
		if rule.ID == id {
			r.rules = append(r.rules[:i], r.rules[i+1:]...)
			return nil
		}
	}
	return ErrDiscountRuleNotFound
}
