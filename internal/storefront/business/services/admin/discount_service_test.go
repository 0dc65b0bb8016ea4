package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gostorefront_api/internal/storefront/business/models"
	"gostorefront_api/internal/storefront/storage"
)

func newDiscountService() (*DiscountRuleService, *storage.DiscountRuleRepository) {
	repo := storage.NewDiscountRuleRepository(storage.FixtureDiscountRules())
	return NewDiscountRuleService(repo, nil), repo
}

func TestCreateRuleValidatesValueRanges(t *testing.T) {
	service, _ := newDiscountService()

	_, err := service.CreateRule(DiscountRuleInput{
		Name: "Too deep", Type: models.DiscountPercentage, Value: 120,
	})
	assert.ErrorIs(t, err, ErrPercentageRange)

	_, err = service.CreateRule(DiscountRuleInput{
		Name: "Negative", Type: models.DiscountFixed, Value: -10,
	})
	assert.ErrorIs(t, err, ErrNegativeDiscount)

	_, err = service.CreateRule(DiscountRuleInput{
		Name: "Odd", Type: "coupon", Value: 10,
	})
	assert.ErrorIs(t, err, ErrUnknownDiscountType)

	_, err = service.CreateRule(DiscountRuleInput{
		Type: models.DiscountFixed, Value: 10,
	})
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestCreateRuleStoresIt(t *testing.T) {
	service, repo := newDiscountService()

	created, err := service.CreateRule(DiscountRuleInput{
		Name:  "Weekend Drinks",
		Type:  models.DiscountPercentage,
		Value: 25,
		Conditions: models.DiscountConditions{
			CategoryIDs: []string{"cat3"},
		},
		Active: true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	stored, err := repo.GetRuleByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Weekend Drinks", stored.Name)
}

func TestToggleActive(t *testing.T) {
	service, repo := newDiscountService()

	// disc3 ships inactive.
	require.NoError(t, service.ToggleActive("disc3"))
	rule, err := repo.GetRuleByID("disc3")
	require.NoError(t, err)
	assert.True(t, rule.Active)

	require.NoError(t, service.ToggleActive("disc3"))
	rule, err = repo.GetRuleByID("disc3")
	require.NoError(t, err)
	assert.False(t, rule.Active)
}

func TestDeleteRuleIsHardDelete(t *testing.T) {
	service, repo := newDiscountService()

	require.NoError(t, service.DeleteRule("disc2"))
	_, err := repo.GetRuleByID("disc2")
	assert.ErrorIs(t, err, storage.ErrDiscountRuleNotFound)

	assert.ErrorIs(t, service.DeleteRule("disc2"), storage.ErrDiscountRuleNotFound)
}

func TestInactiveRulesStayOutOfActiveSet(t *testing.T) {
	_, repo := newDiscountService()

	for _, rule := range repo.GetActiveRules() {
		assert.True(t, rule.Active)
	}
}
