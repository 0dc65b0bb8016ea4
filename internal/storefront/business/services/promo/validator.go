package promo

import (
	"errors"
	"strings"

	"gostorefront_api/config/values"
	"gostorefront_api/internal/storefront/business/models"
)

var (
	// ErrEmptyCode rejects blank or whitespace-only input; the message is
	// distinct from the unknown-code case so the UI can prompt differently.
	ErrEmptyCode = errors.New("please enter a promo code")

	ErrInvalidCode = errors.New("this promo code is invalid or expired")
)

// Validator matches entered codes against a fixed known table,
// case-insensitively.
type Validator struct {
	codes map[string]float64
}

func NewValidator(table values.PromoTable) *Validator {
	codes := make(map[string]float64, len(table.Codes))
	for code, discountRate := range table.Codes {
		codes[strings.ToUpper(code)] = discountRate
	}
	return &Validator{codes: codes}
}

// Validate returns the promo for a known code. The entered spelling is kept
// on the result so the UI can echo it back.
func (v *Validator) Validate(code string) (*models.PromoCode, error) {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return nil, ErrEmptyCode
	}

	discountRate, ok := v.codes[strings.ToUpper(trimmed)]
	if !ok {
		return nil, ErrInvalidCode
	}
	return &models.PromoCode{Code: trimmed, Rate: discountRate}, nil
}
