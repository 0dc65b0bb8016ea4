package promo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gostorefront_api/config/values"
)

func newTestValidator() *Validator {
	return NewValidator(values.DefaultPromoTable())
}

func TestValidateKnownCodes(t *testing.T) {
	validator := newTestValidator()

	welcome, err := validator.Validate("WELCOME10")
	require.NoError(t, err)
	assert.Equal(t, 0.1, welcome.Rate)

	summer, err := validator.Validate("SUMMER20")
	require.NoError(t, err)
	assert.Equal(t, 0.2, summer.Rate)
}

func TestValidateIsCaseInsensitive(t *testing.T) {
	validator := newTestValidator()

	applied, err := validator.Validate("welcome10")
	require.NoError(t, err)
	assert.Equal(t, 0.1, applied.Rate)
	// The entered spelling is echoed back.
	assert.Equal(t, "welcome10", applied.Code)
}

func TestValidateBlankInputIsDistinctFromUnknown(t *testing.T) {
	validator := newTestValidator()

	_, err := validator.Validate("   ")
	assert.ErrorIs(t, err, ErrEmptyCode)

	_, err = validator.Validate("")
	assert.ErrorIs(t, err, ErrEmptyCode)

	_, err = validator.Validate("bogus123")
	assert.ErrorIs(t, err, ErrInvalidCode)
}

func TestValidateTrimsWhitespace(t *testing.T) {
	validator := newTestValidator()

	applied, err := validator.Validate("  summer20  ")
	require.NoError(t, err)
	assert.Equal(t, 0.2, applied.Rate)
}
