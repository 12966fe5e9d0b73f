package phone

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alt-project/phonectl/internal/domain"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"already normalized", "+14155552671", "+14155552671"},
		{"spaces and hyphens", "+1 415-555-2671", "+14155552671"},
		{"parentheses and dots", "+1 (415) 555.2671", "+14155552671"},
		{"surrounding whitespace", "  +4915123456789 ", "+4915123456789"},
		{"double zero prefix", "0049151234567", "+49151234567"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestValidate_Valid(t *testing.T) {
	normalized, err := Validate("+1 415 555 2671")

	assert.NoError(t, err)
	assert.Equal(t, "+14155552671", normalized)
}

func TestValidate_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"bare plus", "+"},
		{"missing plus", "14155552671"},
		{"letters", "+1415call now"},
		{"leading zero country code", "+0123456789"},
		{"too long", "+12345678901234567890"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			normalized, err := Validate(tt.input)

			assert.Empty(t, normalized)
			assert.True(t, errors.Is(err, domain.ErrInvalidPhoneNumber))
		})
	}
}
