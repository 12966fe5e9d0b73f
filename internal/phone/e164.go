// Package phone validates and normalizes phone numbers to E.164 form.
package phone

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/alt-project/phonectl/internal/domain"
)

var validate = validator.New()

// Normalize trims whitespace and strips common separators (spaces,
// hyphens, dots, parentheses) from a raw phone number. An international
// "00" dial prefix is rewritten to "+". Normalize never guesses a
// country code for bare national numbers.
func Normalize(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && i == 0:
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '.' || r == '(' || r == ')':
			// separator, drop
		default:
			// keep invalid characters so validation rejects them
			b.WriteRune(r)
		}
	}

	s = b.String()
	if strings.HasPrefix(s, "00") {
		s = "+" + s[2:]
	}
	return s
}

// Validate normalizes raw and checks the result against the E.164
// format: a leading "+" followed by a country code and subscriber
// number. It returns the normalized number, or ErrInvalidPhoneNumber
// wrapped with the offending input.
func Validate(raw string) (string, error) {
	normalized := Normalize(raw)
	if normalized == "" {
		return "", fmt.Errorf("%w: empty input", domain.ErrInvalidPhoneNumber)
	}

	// country codes never start with zero, which the e164 rule tolerates
	if strings.HasPrefix(normalized, "+0") {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidPhoneNumber, raw)
	}

	if err := validate.Var(normalized, "e164"); err != nil {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidPhoneNumber, raw)
	}
	return normalized, nil
}
