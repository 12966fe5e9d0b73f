package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/alt-project/phonectl/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid phone", domain.ErrInvalidPhoneNumber, http.StatusBadRequest},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("%w: +15550001111", domain.ErrUserNotFound), http.StatusNotFound},
		{"provider unavailable", domain.ErrProviderUnavailable, http.StatusBadGateway},
		{"admin not configured", domain.ErrAdminNotConfigured, http.StatusInternalServerError},
		{"token invalid", domain.ErrTokenInvalid, http.StatusUnauthorized},
		{"token generation", domain.ErrTokenGeneration, http.StatusInternalServerError},
		{"weak secret", domain.ErrTokenSecretWeak, http.StatusInternalServerError},
		{"rate limited", domain.ErrRateLimited, http.StatusTooManyRequests},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := mapDomainError(tt.err)
			assert.Equal(t, tt.want, httpErr.Code)
		})
	}
}
