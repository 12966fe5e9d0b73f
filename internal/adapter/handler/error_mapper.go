package handler

import (
	"errors"
	"net/http"

	"github.com/alt-project/phonectl/internal/domain"

	"github.com/labstack/echo/v4"
)

// mapDomainError converts a domain error into an appropriate echo.HTTPError.
func mapDomainError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, domain.ErrInvalidPhoneNumber):
		return echo.NewHTTPError(http.StatusBadRequest, "invalid phone number")

	case errors.Is(err, domain.ErrUserNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "user not found")

	case errors.Is(err, domain.ErrProviderUnavailable):
		return echo.NewHTTPError(http.StatusBadGateway, "identity provider unavailable")

	case errors.Is(err, domain.ErrAdminNotConfigured):
		return echo.NewHTTPError(http.StatusInternalServerError, "internal configuration error")

	case errors.Is(err, domain.ErrTokenInvalid):
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid service token")

	case errors.Is(err, domain.ErrTokenGeneration),
		errors.Is(err, domain.ErrTokenSecretWeak):
		return echo.NewHTTPError(http.StatusInternalServerError, "token generation error")

	case errors.Is(err, domain.ErrRateLimited):
		return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")

	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}
