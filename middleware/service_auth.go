package middleware

import (
	"net/http"
	"strings"

	"github.com/alt-project/phonectl/internal/domain"

	"github.com/labstack/echo/v4"
)

// subjectContextKey is the echo context key for the verified caller subject.
const subjectContextKey = "service_token_subject"

// ServiceAuth creates middleware that validates a bearer service token
// on protected endpoints. The verified subject is stored on the context
// for request logging.
func ServiceAuth(verifier domain.ServiceTokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "malformed authorization header")
			}

			subject, err := verifier.Verify(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusForbidden, "invalid service token")
			}

			c.Set(subjectContextKey, subject)
			return next(c)
		}
	}
}

// CallerSubject returns the verified service token subject for the
// request, if any.
func CallerSubject(c echo.Context) string {
	subject, _ := c.Get(subjectContextKey).(string)
	return subject
}
