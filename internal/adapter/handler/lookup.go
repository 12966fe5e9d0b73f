package handler

import (
	"log/slog"
	"net/http"

	"github.com/alt-project/phonectl/internal/usecase"

	"github.com/labstack/echo/v4"
)

// LookupHandler handles single phone-number lookup requests.
type LookupHandler struct {
	uc *usecase.LookupUser
}

// NewLookupHandler creates a new lookup handler.
func NewLookupHandler(uc *usecase.LookupUser) *LookupHandler {
	return &LookupHandler{uc: uc}
}

// Handle processes GET /lookup?phone=<E.164>.
func (h *LookupHandler) Handle(c echo.Context) error {
	ctx := c.Request().Context()

	phone := c.QueryParam("phone")
	if phone == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing phone parameter")
	}

	record, err := h.uc.Execute(ctx, phone)
	if err != nil {
		slog.ErrorContext(ctx, "lookup request failed", "error", err, "remote_addr", c.RealIP())
		return mapDomainError(err)
	}

	slog.InfoContext(ctx, "user looked up", "user_id", record.UserID, "remote_addr", c.RealIP())
	return c.JSON(http.StatusOK, record)
}
