package handler

import (
	"log/slog"
	"net/http"

	"github.com/alt-project/phonectl/internal/usecase"

	"github.com/labstack/echo/v4"
)

const maxBatchSize = 100

// BatchHandler handles batch phone-number lookup requests.
type BatchHandler struct {
	uc *usecase.LookupBatch
}

// NewBatchHandler creates a new batch lookup handler.
func NewBatchHandler(uc *usecase.LookupBatch) *BatchHandler {
	return &BatchHandler{uc: uc}
}

// batchRequest represents the body of POST /lookup/batch.
type batchRequest struct {
	PhoneNumbers []string `json:"phone_numbers"`
}

// Handle processes POST /lookup/batch.
func (h *BatchHandler) Handle(c echo.Context) error {
	ctx := c.Request().Context()

	var req batchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if len(req.PhoneNumbers) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "phone_numbers must not be empty")
	}
	if len(req.PhoneNumbers) > maxBatchSize {
		return echo.NewHTTPError(http.StatusBadRequest, "too many phone numbers in one batch")
	}

	result, err := h.uc.Execute(ctx, req.PhoneNumbers)
	if err != nil {
		slog.ErrorContext(ctx, "batch lookup request failed", "error", err, "remote_addr", c.RealIP())
		return mapDomainError(err)
	}

	return c.JSON(http.StatusOK, result)
}
