package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alt-project/phonectl/internal/domain"
	"github.com/alt-project/phonectl/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newBatchHandler(lookup domain.UserLookup) *BatchHandler {
	single := usecase.NewLookupUser(lookup, stubCache{}, slog.Default())
	return NewBatchHandler(usecase.NewLookupBatch(single, slog.Default()))
}

func newBatchContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/lookup/batch", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestBatchHandler_Success(t *testing.T) {
	h := newBatchHandler(&stubLookup{record: &domain.UserRecord{UserID: "user-1"}})

	c, rec := newBatchContext(`{"phone_numbers": ["+14155552671"]}`)
	err := h.Handle(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var result domain.BatchResult
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Len(t, result.Found, 1)
	assert.Empty(t, result.NotFound)
}

func TestBatchHandler_AccumulatesNotFound(t *testing.T) {
	h := newBatchHandler(&stubLookup{err: domain.ErrUserNotFound})

	c, rec := newBatchContext(`{"phone_numbers": ["+14155552671", "+14155552672"]}`)
	err := h.Handle(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var result domain.BatchResult
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Empty(t, result.Found)
	assert.Equal(t, []string{"+14155552671", "+14155552672"}, result.NotFound)
}

func TestBatchHandler_EmptyBody(t *testing.T) {
	h := newBatchHandler(&stubLookup{})

	c, _ := newBatchContext(`{"phone_numbers": []}`)
	err := h.Handle(c)

	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestBatchHandler_MalformedBody(t *testing.T) {
	h := newBatchHandler(&stubLookup{})

	c, _ := newBatchContext(`{"phone_numbers": "nope"`)
	err := h.Handle(c)

	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestBatchHandler_TooLarge(t *testing.T) {
	numbers := make([]string, maxBatchSize+1)
	for i := range numbers {
		numbers[i] = "+14155552671"
	}
	body, _ := json.Marshal(map[string][]string{"phone_numbers": numbers})

	h := newBatchHandler(&stubLookup{})
	c, _ := newBatchContext(string(body))
	err := h.Handle(c)

	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}
