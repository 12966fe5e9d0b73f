package lookup

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

const identityJSON = `{
	"id": "user-abc-123",
	"schema_id": "default",
	"schema_url": "http://kratos:4433/schemas/default",
	"traits": {"email": "alice@example.com", "phone": "+14155552671"},
	"verifiable_addresses": [
		{"value": "+14155552671", "verified": true, "via": "sms", "status": "completed"}
	]
}`

func TestClient_Phone(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, "[%s]", identityJSON)
	}))
	defer server.Close()

	client := New(Config{AdminURL: server.URL})
	record, err := client.Phone(context.Background(), "+1 415 555 2671")

	assert.NoError(t, err)
	assert.Equal(t, "user-abc-123", record.UserID)
	assert.True(t, record.PhoneVerified)
}

func TestClient_Phone_Invalid(t *testing.T) {
	client := New(Config{AdminURL: "http://unused"})

	record, err := client.Phone(context.Background(), "not-a-phone")

	assert.Nil(t, record)
	assert.True(t, errors.Is(err, ErrInvalidPhoneNumber))
}

func TestClient_Batch_NotFoundAccumulates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("credentials_identifier") == "+14155552671" {
			fmt.Fprintf(w, "[%s]", identityJSON)
			return
		}
		fmt.Fprint(w, "[]")
	}))
	defer server.Close()

	client := New(Config{AdminURL: server.URL})
	result, err := client.Batch(context.Background(), []string{"+14155552671", "+14155550000"})

	assert.NoError(t, err)
	assert.Len(t, result.Found, 1)
	assert.Equal(t, []string{"+14155550000"}, result.NotFound)
}
