// Package lookup provides a typed client for looking up user accounts
// by phone number through the Kratos Admin API.
package lookup

import (
	"context"
	"log/slog"
	"time"

	"github.com/alt-project/phonectl/internal/adapter/gateway"
	"github.com/alt-project/phonectl/internal/domain"
	"github.com/alt-project/phonectl/internal/infrastructure/cache"
	"github.com/alt-project/phonectl/internal/usecase"
)

// Re-exported domain types so callers don't import internal packages.
type (
	UserRecord   = domain.UserRecord
	ProviderLink = domain.ProviderLink
	BatchResult  = domain.BatchResult
)

// Sentinel errors callers can match with errors.Is.
var (
	ErrUserNotFound        = domain.ErrUserNotFound
	ErrInvalidPhoneNumber  = domain.ErrInvalidPhoneNumber
	ErrProviderUnavailable = domain.ErrProviderUnavailable
)

// Config configures a lookup Client.
type Config struct {
	// AdminURL is the Kratos Admin API base URL. Required.
	AdminURL string
	// AdminToken is an optional bearer token for hosted admin APIs.
	AdminToken string
	// Timeout bounds each upstream HTTP call. Defaults to 5s.
	Timeout time.Duration
	// CacheTTL controls how long shaped records are cached. Defaults to 5m.
	CacheTTL time.Duration
	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Client looks up user accounts by E.164 phone number.
type Client struct {
	single *usecase.LookupUser
	batch  *usecase.LookupBatch
}

// New creates a lookup client for the given admin API.
func New(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 5 * time.Minute
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	gw := gateway.NewKratosGateway(cfg.AdminURL, cfg.AdminToken, cfg.Timeout)
	recordCache := cache.NewRecordCache(cfg.CacheTTL)
	single := usecase.NewLookupUser(gw, recordCache, cfg.Logger)

	return &Client{
		single: single,
		batch:  usecase.NewLookupBatch(single, cfg.Logger),
	}
}

// Phone looks up a single phone number and returns the shaped record.
// The input is normalized and validated before any network call;
// ErrUserNotFound is returned when no account matches.
func (c *Client) Phone(ctx context.Context, raw string) (*UserRecord, error) {
	return c.single.Execute(ctx, raw)
}

// Batch looks up numbers sequentially, accumulating numbers with no
// matching account in BatchResult.NotFound. Any failure other than a
// missing account aborts and propagates.
func (c *Client) Batch(ctx context.Context, raws []string) (*BatchResult, error) {
	return c.batch.Execute(ctx, raws)
}
