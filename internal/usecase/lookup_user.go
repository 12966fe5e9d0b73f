package usecase

import (
	"context"
	"log/slog"

	"github.com/alt-project/phonectl/internal/domain"
	"github.com/alt-project/phonectl/internal/phone"
)

// LookupUser orchestrates a single phone-number lookup with a
// cache-through strategy.
type LookupUser struct {
	lookup domain.UserLookup
	cache  domain.RecordCache
	logger *slog.Logger
}

// NewLookupUser creates a new LookupUser usecase.
func NewLookupUser(l domain.UserLookup, c domain.RecordCache, log *slog.Logger) *LookupUser {
	return &LookupUser{lookup: l, cache: c, logger: log}
}

// Execute validates raw as an E.164 phone number and returns the shaped
// user record for it. Validation happens before any network call.
func (uc *LookupUser) Execute(ctx context.Context, raw string) (*domain.UserRecord, error) {
	normalized, err := phone.Validate(raw)
	if err != nil {
		return nil, err
	}

	if cached, found := uc.cache.Get(normalized); found {
		return cached, nil
	}

	record, err := uc.lookup.LookupByPhone(ctx, normalized)
	if err != nil {
		uc.logger.ErrorContext(ctx, "lookup failed", "phone", normalized, "error", err)
		return nil, err
	}

	uc.cache.Set(normalized, *record)
	return record, nil
}
