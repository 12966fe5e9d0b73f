package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/alt-project/phonectl/internal/domain"
	"github.com/alt-project/phonectl/internal/phone"
)

// LookupBatch looks up a list of phone numbers sequentially, accumulating
// partial successes.
type LookupBatch struct {
	single *LookupUser
	logger *slog.Logger
}

// NewLookupBatch creates a new LookupBatch usecase.
func NewLookupBatch(single *LookupUser, log *slog.Logger) *LookupBatch {
	return &LookupBatch{single: single, logger: log}
}

// Execute validates all inputs up front, then loops over them in order.
// Numbers that match no identity accumulate in the NotFound list; any
// other lookup error aborts the batch and propagates.
func (uc *LookupBatch) Execute(ctx context.Context, raws []string) (*domain.BatchResult, error) {
	normalized := make([]string, 0, len(raws))
	for _, raw := range raws {
		n, err := phone.Validate(raw)
		if err != nil {
			return nil, err
		}
		normalized = append(normalized, n)
	}

	result := &domain.BatchResult{
		Found:    []domain.UserRecord{},
		NotFound: []string{},
	}

	for _, n := range normalized {
		record, err := uc.single.Execute(ctx, n)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				result.NotFound = append(result.NotFound, n)
				continue
			}
			return nil, err
		}
		result.Found = append(result.Found, *record)
	}

	uc.logger.InfoContext(ctx, "batch lookup completed",
		"requested", len(normalized),
		"found", len(result.Found),
		"not_found", len(result.NotFound))

	return result, nil
}
