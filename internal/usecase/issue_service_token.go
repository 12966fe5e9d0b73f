package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/alt-project/phonectl/internal/domain"
)

// IssueServiceToken mints a signed token for calling the lookup service.
type IssueServiceToken struct {
	issuer domain.ServiceTokenIssuer
	logger *slog.Logger
}

// NewIssueServiceToken creates a new IssueServiceToken usecase.
func NewIssueServiceToken(i domain.ServiceTokenIssuer, log *slog.Logger) *IssueServiceToken {
	return &IssueServiceToken{issuer: i, logger: log}
}

// Execute issues a token for the given subject with the given TTL.
func (uc *IssueServiceToken) Execute(ctx context.Context, subject string, ttl time.Duration) (string, error) {
	token, err := uc.issuer.Issue(subject, ttl)
	if err != nil {
		uc.logger.ErrorContext(ctx, "failed to issue service token", "subject", subject, "error", err)
		return "", err
	}
	return token, nil
}
