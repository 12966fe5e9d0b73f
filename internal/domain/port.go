package domain

import (
	"context"
	"time"
)

// UserLookup retrieves a single user record from the identity provider's
// admin API by E.164 phone number.
type UserLookup interface {
	LookupByPhone(ctx context.Context, phone string) (*UserRecord, error)
}

// RecordCache provides read/write access to shaped records keyed by
// normalized phone number.
type RecordCache interface {
	Get(phone string) (*UserRecord, bool)
	Set(phone string, record UserRecord)
}

// ServiceTokenIssuer mints signed tokens for calling the lookup service.
type ServiceTokenIssuer interface {
	Issue(subject string, ttl time.Duration) (string, error)
}

// ServiceTokenVerifier checks a presented service token and returns its
// subject.
type ServiceTokenVerifier interface {
	Verify(token string) (string, error)
}
