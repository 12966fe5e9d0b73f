package domain

import "errors"

// Lookup errors.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidPhoneNumber = errors.New("invalid phone number")
)

// External service errors.
var (
	ErrProviderUnavailable = errors.New("identity provider unavailable")
	ErrAdminNotConfigured  = errors.New("admin API not configured")
)

// Token errors.
var (
	ErrTokenGeneration = errors.New("token generation failed")
	ErrTokenInvalid    = errors.New("invalid service token")
	ErrTokenSecretWeak = errors.New("service token secret too weak")
)

// Rate limiting errors.
var (
	ErrRateLimited = errors.New("rate limit exceeded")
)
