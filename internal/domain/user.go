package domain

import "time"

// ProviderLink is a linked third-party provider identity (e.g. an OIDC
// credential attached to the account).
type ProviderLink struct {
	Provider string `json:"provider"`
	Subject  string `json:"subject"`
}

// UserRecord is the shaped account record returned by a lookup. It is a
// plain, JSON-serializable projection of the identity provider's record.
type UserRecord struct {
	UserID        string         `json:"user_id"`
	SchemaID      string         `json:"schema_id,omitempty"`
	PhoneNumber   string         `json:"phone_number"`
	PhoneVerified bool           `json:"phone_verified"`
	Email         string         `json:"email,omitempty"`
	EmailVerified bool           `json:"email_verified"`
	Name          string         `json:"name,omitempty"`
	Traits        map[string]any `json:"traits,omitempty"`
	ProviderLinks []ProviderLink `json:"provider_links,omitempty"`
	CreatedAt     time.Time      `json:"created_at,omitzero"`
	UpdatedAt     time.Time      `json:"updated_at,omitzero"`
}

// BatchResult accumulates the outcome of a batch lookup. Numbers that
// validated but matched no identity land in NotFound; any other upstream
// failure aborts the batch instead of being accumulated.
type BatchResult struct {
	Found    []UserRecord `json:"found"`
	NotFound []string     `json:"not_found"`
}
