package gateway

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/alt-project/phonectl/internal/domain"

	kratos "github.com/ory/kratos-client-go"
)

// KratosGateway implements domain.UserLookup against the Kratos Admin
// API via the generated SDK client.
type KratosGateway struct {
	client       *kratos.APIClient
	adminBaseURL string
}

// NewKratosGateway creates a new Kratos admin gateway with tuned HTTP
// transport. adminToken is optional and only required for hosted admin
// APIs that sit behind bearer auth.
func NewKratosGateway(adminBaseURL, adminToken string, timeout time.Duration) *KratosGateway {
	configuration := kratos.NewConfiguration()
	configuration.Servers = []kratos.ServerConfiguration{
		{URL: adminBaseURL},
	}
	if adminToken != "" {
		configuration.AddDefaultHeader("Authorization", "Bearer "+adminToken)
	}

	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 20,
		IdleConnTimeout:     90 * time.Second,
	}

	configuration.HTTPClient = &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}

	return &KratosGateway{
		client:       kratos.NewAPIClient(configuration),
		adminBaseURL: adminBaseURL,
	}
}

// LookupByPhone fetches the identity whose credential identifier matches
// the given E.164 phone number and shapes it into a domain.UserRecord.
// An empty result maps to domain.ErrUserNotFound; every other upstream
// failure is wrapped in domain.ErrProviderUnavailable.
func (g *KratosGateway) LookupByPhone(ctx context.Context, phone string) (*domain.UserRecord, error) {
	if g.adminBaseURL == "" {
		return nil, domain.ErrAdminNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	identities, resp, err := g.client.IdentityAPI.ListIdentities(ctx).
		CredentialsIdentifier(phone).
		IncludeCredential([]string{"oidc"}).
		PageSize(1).
		Execute()
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("%w: admin API returned status %d", domain.ErrProviderUnavailable, resp.StatusCode)
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrProviderUnavailable, err)
	}

	if len(identities) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, phone)
	}

	record := shapeRecord(&identities[0], phone)
	return record, nil
}

// shapeRecord maps a Kratos identity to the plain output structure.
// Optional SDK fields shape to zero values.
func shapeRecord(identity *kratos.Identity, phone string) *domain.UserRecord {
	record := &domain.UserRecord{
		UserID:      identity.Id,
		SchemaID:    identity.SchemaId,
		PhoneNumber: phone,
		CreatedAt:   identity.GetCreatedAt(),
		UpdatedAt:   identity.GetUpdatedAt(),
	}

	if traits, ok := identity.Traits.(map[string]interface{}); ok {
		record.Traits = traits
		if email, ok := traits["email"].(string); ok {
			record.Email = email
		}
		if phoneTrait, ok := traits["phone"].(string); ok && phoneTrait != "" {
			record.PhoneNumber = phoneTrait
		}
		record.Name = nameFromTraits(traits)
	}

	for _, addr := range identity.GetVerifiableAddresses() {
		switch addr.Via {
		case "sms", "phone":
			if addr.Value == record.PhoneNumber {
				record.PhoneVerified = addr.Verified
			}
		case "email":
			if record.Email == "" {
				record.Email = addr.Value
			}
			if addr.Value == record.Email {
				record.EmailVerified = addr.Verified
			}
		}
	}

	record.ProviderLinks = providerLinks(identity)
	return record
}

// nameFromTraits extracts a display name from common trait shapes:
// a plain "name" string or a {"first": ..., "last": ...} object.
func nameFromTraits(traits map[string]interface{}) string {
	switch name := traits["name"].(type) {
	case string:
		return name
	case map[string]interface{}:
		first, _ := name["first"].(string)
		last, _ := name["last"].(string)
		switch {
		case first != "" && last != "":
			return first + " " + last
		case first != "":
			return first
		default:
			return last
		}
	}
	return ""
}

// providerLinks extracts linked OIDC provider identities from the
// expanded credentials block.
func providerLinks(identity *kratos.Identity) []domain.ProviderLink {
	credentials := identity.GetCredentials()
	oidc, ok := credentials["oidc"]
	if !ok {
		return nil
	}

	providers, ok := oidc.GetConfig()["providers"].([]interface{})
	if !ok {
		return nil
	}

	links := make([]domain.ProviderLink, 0, len(providers))
	for _, p := range providers {
		entry, ok := p.(map[string]interface{})
		if !ok {
			continue
		}
		provider, _ := entry["provider"].(string)
		subject, _ := entry["subject"].(string)
		if provider == "" && subject == "" {
			continue
		}
		links = append(links, domain.ProviderLink{Provider: provider, Subject: subject})
	}
	if len(links) == 0 {
		return nil
	}
	return links
}
