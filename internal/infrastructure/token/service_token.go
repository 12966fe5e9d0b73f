package token

import (
	"fmt"
	"time"

	"github.com/alt-project/phonectl/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

const minSecretLength = 32

// ServiceTokenConfig holds service token generation configuration.
type ServiceTokenConfig struct {
	Secret   string
	Issuer   string
	Audience string
}

// ServiceToken issues and verifies HS256 tokens used to authenticate
// callers of the lookup service.
// Implements domain.ServiceTokenIssuer and domain.ServiceTokenVerifier.
type ServiceToken struct {
	cfg ServiceTokenConfig
}

// NewServiceToken creates a new service token issuer/verifier.
func NewServiceToken(cfg ServiceTokenConfig) *ServiceToken {
	return &ServiceToken{cfg: cfg}
}

// Issue generates a signed token for the given subject.
func (s *ServiceToken) Issue(subject string, ttl time.Duration) (string, error) {
	if len(s.cfg.Secret) < minSecretLength {
		return "", domain.ErrTokenSecretWeak
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    s.cfg.Issuer,
		Audience:  jwt.ClaimStrings{s.cfg.Audience},
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrTokenGeneration, err)
	}
	return signed, nil
}

// Verify checks signature, expiry, issuer and audience, and returns the
// token subject.
func (s *ServiceToken) Verify(tokenString string) (string, error) {
	if len(s.cfg.Secret) < minSecretLength {
		return "", domain.ErrTokenSecretWeak
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			return []byte(s.cfg.Secret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.cfg.Issuer),
		jwt.WithAudience(s.cfg.Audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrTokenInvalid, err)
	}
	return claims.Subject, nil
}
