package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds the application configuration
type Config struct {
	KratosAdminURL       string        // Kratos Admin API URL (port 4434)
	KratosAdminToken     string        // Optional bearer token for hosted admin APIs
	Port                 string        // Service port for `phonectl serve`
	CacheTTL             time.Duration // Record cache TTL
	LookupTimeout        time.Duration // Upstream HTTP client timeout
	ServiceTokenSecret   string        // Secret for signing service tokens
	ServiceTokenIssuer   string        // Service token issuer claim
	ServiceTokenAudience string        // Service token audience claim
	ServiceTokenTTL      time.Duration // Default service token TTL
}

// Load reads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	config := &Config{
		KratosAdminURL:       getEnv("KRATOS_ADMIN_URL", "http://kratos:4434"),
		KratosAdminToken:     getEnv("KRATOS_ADMIN_TOKEN", ""),
		Port:                 getEnv("PORT", "8889"),
		CacheTTL:             5 * time.Minute,
		LookupTimeout:        5 * time.Second,
		ServiceTokenSecret:   getEnv("SERVICE_TOKEN_SECRET", ""),
		ServiceTokenIssuer:   getEnv("SERVICE_TOKEN_ISSUER", "phonectl"),
		ServiceTokenAudience: getEnv("SERVICE_TOKEN_AUDIENCE", "phone-lookup"),
		ServiceTokenTTL:      10 * time.Minute,
	}

	if cacheTTLStr := os.Getenv("CACHE_TTL"); cacheTTLStr != "" {
		duration, err := time.ParseDuration(cacheTTLStr)
		if err != nil {
			return nil, fmt.Errorf("invalid CACHE_TTL format: %w", err)
		}
		config.CacheTTL = duration
	}

	if timeoutStr := os.Getenv("LOOKUP_TIMEOUT"); timeoutStr != "" {
		duration, err := time.ParseDuration(timeoutStr)
		if err != nil {
			return nil, fmt.Errorf("invalid LOOKUP_TIMEOUT format: %w", err)
		}
		config.LookupTimeout = duration
	}

	if ttlStr := os.Getenv("SERVICE_TOKEN_TTL"); ttlStr != "" {
		duration, err := time.ParseDuration(ttlStr)
		if err != nil {
			return nil, fmt.Errorf("invalid SERVICE_TOKEN_TTL format: %w", err)
		}
		config.ServiceTokenTTL = duration
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.KratosAdminURL == "" {
		return fmt.Errorf("KRATOS_ADMIN_URL cannot be empty")
	}

	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}

	if c.CacheTTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive")
	}

	if c.LookupTimeout <= 0 {
		return fmt.Errorf("LOOKUP_TIMEOUT must be positive")
	}

	return nil
}

// getEnv retrieves an environment variable or returns a fallback value
func getEnv(key, fallback string) string {
	// Check for _FILE suffix
	if fileValue := os.Getenv(key + "_FILE"); fileValue != "" {
		content, err := os.ReadFile(fileValue)
		if err == nil {
			return strings.TrimSpace(string(content))
		}
	}

	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
