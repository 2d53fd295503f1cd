package oidc

import (
	"net/http"
	"time"

	"github.com/authware/idtoken/validation"
)

// Config configures OIDC verification. Loadable from YAML/env via
// mapstructure tags.
type Config struct {
	// Issuer is the identity provider's issuer URL
	// (e.g., "https://accounts.google.com"). Used for discovery.
	Issuer string `mapstructure:"issuer" validate:"required,url"`

	// SupportedSigningAlgs restricts allowed token signing algorithms
	// (default: ["RS256", "ES256"]).
	SupportedSigningAlgs []string `mapstructure:"supported_signing_algs"`

	// JWKSCacheDuration controls how long JWKS keys are cached (default: "1h").
	JWKSCacheDuration time.Duration `mapstructure:"jwks_cache_duration"`

	// HTTPTimeout is the timeout for discovery and JWKS requests (default: "10s").
	HTTPTimeout time.Duration `mapstructure:"http_timeout"`

	// SkipIssuerCheck skips issuer validation (for testing only).
	SkipIssuerCheck bool `mapstructure:"skip_issuer_check"`
}

// ApplyDefaults sets sensible defaults for zero-valued fields.
func (c *Config) ApplyDefaults() {
	if len(c.SupportedSigningAlgs) == 0 {
		c.SupportedSigningAlgs = []string{"RS256", "ES256"}
	}
	if c.JWKSCacheDuration == 0 {
		c.JWKSCacheDuration = time.Hour
	}
	if c.HTTPTimeout == 0 {
		c.HTTPTimeout = 10 * time.Second
	}
}

// Validate checks required fields.
func (c *Config) Validate() error {
	return validation.Validate(c)
}

// ToVerifierConfig converts to a VerifierConfig for creating a Verifier.
func (c *Config) ToVerifierConfig() VerifierConfig {
	return VerifierConfig{
		SupportedSigningAlgs: c.SupportedSigningAlgs,
		JWKSCacheDuration:    c.JWKSCacheDuration,
		HTTPClient:           &http.Client{Timeout: c.HTTPTimeout},
		SkipIssuerCheck:      c.SkipIssuerCheck,
	}
}
