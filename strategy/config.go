package strategy

import (
	"context"
	"fmt"

	"github.com/authware/idtoken/validation"
)

// Resolver maps verified token claims to an application principal. It is
// supplied by the host application and invoked once per authenticated request
// with the full claims map and the "sub" claim.
//
// Return values drive the outcome: a non-nil error produces an error outcome
// (host fault); a nil principal without an error produces a failure with the
// returned info (host declined); a non-nil principal produces success.
type Resolver func(ctx context.Context, claims map[string]any, subject string) (principal any, info Info, err error)

// RequestResolver is the Resolver shape used when Config.PassRequest is set:
// it additionally receives the inbound request, for hosts that resolve
// principals differently per transport or tenant.
type RequestResolver func(ctx context.Context, req *Request, claims map[string]any, subject string) (principal any, info Info, err error)

// DefaultName is the identifier a host framework uses to select this strategy.
const DefaultName = "id-token"

// Config configures a Strategy. Audiences is loadable from YAML/env via
// mapstructure; the callbacks and the verifier are wired in code.
type Config struct {
	// Name identifies the strategy to the host framework (default "id-token").
	Name string `mapstructure:"name"`

	// Audiences are the accepted audience identifiers, the client IDs a
	// presented token may be issued for. At least one is required; a token
	// is accepted when its "aud" claim matches any of them.
	Audiences []string `mapstructure:"audiences" validate:"required,min=1,dive,required"`

	// PassRequest selects the RequestResolver call shape.
	PassRequest bool `mapstructure:"pass_request"`

	// Verifier performs token verification (required).
	Verifier Verifier `mapstructure:"-"`

	// Resolver maps claims to a principal (required unless PassRequest).
	Resolver Resolver `mapstructure:"-"`

	// RequestResolver is used instead of Resolver when PassRequest is set.
	RequestResolver RequestResolver `mapstructure:"-"`
}

// ApplyDefaults sets sensible defaults for zero-valued fields.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = DefaultName
	}
}

// Validate checks that the configuration is usable. Construction fails here
// rather than deferring to first use: a strategy without audiences, verifier,
// or resolver can never authenticate anything.
func (c *Config) Validate() error {
	if err := validation.Validate(c); err != nil {
		return fmt.Errorf("strategy: %w", err)
	}
	if c.Verifier == nil {
		return fmt.Errorf("strategy: verifier is required")
	}
	if c.PassRequest {
		if c.RequestResolver == nil {
			return fmt.Errorf("strategy: request resolver is required when pass_request is set")
		}
		return nil
	}
	if c.Resolver == nil {
		return fmt.Errorf("strategy: resolver is required")
	}
	return nil
}
