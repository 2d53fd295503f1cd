package config

import (
	"fmt"

	"github.com/authware/idtoken/logger"
	"github.com/authware/idtoken/oidc"
	"github.com/authware/idtoken/strategy"
)

// Config is the composed, file-loadable configuration of the module.
type Config struct {
	// Logger configures structured logging.
	Logger logger.Config `mapstructure:"logger"`

	// OIDC configures the identity provider verifier.
	OIDC oidc.Config `mapstructure:"oidc"`

	// Strategy carries the loadable strategy settings (name, audiences,
	// pass_request). The verifier and resolver are wired in code, so
	// strategy validation happens at construction, not here.
	Strategy strategy.Config `mapstructure:"strategy"`
}

// ApplyDefaults applies defaults to every section.
func (c *Config) ApplyDefaults() {
	c.Logger.ApplyDefaults()
	c.OIDC.ApplyDefaults()
	c.Strategy.ApplyDefaults()
}

// Validate checks the sections that are complete at load time.
func (c *Config) Validate() error {
	if err := c.Logger.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := c.OIDC.Validate(); err != nil {
		return fmt.Errorf("config: oidc: %w", err)
	}
	return nil
}
