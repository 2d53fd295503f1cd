// Package config loads the module's composed configuration from a YAML file
// and environment variables, using viper with a godotenv preload.
//
// Environment variables override file values and use the IDTOKEN_ prefix with
// underscores for nesting: IDTOKEN_OIDC_ISSUER overrides "oidc.issuer".
//
//	cfg, err := config.Load(config.LoaderConfig{ConfigFile: "config.yml"})
//
// The strategy's callbacks and verifier are code, not configuration; they
// are wired when constructing the strategy from the loaded settings.
package config
