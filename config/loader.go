package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "IDTOKEN"

// LoaderConfig controls where configuration is read from.
type LoaderConfig struct {
	// ConfigFile is an explicit YAML config path. When empty, standard
	// locations are searched and a missing file is not an error.
	ConfigFile string

	// EnvFile is an explicit .env path. When empty, "./.env" is loaded if
	// it exists.
	EnvFile string
}

// Load reads configuration from the env file, the YAML config file, and the
// process environment (in increasing precedence), then applies defaults and
// validates the result.
func Load(opts LoaderConfig) (*Config, error) {
	loadEnvFile(opts.EnvFile)

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file := resolveConfigFile(opts.ConfigFile); file != "" {
		v.SetConfigFile(file)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", file, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadEnvFile loads a .env file when present. Missing files are fine; env
// files are a development convenience, not a requirement.
func loadEnvFile(explicit string) {
	path := explicit
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); err != nil {
		return
	}
	_ = godotenv.Load(path)
}

// resolveConfigFile returns the explicit path, or the first standard location
// that exists.
func resolveConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, path := range []string{"./config.yml", "./config/config.yml"} {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
