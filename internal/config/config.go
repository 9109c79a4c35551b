package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration loaded from environment variables.
// Provider credentials may be absent; auth-url and code-path login then fail
// with a provider-config error while the rest of the API keeps serving.
type Config struct {
	Port               int    `envconfig:"PORT" default:"8080"`
	LogLevel           string `envconfig:"LOG_LEVEL" default:"info"`
	Env                string `envconfig:"ENV" default:"development"`
	DatabaseURL        string `envconfig:"DATABASE_URL" required:"true"`
	CookieSecret       string `envconfig:"COOKIE_SECRET" required:"true"`
	GoogleClientID     string `envconfig:"GOOGLE_CLIENT_ID" default:""`
	GoogleClientSecret string `envconfig:"GOOGLE_CLIENT_SECRET" default:""`
	GoogleRedirectURL  string `envconfig:"GOOGLE_REDIRECT_URL" default:""`
	Version            string `envconfig:"VERSION" default:"dev"`
}

// Load reads configuration from environment variables into a Config struct.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks enum-valued fields.
func (c *Config) Validate() error {
	switch c.Env {
	case "development", "production":
		return nil
	default:
		return fmt.Errorf("invalid ENV %q: must be development or production", c.Env)
	}
}

// SecureCookies reports whether session cookies should carry the Secure
// flag. Disabled only in local development.
func (c *Config) SecureCookies() bool {
	return c.Env != "development"
}
