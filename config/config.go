package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/blogem/shopline-auth/authenticator"
)

// Config holds the application configuration
type Config struct {
	Port     string `env:"PORT" envDefault:"8080"`
	DBPath   string `env:"DB_PATH" envDefault:"shopline_auth.db"`
	UseHTTPS bool   `env:"USE_HTTPS"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogEnv   string `env:"LOG_ENV" envDefault:"dev"`
	Shopline ShoplineConfig
	OpenID   OpenIDConfig
}

// ShoplineConfig holds the Shopline OAuth application settings
type ShoplineConfig struct {
	ClientID         string   `env:"SHOPLINE_CLIENT_ID"`
	ClientSecret     string   `env:"SHOPLINE_CLIENT_SECRET"`
	CallbackURL      string   `env:"SHOPLINE_CALLBACK_URL"`
	Scopes           []string `env:"SHOPLINE_SCOPES" envSeparator:","`
	AuthorizationURL string   `env:"SHOPLINE_AUTHORIZATION_URL"`
	TokenURL         string   `env:"SHOPLINE_TOKEN_URL"`
	StaffURL         string   `env:"SHOPLINE_STAFF_URL"`
	ScopeSeparator   string   `env:"SHOPLINE_SCOPE_SEPARATOR"`
}

// OpenIDConfig holds the optional OpenID Connect login settings
type OpenIDConfig struct {
	Issuer       string   `env:"OIDC_ISSUER"`
	ClientID     string   `env:"OIDC_CLIENT_ID"`
	ClientSecret string   `env:"OIDC_CLIENT_SECRET"`
	CallbackURL  string   `env:"OIDC_CALLBACK_URL"`
	Scopes       []string `env:"OIDC_SCOPES" envSeparator:","`
}

// Load reads .env files (if present) and then the environment
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load the env vars: %w", err)
	}
	return Parse()
}

// Parse reads the configuration from the environment only
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// Strategy converts the settings into the strategy configuration. Empty
// endpoints are left empty so the strategy applies Shopline's defaults.
func (c ShoplineConfig) Strategy() authenticator.ShoplineConfig {
	return authenticator.ShoplineConfig{
		Config: authenticator.Config{
			AuthorizationURL: c.AuthorizationURL,
			TokenURL:         c.TokenURL,
			ClientID:         c.ClientID,
			ClientSecret:     c.ClientSecret,
			CallbackURL:      c.CallbackURL,
			Scopes:           c.Scopes,
			ScopeSeparator:   c.ScopeSeparator,
		},
		StaffURL: c.StaffURL,
	}
}

// Enabled reports whether OpenID Connect login is configured
func (c OpenIDConfig) Enabled() bool {
	return c.Issuer != ""
}

// Strategy converts the settings into the strategy configuration
func (c OpenIDConfig) Strategy() authenticator.OpenIDConfig {
	return authenticator.OpenIDConfig{
		Issuer:       c.Issuer,
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		CallbackURL:  c.CallbackURL,
		Scopes:       c.Scopes,
	}
}
