package config

import (
	"os"
	"strings"
)

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - http.go: HTTP server configuration
//   - upstream.go: Job store and signer bridge configuration
//   - session.go: Redis and wallet session configuration
type AppConfig struct {
	// IsDev controls development mode behavior (hot reloading, generated
	// dev wallets, disk-served assets). Set DEV=true or APP_ENV=development.
	IsDev bool `env:"DEV" envDefault:"false"`

	// HTTP server configuration
	HTTP HTTPConfig

	// Upstream dependencies
	Store StoreConfig `envPrefix:"STORE_"`
	Chain ChainConfig `envPrefix:"CHAIN_"`

	// Session storage configuration
	Redis   RedisConfig `envPrefix:"REDIS_"`
	Session SessionConfig

	// UI behavior configuration
	UI UIConfig
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.HTTP.Sanitize()
	c.Store.Sanitize()
	c.Chain.Sanitize()
	c.Session.Sanitize()
	c.UI.Sanitize()

	c.detectDevMode()
}

// detectDevMode checks both DEV and APP_ENV environment variables.
// This is called by Sanitize() to ensure IsDev is set correctly.
func (c *AppConfig) detectDevMode() {
	if !c.IsDev {
		appEnv := strings.ToLower(os.Getenv("APP_ENV"))
		c.IsDev = appEnv == "development" || appEnv == "dev"
	}
}
