package config

import "time"

// StoreConfig configures the external job store client.
type StoreConfig struct {
	// BaseURL is the root of the job store REST API.
	BaseURL string `env:"BASE_URL,required"`

	// Timeout bounds each store request.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`
}

// Sanitize applies guardrails to store configuration values.
func (s *StoreConfig) Sanitize() {
	if s.Timeout <= 0 {
		s.Timeout = 10 * time.Second
	}
}

// ChainConfig configures the signer bridge client and the published
// marketplace package.
type ChainConfig struct {
	// BridgeURL is the root of the signer bridge API.
	BridgeURL string `env:"BRIDGE_URL,required"`

	// PackageID is the object ID of the published marketplace Move package.
	PackageID string `env:"PACKAGE_ID,required"`

	// Timeout bounds each bridge call including the settlement wait.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"60s"`
}

// Sanitize applies guardrails to chain configuration values.
func (c *ChainConfig) Sanitize() {
	if c.Timeout <= 0 {
		c.Timeout = 60 * time.Second
	}
}
