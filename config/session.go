package config

import "time"

// RedisConfig contains Redis connection configuration for session storage.
type RedisConfig struct {
	// Addr is the Redis server address.
	Addr string `env:"ADDR" envDefault:"localhost:6379"`

	// Password is the Redis password (empty for no auth).
	Password string `env:"PASSWORD" envDefault:""`

	// DB is the Redis database number.
	DB int `env:"DB" envDefault:"0"`
}

// SessionConfig contains wallet session configuration.
type SessionConfig struct {
	// TTL is how long a connected wallet session stays valid.
	TTL time.Duration `env:"SESSION_TTL" envDefault:"8h"`

	// AllowGeneratedWallets permits minting throwaway dev addresses when the
	// connect form leaves the wallet field empty.
	AllowGeneratedWallets bool `env:"WALLET_ALLOW_GENERATED" envDefault:"false"`
}

// Sanitize applies guardrails to session configuration values.
func (s *SessionConfig) Sanitize() {
	if s.TTL <= 0 {
		s.TTL = 8 * time.Hour
	}
}
