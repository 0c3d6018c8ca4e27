package config

import "time"

// UIConfig contains dashboard behavior configuration.
type UIConfig struct {
	// PollInterval is how often the dashboards refresh their job lists.
	PollInterval time.Duration `env:"UI_POLL_INTERVAL" envDefault:"3s"`
}

// Sanitize applies guardrails to UI configuration values.
func (u *UIConfig) Sanitize() {
	if u.PollInterval < time.Second {
		u.PollInterval = 3 * time.Second
	}
}
