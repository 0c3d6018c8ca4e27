package walletauth

// Package walletauth provides a simple, config-driven wallet provider for
// local development. Production deployments would verify a signed challenge
// from a browser wallet extension instead; here the connect form is trusted
// and missing addresses can be minted on the fly.

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	domainauth "github.com/suilance/suilance-ui-api/internal/domain/auth"
)

// Config controls the dev wallet provider behavior.
type Config struct {
	// AllowGenerated permits minting a throwaway address when the connect
	// form leaves the wallet field empty.
	AllowGenerated bool
}

// Provider resolves connect-form input into a wallet address and role.
type Provider struct {
	allowGenerated bool
}

// NewProvider constructs a dev wallet provider from Config.
func NewProvider(cfg Config) *Provider {
	return &Provider{allowGenerated: cfg.AllowGenerated}
}

// Resolve normalizes and validates connect-form input. An empty wallet is
// replaced with a generated address when the provider allows it.
func (p *Provider) Resolve(wallet, role string) (string, domainauth.Role, error) {
	addr := strings.ToLower(strings.TrimSpace(wallet))
	if addr == "" {
		if !p.allowGenerated {
			return "", "", errors.New("wallet address is required")
		}
		generated, err := generateWallet()
		if err != nil {
			return "", "", fmt.Errorf("generate wallet: %w", err)
		}
		addr = generated
	}
	if !domainauth.ValidWallet(addr) {
		return "", "", fmt.Errorf("invalid wallet address: %q", addr)
	}

	r := domainauth.Role(strings.ToLower(strings.TrimSpace(role)))
	if !r.Valid() {
		return "", "", fmt.Errorf("invalid role: %q", role)
	}

	return addr, r, nil
}

// generateWallet mints a random 32-byte hex address.
func generateWallet() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return "0x" + hex.EncodeToString(b), nil
}
