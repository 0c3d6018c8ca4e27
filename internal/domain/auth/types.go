package auth

// Package auth contains domain-level types for wallet sessions.
// It is pure and free of framework/adapter concerns.

import (
	"regexp"
	"time"
)

// Role represents the marketplace role a connected wallet is acting in.
// Keep string form for easy persistence and cookies.
type Role string

const (
	RoleClient     Role = "client"
	RoleFreelancer Role = "freelancer"
)

// Valid returns true if the role is one of the defined marketplace roles.
func (r Role) Valid() bool {
	return r == RoleClient || r == RoleFreelancer
}

// walletPattern matches a 0x-prefixed hex address. Sui addresses are 32 bytes
// but shorter dev addresses are accepted for local bridges.
var walletPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{2,64}$`)

// ValidWallet reports whether the given string looks like a wallet address.
func ValidWallet(addr string) bool {
	return walletPattern.MatchString(addr)
}

// Session is the server-side record persisted for a connected wallet.
// ID is an opaque session identifier.
type Session struct {
	ID        string    `json:"id"`
	Wallet    string    `json:"wallet"`
	Role      Role      `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsClient returns true if the session is acting as a client.
func (s Session) IsClient() bool { return s.Role == RoleClient }

// IsFreelancer returns true if the session is acting as a freelancer.
func (s Session) IsFreelancer() bool { return s.Role == RoleFreelancer }
