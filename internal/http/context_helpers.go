package httpx

import (
	"context"

	domainauth "github.com/suilance/suilance-ui-api/internal/domain/auth"
)

// sessionKey is an unexported context key type to avoid collisions across packages.
// Centralized in this file so all handlers/middleware use the same key.
type sessionKey struct{}

// SetSessionInContext returns a child context that carries the given session.
// If session is nil, the original ctx is returned unchanged.
func SetSessionInContext(ctx context.Context, session *domainauth.Session) context.Context {
	if session == nil {
		return ctx
	}
	return context.WithValue(ctx, sessionKey{}, session)
}

// GetSessionFromContext retrieves the wallet session from the request context,
// or nil when the request is not connected.
func GetSessionFromContext(ctx context.Context) *domainauth.Session {
	if session, ok := ctx.Value(sessionKey{}).(*domainauth.Session); ok && session != nil {
		return session
	}
	return nil
}

// SessionWallet returns the connected wallet address, or empty when disconnected.
func SessionWallet(ctx context.Context) string {
	if s := GetSessionFromContext(ctx); s != nil {
		return s.Wallet
	}
	return ""
}
