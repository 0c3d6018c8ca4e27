package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	domainauth "github.com/suilance/suilance-ui-api/internal/domain/auth"
	"github.com/suilance/suilance-ui-api/internal/ports"
)

const defaultSessionTTL = 8 * time.Hour

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Sessions   ports.SessionStore
	SessionTTL time.Duration // default 8h when zero
}

// AuthService manages wallet sessions. Connecting a wallet is the only
// authentication this system performs; signing authority stays with the
// external bridge.
type AuthService struct {
	sessions   ports.SessionStore
	sessionTTL time.Duration
}

var errSessionExpired = errors.New("session expired")

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	if opts.Sessions == nil {
		panic("SessionStore is required")
	}
	ttl := opts.SessionTTL
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &AuthService{
		sessions:   opts.Sessions,
		sessionTTL: ttl,
	}
}

// Connect validates the wallet address and role, creates a session, and
// persists it.
func (s *AuthService) Connect(ctx context.Context, wallet string, role domainauth.Role) (*domainauth.Session, error) {
	if !domainauth.ValidWallet(wallet) {
		return nil, fmt.Errorf("invalid wallet address: %q", wallet)
	}
	if !role.Valid() {
		return nil, fmt.Errorf("invalid role: %q", role)
	}

	session := domainauth.Session{
		ID:        generateSessionID(),
		Wallet:    wallet,
		Role:      role,
		ExpiresAt: time.Now().Add(s.sessionTTL),
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	return &session, nil
}

// GetSession retrieves a session by ID.
func (s *AuthService) GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	if sessionID == "" {
		return nil, errors.New("session ID is required")
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	// Check if session is expired
	if time.Now().After(session.ExpiresAt) {
		// Clean up expired session
		if deleteErr := s.sessions.Delete(ctx, sessionID); deleteErr != nil {
			return nil, errors.Join(errSessionExpired, fmt.Errorf("delete session: %w", deleteErr))
		}
		return nil, errSessionExpired
	}

	return &session, nil
}

// Disconnect removes a session.
func (s *AuthService) Disconnect(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil // Nothing to disconnect
	}

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}

// generateSessionID creates a cryptographically secure random session ID.
func generateSessionID() string {
	return uuid.New().String()
}
