package ports

// Package ports defines interfaces (hexagonal ports) for session behavior.
// Implementations live in internal/adapters; orchestration in internal/service.

import (
	"context"

	domainauth "github.com/suilance/suilance-ui-api/internal/domain/auth"
)

// SessionStore persists and retrieves wallet sessions.
type SessionStore interface {
	Save(ctx context.Context, sess domainauth.Session) error
	Get(ctx context.Context, id string) (domainauth.Session, error)
	Delete(ctx context.Context, id string) error
}
