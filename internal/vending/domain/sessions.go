package domain

import (
	"context"

	"github.com/google/uuid"
)

// SessionsRepository tracks the server-side sessions tokens are bound to.
// Revoke and RevokeAll succeed when nothing matches.
type SessionsRepository interface {
	CreateSession(ctx context.Context, userID uuid.UUID) (string, error)
	IsActive(ctx context.Context, sessionID string) (bool, error)
	Revoke(ctx context.Context, sessionID string) error
	RevokeAll(ctx context.Context, userID uuid.UUID) error
}
