// Package session implements the server-side session store: create on
// login, destroy on logout, expire after a fixed TTL. Redis is the primary
// backend; a mutex-guarded in-memory store covers deployments without Redis.
package session

import (
	"context"

	"github.com/google/uuid"
)

// Session is the identity payload attached to a session id.
type Session struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Store is the session lifecycle contract. Get returns nil for an unknown
// or expired session id; absence is not an error.
type Store interface {
	Create(ctx context.Context, sess Session) (string, error)
	Get(ctx context.Context, id string) (*Session, error)
	Destroy(ctx context.Context, id string) error
}

// newSessionID returns an unguessable session identifier.
func newSessionID() string {
	return uuid.NewString()
}
