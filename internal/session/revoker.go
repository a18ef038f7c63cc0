package session

import "context"

// Revoker is an optional server-side denylist for issued tokens. When
// configured, logout revokes the presented token and the session middleware
// rejects revoked tokens even though their signature still verifies.
type Revoker interface {
	Revoke(ctx context.Context, token string) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}
