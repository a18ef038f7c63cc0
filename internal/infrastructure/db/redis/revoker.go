package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/issuetrack/reporting-system/internal/session"
)

// Revoker implements session.Revoker as a Redis denylist of token hashes.
// Entries expire together with the token itself, so the list never outgrows
// the set of tokens still worth rejecting.
// Key format: session:revoked:<sha256(token)>
type Revoker struct {
	client *redis.Client
}

// NewRevoker creates a Revoker wrapping the given Redis client.
func NewRevoker(client *redis.Client) *Revoker {
	return &Revoker{client: client}
}

// Revoke adds the token to the denylist for the full session lifetime.
func (r *Revoker) Revoke(ctx context.Context, token string) error {
	return r.client.Set(ctx, r.key(token), "1", session.TTL).Err()
}

// IsRevoked reports whether the token has been revoked.
func (r *Revoker) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := r.client.Exists(ctx, r.key(token)).Result()
	if err != nil {
		return false, fmt.Errorf("revocation check: %w", err)
	}
	return n > 0, nil
}

func (r *Revoker) key(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "session:revoked:" + hex.EncodeToString(sum[:])
}
