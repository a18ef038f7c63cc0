// Package session encodes the login identity into a compact signed token
// carried in the "session" cookie, and decodes it back on every request.
//
// The token is an HMAC-SHA256 signed JWT rather than the plain base64 blob a
// naive implementation would use: the cookie lives in the browser trust
// boundary and must not be forgeable. Decoding is deliberately lenient in
// shape — any malformed, tampered, or expired token yields nil, which
// callers treat as "not logged in", never as a fatal error.
package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/issuetrack/reporting-system/internal/core/domain"
)

// TTL is the fixed session lifetime.
const TTL = 7 * 24 * time.Hour

// Codec signs and verifies session tokens.
type Codec struct {
	secret []byte
	ttl    time.Duration
	// now is stubbed in tests.
	now func() time.Time
}

// NewCodec returns a Codec signing with secret. A non-positive ttl falls
// back to the default 7-day session lifetime.
func NewCodec(secret string, ttl time.Duration) *Codec {
	if ttl <= 0 {
		ttl = TTL
	}
	return &Codec{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Encode serializes the identity into a signed token expiring after the
// codec's TTL.
func (c *Codec) Encode(id domain.Identity) (string, error) {
	claims := jwt.MapClaims{
		"sub":   id.ID,
		"name":  id.Name,
		"email": id.Email,
		"role":  id.Role,
		"exp":   c.now().Add(c.ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Decode is the inverse of Encode. It returns nil — not an error — when the
// token is absent, malformed, signed with another key, or expired.
func (c *Codec) Decode(token string) *domain.Identity {
	if token == "" {
		return nil
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil
	}

	id := domain.Identity{
		ID:    stringClaim(claims, "sub"),
		Name:  stringClaim(claims, "name"),
		Email: stringClaim(claims, "email"),
		Role:  stringClaim(claims, "role"),
	}
	if id.ID == "" || id.Role == "" {
		return nil
	}
	return &id
}

func stringClaim(claims jwt.MapClaims, key string) string {
	s, _ := claims[key].(string)
	return s
}
