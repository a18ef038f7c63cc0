package session

import (
	"testing"
	"time"

	"github.com/issuetrack/reporting-system/internal/core/domain"
)

func TestCodecRoundTrip(t *testing.T) {
	codec := NewCodec("test-secret", 0)

	want := domain.Identity{ID: "user-1", Name: "Jane Doe", Email: "jane@corp.com", Role: domain.RoleEmployee}

	token, err := codec.Encode(want)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("expected a non-empty token")
	}

	got := codec.Decode(token)
	if got == nil {
		t.Fatal("expected identity, got nil")
	}
	if *got != want {
		t.Errorf("expected %+v, got %+v", want, *got)
	}
}

func TestCodecDecodeMalformed(t *testing.T) {
	codec := NewCodec("test-secret", 0)

	for _, token := range []string{"", "garbage", "a.b.c", "eyJhbGciOiJIUzI1NiJ9"} {
		if got := codec.Decode(token); got != nil {
			t.Errorf("token %q: expected nil, got %+v", token, got)
		}
	}
}

func TestCodecDecodeWrongKey(t *testing.T) {
	codec := NewCodec("test-secret", 0)
	other := NewCodec("another-secret", 0)

	token, err := codec.Encode(domain.Identity{ID: "user-1", Role: domain.RoleEmployee})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := other.Decode(token); got != nil {
		t.Errorf("expected nil for token signed with a different key, got %+v", got)
	}
}

func TestCodecDecodeTampered(t *testing.T) {
	codec := NewCodec("test-secret", 0)

	token, err := codec.Encode(domain.Identity{ID: "user-1", Role: domain.RoleEmployee})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if got := codec.Decode(tampered); got != nil {
		t.Errorf("expected nil for tampered token, got %+v", got)
	}
}

func TestCodecDecodeExpired(t *testing.T) {
	codec := NewCodec("test-secret", 0)
	codec.now = func() time.Time { return time.Now().Add(-8 * 24 * time.Hour) }

	token, err := codec.Encode(domain.Identity{ID: "user-1", Role: domain.RoleEmployee})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	codec.now = time.Now
	if got := codec.Decode(token); got != nil {
		t.Errorf("expected nil for expired token, got %+v", got)
	}
}

func TestCodecDefaultTTL(t *testing.T) {
	codec := NewCodec("test-secret", 0)
	if codec.ttl != TTL {
		t.Errorf("expected default ttl %v, got %v", TTL, codec.ttl)
	}

	codec = NewCodec("test-secret", time.Hour)
	if codec.ttl != time.Hour {
		t.Errorf("expected ttl %v, got %v", time.Hour, codec.ttl)
	}
}
