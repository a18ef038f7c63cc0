package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/issuetrack/reporting-system/internal/core/domain"
	"github.com/issuetrack/reporting-system/internal/session"
)

// stubRevoker marks a single token as revoked.
type stubRevoker struct {
	revoked string
}

func (r *stubRevoker) Revoke(_ context.Context, token string) error {
	r.revoked = token
	return nil
}

func (r *stubRevoker) IsRevoked(_ context.Context, token string) (bool, error) {
	return token == r.revoked, nil
}

func echoIdentity(c echo.Context) error {
	id := Identity(c)
	if id == nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "identity missing"})
	}
	return c.JSON(http.StatusOK, id)
}

func sessionRequest(t *testing.T, mw echo.MiddlewareFunc, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := mw(echoIdentity)(c)
	if err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestSessionMiddleware(t *testing.T) {
	codec := session.NewCodec("test-secret", 0)
	mw := Session(codec, nil)

	token, err := codec.Encode(domain.Identity{ID: "user-1", Name: "Jane", Email: "jane@corp.com", Role: domain.RoleEmployee})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rec := sessionRequest(t, mw, &http.Cookie{Name: session.CookieName, Value: token})
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestSessionMiddlewareMissingCookie(t *testing.T) {
	mw := Session(session.NewCodec("test-secret", 0), nil)

	rec := sessionRequest(t, mw, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestSessionMiddlewareBadToken(t *testing.T) {
	mw := Session(session.NewCodec("test-secret", 0), nil)

	for _, value := range []string{"", "garbage", "a.b.c"} {
		rec := sessionRequest(t, mw, &http.Cookie{Name: session.CookieName, Value: value})
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("token %q: expected 401, got %d", value, rec.Code)
		}
	}
}

func TestSessionMiddlewareForeignSignature(t *testing.T) {
	mw := Session(session.NewCodec("test-secret", 0), nil)

	other := session.NewCodec("another-secret", 0)
	token, err := other.Encode(domain.Identity{ID: "user-1", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rec := sessionRequest(t, mw, &http.Cookie{Name: session.CookieName, Value: token})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for a token signed elsewhere, got %d", rec.Code)
	}
}

func TestSessionMiddlewareRevokedToken(t *testing.T) {
	codec := session.NewCodec("test-secret", 0)
	revoker := &stubRevoker{}
	mw := Session(codec, revoker)

	token, err := codec.Encode(domain.Identity{ID: "user-1", Role: domain.RoleEmployee})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rec := sessionRequest(t, mw, &http.Cookie{Name: session.CookieName, Value: token})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 before revocation, got %d", rec.Code)
	}

	if err := revoker.Revoke(context.Background(), token); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rec = sessionRequest(t, mw, &http.Cookie{Name: session.CookieName, Value: token})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 after revocation, got %d", rec.Code)
	}
}
