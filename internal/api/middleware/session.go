package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/issuetrack/reporting-system/internal/core/domain"
	"github.com/issuetrack/reporting-system/internal/session"
)

// identityKey is the echo context key the decoded session is stored under.
const identityKey = "identity"

// Session decodes the session cookie and injects the identity into the
// request context. Requests without a decodable session are rejected with
// 401. An undecodable cookie is treated exactly like an absent one.
//
// revoker may be nil; when set, tokens revoked at logout are rejected even
// though their signature still verifies.
func Session(codec *session.Codec, revoker session.Revoker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(session.CookieName)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "not logged in")
			}

			id := codec.Decode(cookie.Value)
			if id == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "not logged in")
			}

			if revoker != nil {
				revoked, err := revoker.IsRevoked(c.Request().Context(), cookie.Value)
				if err == nil && revoked {
					return echo.NewHTTPError(http.StatusUnauthorized, "session expired")
				}
			}

			c.Set(identityKey, id)
			return next(c)
		}
	}
}

// Identity extracts the session identity injected by the Session middleware.
// Returns nil when the middleware did not run (public routes).
func Identity(c echo.Context) *domain.Identity {
	id, _ := c.Get(identityKey).(*domain.Identity)
	return id
}
