package middleware

import (
	"context"
	"errors"
	"log/slog"

	"github.com/labstack/echo/v4"

	"github.com/abhurtya/real-deal-server-side/auth"
)

const identityKey = "identity"

type IdentityResolver interface {
	Resolve(ctx context.Context, sessionID string) (*auth.Identity, error)
}

// Session resolves the session cookie into an *auth.Identity for the rest of
// the chain. Requests without a valid session continue anonymously.
func Session(resolver IdentityResolver, cookieName string, logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			identity, err := resolver.Resolve(c.Request().Context(), cookie.Value)
			switch {
			case err == nil:
				c.Set(identityKey, identity)
			case !errors.Is(err, auth.ErrUnauthenticated):
				logger.Warn("session lookup failed", "error", err)
			}
			return next(c)
		}
	}
}

// IdentityFrom returns the caller's identity, or nil for anonymous requests.
func IdentityFrom(c echo.Context) *auth.Identity {
	identity, _ := c.Get(identityKey).(*auth.Identity)
	return identity
}
