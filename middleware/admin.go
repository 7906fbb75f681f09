package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/abhurtya/real-deal-server-side/auth"
	"github.com/abhurtya/real-deal-server-side/models"
)

const forbiddenMessage = "Sorry, Admin Only: You do not have permission to perform this action"

var ErrForbidden = errors.New("middleware: admin role required")

// Authorize permits only authenticated callers holding the admin role.
func Authorize(identity *auth.Identity) error {
	if identity == nil || !identity.User.IsAdmin() {
		return ErrForbidden
	}
	return nil
}

// RequireAdmin answers 403 unless Authorize permits the caller.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := Authorize(IdentityFrom(c)); err != nil {
				return c.JSON(http.StatusForbidden, models.MessageResponse{Message: forbiddenMessage})
			}
			return next(c)
		}
	}
}
