package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/abhurtya/real-deal-server-side/gateway"
	"github.com/abhurtya/real-deal-server-side/models"
)

const invalidBody = "Invalid request body"

// respondError maps gateway outcomes onto HTTP. notFound is the resource
// specific message used for a 404.
func respondError(c echo.Context, err error, notFound string) error {
	switch {
	case errors.Is(err, gateway.ErrNotFound):
		return c.JSON(http.StatusNotFound, models.MessageResponse{Message: notFound})
	case errors.Is(err, gateway.ErrConflict):
		return c.JSON(http.StatusConflict, models.MessageResponse{Message: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, models.MessageResponse{Message: "Internal Server Error"})
	}
}
