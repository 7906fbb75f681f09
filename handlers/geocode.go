package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/abhurtya/real-deal-server-side/geocode"
	"github.com/abhurtya/real-deal-server-side/models"
)

type Geocoder interface {
	Lookup(ctx context.Context, location string) (json.RawMessage, error)
}

type GeocodeController struct {
	geocoder Geocoder
	logger   *slog.Logger
}

func NewGeocodeController(geocoder Geocoder, logger *slog.Logger) *GeocodeController {
	return &GeocodeController{geocoder: geocoder, logger: logger}
}

// GetGeocode answers with the first match for ?location= as reported by the
// geocoding service.
func (gc *GeocodeController) GetGeocode(c echo.Context) error {
	location := strings.TrimSpace(c.QueryParam("location"))
	if location == "" {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Location is required"})
	}

	match, err := gc.geocoder.Lookup(c.Request().Context(), location)
	switch {
	case errors.Is(err, geocode.ErrNoMatch):
		return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "No match for location"})
	case err != nil:
		gc.logger.Error("geocode lookup failed", "location", location, "error", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to geocode"})
	}
	return c.JSONBlob(http.StatusOK, match)
}
