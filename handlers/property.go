package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/abhurtya/real-deal-server-side/filters"
	"github.com/abhurtya/real-deal-server-side/gateway"
	"github.com/abhurtya/real-deal-server-side/models"
	"github.com/abhurtya/real-deal-server-side/seed"
)

type PropertyController struct {
	recordController[models.Property, *models.Property]
}

func NewPropertyController(records *gateway.Gateway[models.Property, *models.Property]) *PropertyController {
	return &PropertyController{recordController[models.Property, *models.Property]{
		records:  records,
		seed:     seed.Properties,
		notFound: "No property with that id",
		deleted:  "Property deleted successfully",
		seeded:   "Props added successfully",
	}}
}

// GetProperties lists the properties matching the optional type and range
// parameters.
func (pc *PropertyController) GetProperties(c echo.Context) error {
	var q filters.PropertyQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &q); err != nil {
		return c.JSON(http.StatusBadRequest, models.MessageResponse{Message: err.Error()})
	}

	filter, err := filters.Build(q)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.MessageResponse{Message: err.Error()})
	}

	properties, err := pc.records.List(c.Request().Context(), filter)
	if err != nil {
		return c.JSON(http.StatusNotFound, models.MessageResponse{Message: err.Error()})
	}
	if properties == nil {
		properties = []models.Property{}
	}
	return c.JSON(http.StatusOK, properties)
}

func (pc *PropertyController) GetProperty(c echo.Context) error { return pc.get(c) }
func (pc *PropertyController) CreateProperty(c echo.Context) error { return pc.add(c) }
func (pc *PropertyController) UpdateProperty(c echo.Context) error { return pc.update(c) }
func (pc *PropertyController) DeleteProperty(c echo.Context) error { return pc.delete(c) }
func (pc *PropertyController) AddDummyData(c echo.Context) error { return pc.addDummyData(c) }
