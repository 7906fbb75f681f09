package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/abhurtya/real-deal-server-side/gateway"
	"github.com/abhurtya/real-deal-server-side/models"
	"github.com/abhurtya/real-deal-server-side/utils"
)

// recordController carries the handlers shared by every admin managed
// collection. Resource controllers embed it and add their own listing.
type recordController[T any, PT interface {
	*T
	gateway.Record
}] struct {
	records  *gateway.Gateway[T, PT]
	seed     func() []PT
	notFound string
	deleted  string
	seeded   string
}

func (rc *recordController[T, PT]) get(c echo.Context) error {
	doc, err := rc.records.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err, rc.notFound)
	}
	return c.JSON(http.StatusOK, doc)
}

func (rc *recordController[T, PT]) add(c echo.Context) error {
	doc := PT(new(T))
	if err := c.Bind(doc); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: invalidBody})
	}

	created, err := rc.records.Create(c.Request().Context(), doc)
	if err != nil {
		return respondError(c, err, rc.notFound)
	}
	return c.JSON(http.StatusCreated, created)
}

func (rc *recordController[T, PT]) update(c echo.Context) error {
	id := c.Param("id")
	if _, ok := utils.ParseObjectID(id); !ok {
		return c.JSON(http.StatusNotFound, models.MessageResponse{Message: rc.notFound})
	}

	doc := PT(new(T))
	if err := c.Bind(doc); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: invalidBody})
	}

	updated, err := rc.records.Update(c.Request().Context(), id, doc)
	if err != nil {
		return respondError(c, err, rc.notFound)
	}
	return c.JSON(http.StatusOK, updated)
}

func (rc *recordController[T, PT]) delete(c echo.Context) error {
	if err := rc.records.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return respondError(c, err, rc.notFound)
	}
	return c.JSON(http.StatusOK, models.MessageResponse{Message: rc.deleted})
}

func (rc *recordController[T, PT]) addDummyData(c echo.Context) error {
	if err := rc.records.CreateMany(c.Request().Context(), rc.seed()); err != nil {
		return respondError(c, err, rc.notFound)
	}
	return c.JSON(http.StatusCreated, models.MessageResponse{Message: rc.seeded})
}
