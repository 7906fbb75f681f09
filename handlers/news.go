package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/abhurtya/real-deal-server-side/gateway"
	"github.com/abhurtya/real-deal-server-side/models"
	"github.com/abhurtya/real-deal-server-side/seed"
)

type NewsController struct {
	recordController[models.News, *models.News]
}

func NewNewsController(records *gateway.Gateway[models.News, *models.News]) *NewsController {
	return &NewsController{recordController[models.News, *models.News]{
		records:  records,
		seed:     seed.News,
		notFound: "News not found",
		deleted:  "News deleted successfully",
		seeded:   "News articles added successfully",
	}}
}

func (nc *NewsController) GetNews(c echo.Context) error {
	news, err := nc.records.List(c.Request().Context(), bson.M{})
	if err != nil {
		return c.JSON(http.StatusNotFound, models.MessageResponse{Message: err.Error()})
	}
	if news == nil {
		news = []models.News{}
	}
	return c.JSON(http.StatusOK, news)
}

func (nc *NewsController) GetNewsByID(c echo.Context) error { return nc.get(c) }
func (nc *NewsController) CreateNews(c echo.Context) error { return nc.add(c) }
func (nc *NewsController) UpdateNews(c echo.Context) error { return nc.update(c) }
func (nc *NewsController) DeleteNews(c echo.Context) error { return nc.delete(c) }
func (nc *NewsController) AddDummyData(c echo.Context) error { return nc.addDummyData(c) }
