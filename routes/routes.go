package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/abhurtya/real-deal-server-side/handlers"
	"github.com/abhurtya/real-deal-server-side/middleware"
)

type Controllers struct {
	Properties *handlers.PropertyController
	News       *handlers.NewsController
	Auth       *handlers.AuthController
	Geocode    *handlers.GeocodeController
	Mail       *handlers.MailController
}

// RegisterRoutes mounts the whole API on e. Session resolution must already
// be installed on e for the admin guard to see the caller.
func RegisterRoutes(e *echo.Echo, ctl Controllers) {
	e.GET("/health", handlers.HealthCheck)

	admin := middleware.RequireAdmin()

	properties := e.Group("/properties")
	properties.GET("", ctl.Properties.GetProperties)
	properties.GET("/addDummyData", ctl.Properties.AddDummyData, admin)
	properties.GET("/:id", ctl.Properties.GetProperty)
	properties.POST("/add", ctl.Properties.CreateProperty, admin)
	properties.PUT("/update/:id", ctl.Properties.UpdateProperty, admin)
	properties.DELETE("/delete/:id", ctl.Properties.DeleteProperty, admin)

	news := e.Group("/news")
	news.GET("", ctl.News.GetNews)
	news.GET("/addDummyData", ctl.News.AddDummyData, admin)
	news.GET("/:id", ctl.News.GetNewsByID)
	news.POST("/add", ctl.News.CreateNews, admin)
	news.PUT("/update/:id", ctl.News.UpdateNews, admin)
	news.DELETE("/delete/:id", ctl.News.DeleteNews, admin)

	authGroup := e.Group("/auth")
	authGroup.GET("/google", ctl.Auth.GoogleLogin)
	authGroup.GET("/google/callback", ctl.Auth.GoogleCallback)
	authGroup.GET("/login/success", ctl.Auth.LoginSuccess)
	authGroup.GET("/login/failed", ctl.Auth.LoginFailed)
	authGroup.GET("/logout", ctl.Auth.Logout)

	e.GET("/geocode", ctl.Geocode.GetGeocode)
	e.POST("/bookappt", ctl.Mail.BookAppointment)
	e.POST("/requestlisting", ctl.Mail.RequestListing)
}
