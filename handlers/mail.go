package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/abhurtya/real-deal-server-side/models"
)

type Notifier interface {
	BookAppointment(req models.BookingRequest) error
	RequestListing(req models.ListingRequest) error
}

type MailController struct {
	notifier Notifier
}

func NewMailController(notifier Notifier) *MailController {
	return &MailController{notifier: notifier}
}

// BookAppointment accepts the request once it is valid; delivery happens in
// the background.
func (mc *MailController) BookAppointment(c echo.Context) error {
	var req models.BookingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: invalidBody})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
	}
	if err := mc.notifier.BookAppointment(req); err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to send email"})
	}
	return c.JSON(http.StatusOK, models.MessageResponse{Message: "Appointment request sent"})
}

func (mc *MailController) RequestListing(c echo.Context) error {
	var req models.ListingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: invalidBody})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
	}
	if err := mc.notifier.RequestListing(req); err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to send email"})
	}
	return c.JSON(http.StatusOK, models.MessageResponse{Message: "Listing request sent"})
}
