package models

// BookingRequest is submitted by a visitor asking for a viewing appointment.
type BookingRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone"`
	Date  string `json:"date" validate:"required"`
	Time  string `json:"time" validate:"required"`
	Note  string `json:"note"`
}

// ListingRequest is submitted by an owner who wants a property listed.
type ListingRequest struct {
	PropertyType      string `json:"propertyType" validate:"required"`
	PropertyHistory   string `json:"propertyHistory"`
	NeighbourBenefits string `json:"neighbourBenefits"`
	IsWalkable        any    `json:"isWalkable"`
	HasSchoolsNearby  any    `json:"hasSchoolsNearby"`
	FirstName         string `json:"firstName" validate:"required"`
	LastName          string `json:"lastName"`
	Email             string `json:"email" validate:"required,email"`
	Phone             string `json:"phone"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
