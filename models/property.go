package models

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
	"unicode"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	PropertyTypeSale = "sale"
	PropertyTypeRent = "rent"
)

// Property is a listing available for sale or rent.
//
// Required numeric attributes are pointers so that an explicit zero (a studio
// with 0 bedrooms) is distinguishable from a missing field.
type Property struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title       string             `bson:"title" json:"title" validate:"required"`
	Address     string             `bson:"address" json:"address" validate:"required"`
	Price       *float64           `bson:"price" json:"price" validate:"required,gte=0"`
	Type        string             `bson:"type" json:"type" validate:"required,oneof=sale rent"`
	Bedrooms    *int               `bson:"bedrooms" json:"bedrooms" validate:"required,gte=0"`
	Bathrooms   *int               `bson:"bathrooms" json:"bathrooms" validate:"required,gte=0"`
	Size        Size               `bson:"size" json:"size" validate:"required"`
	SizeSqft    int                `bson:"sizeSqft" json:"sizeSqft"`
	Description string             `bson:"description" json:"description" validate:"required"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty" validate:"omitempty,url"`
	Latitude    *float64           `bson:"latitude" json:"latitude" validate:"required,latitude"`
	Longitude   *float64           `bson:"longitude" json:"longitude" validate:"required,longitude"`
	CreatedAt   time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (p *Property) SetID(id primitive.ObjectID) { p.ID = id }

func (p *Property) SetTimestamps(created, updated time.Time) {
	p.CreatedAt = created
	p.UpdatedAt = updated
}

// BeforeSave keeps the numeric size in step with the free-text size.
func (p *Property) BeforeSave() {
	p.SizeSqft = p.Size.Sqft()
}

// Size is the floor area as entered, e.g. "1200 sqft". Clients may send it as
// a JSON string or a JSON number.
type Size string

func (s *Size) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*s = Size(text)
		return nil
	}
	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return err
	}
	*s = Size(number.String())
	return nil
}

// Sqft returns the leading integer of the size text, or 0 when there is none.
func (s Size) Sqft() int {
	text := strings.TrimSpace(string(s))
	end := strings.IndexFunc(text, func(r rune) bool {
		return !unicode.IsDigit(r) && r != ','
	})
	if end == -1 {
		end = len(text)
	}
	n, err := strconv.Atoi(strings.ReplaceAll(text[:end], ",", ""))
	if err != nil {
		return 0
	}
	return n
}
