package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is an account linked to a Google identity. Role is only ever written
// out-of-band; the login flow leaves it untouched on existing accounts.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Firstname    string             `bson:"firstname" json:"firstname" validate:"required"`
	Lastname     string             `bson:"lastname,omitempty" json:"lastname,omitempty"`
	Email        string             `bson:"email" json:"email" validate:"required,email"`
	ProfileImage string             `bson:"profileImage,omitempty" json:"profileImage,omitempty"`
	GoogleID     string             `bson:"googleId,omitempty" json:"googleId,omitempty"`
	Role         string             `bson:"role" json:"role" validate:"required,oneof=user admin"`
	CreatedAt    time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (u *User) SetID(id primitive.ObjectID) { u.ID = id }

func (u *User) SetTimestamps(created, updated time.Time) {
	u.CreatedAt = created
	u.UpdatedAt = updated
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
