package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Role string

const (
	RoleStudent  Role = "student"
	RoleWarden   Role = "warden"
	RoleSecurity Role = "security"
)

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleWarden, RoleSecurity:
		return true
	}
	return false
}

type User struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Username  string             `json:"username" bson:"username"`
	Email     string             `json:"email" bson:"email"`
	Password  string             `json:"-" bson:"password,omitempty"`
	Role      Role               `json:"role" bson:"role"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt,omitempty"`
}
