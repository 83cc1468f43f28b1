package models

import (
	"time"

	"doctorsportal-service/internal/pkg/constvars"
)

type User struct {
	ID        string    `json:"_id,omitempty" bson:"_id,omitempty"`
	Email     string    `json:"email" bson:"email"`
	Name      string    `json:"name" bson:"name"`
	Role      string    `json:"role,omitempty" bson:"role,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

func (u *User) IsAdmin() bool {
	return u.Role == constvars.UserRoleAdmin
}
