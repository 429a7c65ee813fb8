package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	FirstName    *string   `json:"firstname,omitempty"`
	LastName     *string   `json:"lastname,omitempty"`
	Email        string    `json:"email"`
	PasswordHash *string   `json:"-"`
	Role         string    `json:"role"`
	AuthProvider string    `json:"auth_provider,omitempty"`
	IsVerified   bool      `json:"is_verified"`
	IsDeleted    bool      `json:"is_deleted"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type UpdateProfileRequest struct {
	FirstName *string `json:"firstname,omitempty" validate:"omitempty,min=1,max=50"`
	LastName  *string `json:"lastname,omitempty" validate:"omitempty,min=1,max=50"`
}

// IsAdmin checks the role attribute. Admin rights live on the row and are
// decided server-side, never derived from the client.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
