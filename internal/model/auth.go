package model

import (
	"github.com/google/uuid"
)

type RegisterRequest struct {
	Email     string  `json:"email" validate:"required,email"`
	Password  string  `json:"password" validate:"required,min=8"`
	FirstName *string `json:"firstname,omitempty"`
	LastName  *string `json:"lastname,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ResendCodeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type VerifyCodeRequest struct {
	Code  string `json:"code" validate:"required"`
	Type  string `json:"type" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type VerifyCodeResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Code        string `json:"code" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type LoginUserResponse struct {
	ID         uuid.UUID `json:"id"`
	FirstName  *string   `json:"firstname,omitempty"`
	LastName   *string   `json:"lastname,omitempty"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	IsVerified bool      `json:"is_verified"`
}

type LoginResponse struct {
	User         *LoginUserResponse `json:"user"`
	Token        string             `json:"token"`
	RefreshToken string             `json:"refresh_token,omitempty"`
}
