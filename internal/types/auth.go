package types

import (
	"github.com/go-playground/validator/v10"
)

// LoginRequest represents the login request for the matching API.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued authentication token.
type LoginResponse struct {
	Token string `json:"token"`
}

// Validate validates the LoginRequest using the validator.
func (r *LoginRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
