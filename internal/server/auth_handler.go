package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/db"
	"github.com/jonathan/resume-matcher/internal/types"
)

// AuthHandler handles authentication requests.
type AuthHandler struct {
	database    *db.DB
	passwordCfg *config.PasswordConfig
	jwtService  *JWTService
	validator   *validator.Validate
}

// NewAuthHandler creates an AuthHandler with the given dependencies.
func NewAuthHandler(database *db.DB, passwordCfg *config.PasswordConfig, jwtService *JWTService) *AuthHandler {
	return &AuthHandler{
		database:    database,
		passwordCfg: passwordCfg,
		jwtService:  jwtService,
		validator:   validator.New(),
	}
}

// Login verifies credentials and issues a token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if h.database == nil {
		http.Error(w, "authentication requires a configured database", http.StatusServiceUnavailable)
		return
	}

	var req types.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		http.Error(w, extractValidationErrors(err), http.StatusBadRequest)
		return
	}

	user, err := h.database.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}
	// Same response for unknown email and wrong password.
	if user == nil || !h.passwordCfg.VerifyPassword(req.Password, user.PasswordHash) {
		credErr := &ErrInvalidCredentials{}
		http.Error(w, credErr.Error(), HTTPStatus(credErr))
		return
	}

	token, err := h.jwtService.GenerateToken(user.ID)
	if err != nil {
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(types.LoginResponse{Token: token})
}

// extractValidationErrors renders the first validator error as a message.
func extractValidationErrors(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok && len(validationErrors) > 0 {
		ve := validationErrors[0]
		return fmt.Sprintf("validation error: %s - %s", ve.Field(), ve.Tag())
	}
	return "validation error: invalid request"
}
