package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/resume-matcher/internal/extract"
	"github.com/jonathan/resume-matcher/internal/parser"
	"github.com/jonathan/resume-matcher/internal/scoring"
)

// ErrInvalidCredentials indicates invalid login credentials.
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Message string
}

func (e *ErrValidation) Error() string {
	return "validation error: " + e.Message
}

// HTTPStatus maps domain errors to HTTP status codes. Unsupported document
// formats and extraction failures are the caller's input problem; weight
// misconfiguration is a bad request; everything unexpected is a 500.
func HTTPStatus(err error) int {
	var (
		invalidCredentials *ErrInvalidCredentials
		validation         *ErrValidation
		weights            *scoring.InvalidWeightConfigurationError
		extraction         *extract.ExtractionError
		parse              *parser.ParseError
	)
	switch {
	case errors.As(err, &invalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, extract.ErrUnsupportedFormat):
		return http.StatusUnsupportedMediaType
	case errors.As(err, &extraction):
		return http.StatusUnprocessableEntity
	case errors.As(err, &parse):
		return http.StatusUnprocessableEntity
	case errors.As(err, &validation), errors.As(err, &weights):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
