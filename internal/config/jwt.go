package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// JWTConfig holds configuration for token generation and validation.
type JWTConfig struct {
	Secret string
	TTL    time.Duration
}

// NewJWTConfig creates a JWT configuration from environment variables.
// JWT_SECRET is required; JWT_TTL_HOURS defaults to 24.
func NewJWTConfig() (*JWTConfig, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but not set")
	}

	hours := 24
	if ttlStr := os.Getenv("JWT_TTL_HOURS"); ttlStr != "" {
		parsed, err := strconv.Atoi(ttlStr)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_TTL_HOURS: %v", err)
		}
		hours = parsed
	}
	if hours < 1 {
		return nil, fmt.Errorf("JWT_TTL_HOURS must be at least 1, got: %d", hours)
	}

	return &JWTConfig{
		Secret: secret,
		TTL:    time.Duration(hours) * time.Hour,
	}, nil
}
