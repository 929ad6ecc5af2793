package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/server/middleware"
)

func testJWTConfig() *config.JWTConfig {
	return &config.JWTConfig{Secret: "test-secret", TTL: time.Hour}
}

func TestJWTService_RoundTrip(t *testing.T) {
	service := NewJWTService(testJWTConfig())
	userID := uuid.New()

	token, err := service.GenerateToken(userID)
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.GetUserID())
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	token, err := NewJWTService(testJWTConfig()).GenerateToken(uuid.New())
	require.NoError(t, err)

	other := NewJWTService(&config.JWTConfig{Secret: "other-secret", TTL: time.Hour})
	_, err = other.ValidateToken(token)
	require.Error(t, err)
}

func TestJWTService_RejectsExpired(t *testing.T) {
	service := NewJWTService(&config.JWTConfig{Secret: "test-secret", TTL: -time.Hour})

	token, err := service.GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expired")
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	service := NewJWTService(testJWTConfig())

	_, err := service.ValidateToken("")
	require.Error(t, err)
	_, err = service.ValidateToken("not.a.token")
	require.Error(t, err)
}

func TestAuthMiddleware(t *testing.T) {
	service := NewJWTService(testJWTConfig())
	userID := uuid.New()
	token, err := service.GenerateToken(userID)
	require.NoError(t, err)

	var seenID uuid.UUID
	handler := middleware.Auth(service.AsTokenValidator())(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seenID, err = middleware.GetUserID(r)
			require.NoError(t, err)
			w.WriteHeader(http.StatusOK)
		}),
	)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, seenID)

	// Missing and malformed headers are rejected.
	for _, header := range []string{"", "Bearer", "Token abc", "Bearer bad.token"} {
		req = httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec = httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
}
