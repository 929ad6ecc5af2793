package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("RETRIEVAL_TIMEOUT_MS", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("SKILL_DICTIONARY_PATH", "")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 3*time.Second, cfg.RetrievalTimeout)
	assert.Empty(t, cfg.DatabaseURL)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("RETRIEVAL_TIMEOUT_MS", "500")
	t.Setenv("SKILL_DICTIONARY_PATH", "")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 500*time.Millisecond, cfg.RetrievalTimeout)
}

func TestFromEnv_BadPort(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	_, err := FromEnv()
	require.Error(t, err)
}

func TestConfig_ValidateRanges(t *testing.T) {
	cfg := &Config{Port: 0, RetrievalTimeout: time.Second}
	require.Error(t, cfg.Validate())

	cfg = &Config{Port: 8080, RetrievalTimeout: 0}
	require.Error(t, cfg.Validate())

	cfg = &Config{Port: 8080, RetrievalTimeout: time.Second, DictionaryPath: "/nonexistent/skills.json"}
	require.Error(t, cfg.Validate())
}

func TestNewJWTConfig(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_TTL_HOURS", "")

	cfg, err := NewJWTConfig()
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, cfg.TTL)

	t.Setenv("JWT_TTL_HOURS", "2")
	cfg, err = NewJWTConfig()
	require.NoError(t, err)
	assert.Equal(t, 2*time.Hour, cfg.TTL)

	t.Setenv("JWT_SECRET", "")
	_, err = NewJWTConfig()
	require.Error(t, err)
}

func TestPasswordConfig_HashAndVerify(t *testing.T) {
	t.Setenv("BCRYPT_COST", "10")
	t.Setenv("PASSWORD_PEPPER", "pepper")

	cfg, err := NewPasswordConfig()
	require.NoError(t, err)

	hash, err := cfg.HashPassword("hunter2")
	require.NoError(t, err)

	assert.True(t, cfg.VerifyPassword("hunter2", hash))
	assert.False(t, cfg.VerifyPassword("hunter3", hash))

	unpeppered := &PasswordConfig{BcryptCost: 10}
	assert.False(t, unpeppered.VerifyPassword("hunter2", hash), "pepper participates in the hash")
}

func TestNewPasswordConfig_CostRange(t *testing.T) {
	t.Setenv("BCRYPT_COST", "9")
	_, err := NewPasswordConfig()
	require.Error(t, err)

	t.Setenv("BCRYPT_COST", "15")
	_, err = NewPasswordConfig()
	require.Error(t, err)
}
