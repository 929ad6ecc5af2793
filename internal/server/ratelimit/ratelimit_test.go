package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  600,
		DefaultWindow: time.Minute,
		Whitelist:     map[string]bool{},
		Blacklist:     map[string]bool{},
		EndpointConfigs: []EndpointConfig{
			{Path: "/rank", Method: "POST", Limit: 2, Window: time.Minute, Burst: 2},
		},
	}
}

func TestLimiter_EnforcesBurst(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	allowed, _ := l.Allow("1.2.3.4", "/rank", "POST")
	assert.True(t, allowed)
	allowed, _ = l.Allow("1.2.3.4", "/rank", "POST")
	assert.True(t, allowed)

	allowed, info := l.Allow("1.2.3.4", "/rank", "POST")
	assert.False(t, allowed)
	assert.Equal(t, 2, info.Limit)
	assert.GreaterOrEqual(t, info.RetryAfter, time.Duration(0))
}

func TestLimiter_ClientsAreIndependent(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for range 2 {
		allowed, _ := l.Allow("1.1.1.1", "/rank", "POST")
		require.True(t, allowed)
	}
	allowed, _ := l.Allow("1.1.1.1", "/rank", "POST")
	require.False(t, allowed)

	allowed, _ = l.Allow("2.2.2.2", "/rank", "POST")
	assert.True(t, allowed, "limits are per client")
}

func TestLimiter_DisabledAllowsEverything(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false})
	defer l.Stop()

	for range 100 {
		allowed, _ := l.Allow("1.2.3.4", "/rank", "POST")
		require.True(t, allowed)
	}
}

func TestLimiter_Lists(t *testing.T) {
	cfg := testConfig()
	cfg.Whitelist["9.9.9.9"] = true
	cfg.Blacklist["6.6.6.6"] = true
	l := NewLimiter(cfg)
	defer l.Stop()

	for range 10 {
		allowed, _ := l.Allow("9.9.9.9", "/rank", "POST")
		require.True(t, allowed)
	}

	allowed, _ := l.Allow("6.6.6.6", "/health", "POST")
	assert.False(t, allowed)
}

func TestMatchEndpoint(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/rank", Method: "POST", Limit: 30},
		{Path: "/results/", Method: "GET", Limit: 100},
	}

	assert.Equal(t, 30, MatchEndpoint("/rank", "POST", configs).Limit)
	assert.Equal(t, 100, MatchEndpoint("/results/job-1", "GET", configs).Limit, "prefix paths match")
	assert.Nil(t, MatchEndpoint("/match", "POST", configs))
	assert.Equal(t, 0, MatchEndpoint("/health", "GET", configs).Limit, "health is unlimited")
}
