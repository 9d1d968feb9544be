package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseMethods(t *testing.T) {
	m := parseMethods("get, HEAD ,")
	assert.True(t, m["GET"])
	assert.True(t, m["HEAD"])
	assert.Len(t, m, 2)
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("X_BOOL", "yes")
	assert.True(t, envBool("X_BOOL", false))
	t.Setenv("X_BOOL", "off")
	assert.False(t, envBool("X_BOOL", true))
	t.Setenv("X_BOOL", "maybe")
	assert.True(t, envBool("X_BOOL", true))

	t.Setenv("X_INT", "42")
	assert.Equal(t, 42, envInt("X_INT", 1))
	assert.Equal(t, 7, envInt("X_INT_MISSING", 7))

	t.Setenv("X_DUR", "90s")
	assert.Equal(t, 90*time.Second, envDur("X_DUR", time.Minute))
	assert.Equal(t, time.Minute, envDur("X_DUR_MISSING", time.Minute))
}

func TestLoadRateLimitConfigClamps(t *testing.T) {
	t.Setenv("RATE_LIMIT_CAPACITY", "0")
	t.Setenv("RATE_LIMIT_REFILL_TOKENS", "0")
	t.Setenv("RATE_LIMIT_TTL", "1s")
	cfg := LoadRateLimitConfig()
	assert.Equal(t, 1, cfg.Capacity)
	assert.Equal(t, 1, cfg.RefillTokens)
	assert.GreaterOrEqual(t, cfg.TTL, 5*cfg.RefillInterval)
}
