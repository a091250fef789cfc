package config

import (
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
    cfg := Load()
    assert.Equal(t, "Token Generation API", cfg.AppName)
    assert.Equal(t, "Deepak", cfg.Participant)
    assert.Equal(t, "development", cfg.Env)
    assert.Equal(t, "0.0.0.0:8000", cfg.Addr())
    assert.False(t, cfg.UsageEvents)
    assert.False(t, cfg.UsageConsumer)
}

func TestLoadFromEnv(t *testing.T) {
    t.Setenv("PARTICIPANT_NAME", "Asha")
    t.Setenv("HOST", "127.0.0.1")
    t.Setenv("PORT", "9000")
    t.Setenv("ENVIRONMENT", "production")
    t.Setenv("USAGE_EVENTS_ENABLED", "true")

    cfg := Load()
    assert.Equal(t, "Asha", cfg.Participant)
    assert.Equal(t, "127.0.0.1:9000", cfg.Addr())
    assert.Equal(t, "production", cfg.Env)
    assert.True(t, cfg.UsageEvents)
}

func TestLoadRateLimitConfigClamps(t *testing.T) {
    t.Setenv("RATE_LIMIT_CAPACITY", "0")
    t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "250ms")
    t.Setenv("RATE_LIMIT_TTL", "1ms")

    cfg := LoadRateLimitConfig()
    assert.Equal(t, 1, cfg.Capacity)
    assert.Equal(t, 250*time.Millisecond, cfg.RefillInterval)
    // TTL is raised so idle buckets outlive a few refill intervals
    assert.Equal(t, 5*cfg.RefillInterval, cfg.TTL)
}

func TestLoadCacheConfigMethods(t *testing.T) {
    t.Setenv("CACHE_METHODS", "get, head")

    cfg := LoadCacheConfig()
    assert.True(t, cfg.Methods["GET"])
    assert.True(t, cfg.Methods["HEAD"])
    assert.False(t, cfg.Methods["POST"])
}
