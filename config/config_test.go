package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{
		"MIXPEEK_API_KEY", "MIXPEEK_NAMESPACE", "MIXPEEK_ENDPOINT",
		"GEMINI_API_KEY", "IAB_MAPPING_MODE", "IAB_MIN_CONFIDENCE",
		"IAB_CACHE_TTL", "IAB_CACHE_PATH",
	} {
		t.Setenv(key, "")
	}

	c := FromEnv()

	assert.Equal(t, "hybrid", c.Mode)
	assert.Equal(t, 0.3, c.MinConfidence)
	assert.Equal(t, time.Hour, c.CacheTTL)
	assert.Empty(t, c.MixpeekApiKey)
	assert.Empty(t, c.CachePath)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("MIXPEEK_API_KEY", "sk-test")
	t.Setenv("MIXPEEK_NAMESPACE", "ns-1")
	t.Setenv("MIXPEEK_ENDPOINT", "http://localhost:8080")
	t.Setenv("IAB_MAPPING_MODE", "deterministic")
	t.Setenv("IAB_MIN_CONFIDENCE", "0.5")
	t.Setenv("IAB_CACHE_TTL", "120")
	t.Setenv("IAB_CACHE_PATH", "/tmp/cache.db")

	c := FromEnv()

	assert.Equal(t, "sk-test", c.MixpeekApiKey)
	assert.Equal(t, "ns-1", c.MixpeekNamespace)
	assert.Equal(t, "http://localhost:8080", c.MixpeekEndpoint)
	assert.Equal(t, "deterministic", c.Mode)
	assert.Equal(t, 0.5, c.MinConfidence)
	assert.Equal(t, 2*time.Minute, c.CacheTTL)
	assert.Equal(t, "/tmp/cache.db", c.CachePath)
}

func TestFromEnvIgnoresUnparseableValues(t *testing.T) {
	t.Setenv("IAB_MIN_CONFIDENCE", "not-a-float")
	t.Setenv("IAB_CACHE_TTL", "soon")

	c := FromEnv()

	assert.Equal(t, 0.3, c.MinConfidence)
	assert.Equal(t, time.Hour, c.CacheTTL)
}
