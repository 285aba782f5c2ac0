// Package config loads mapper configuration from the environment.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	AppName     = "iab-product-mapper"
	EnvFileName = "config.env"
)

// Config holds everything needed to wire a mapper from the environment.
type Config struct {
	MixpeekApiKey    string
	MixpeekNamespace string
	MixpeekEndpoint  string
	GeminiApiKey     string
	Mode             string
	MinConfidence    float64
	CacheTTL         time.Duration
	CachePath        string
}

// LoadEnvFile loads environment variables from the config file in the
// user's config directory. Errors are ignored since the file may not
// exist.
func LoadEnvFile() {
	configBase, err := os.UserConfigDir()
	if err != nil {
		return
	}
	configPath := filepath.Join(configBase, AppName, EnvFileName)
	_ = godotenv.Load(configPath)
}

// FromEnv reads configuration from the environment, applying defaults for
// anything unset: hybrid mode, 0.3 minimum confidence, one hour cache TTL.
func FromEnv() Config {
	c := Config{
		MixpeekApiKey:    os.Getenv("MIXPEEK_API_KEY"),
		MixpeekNamespace: os.Getenv("MIXPEEK_NAMESPACE"),
		MixpeekEndpoint:  os.Getenv("MIXPEEK_ENDPOINT"),
		GeminiApiKey:     os.Getenv("GEMINI_API_KEY"),
		Mode:             os.Getenv("IAB_MAPPING_MODE"),
		MinConfidence:    0.3,
		CacheTTL:         time.Hour,
		CachePath:        os.Getenv("IAB_CACHE_PATH"),
	}

	if c.Mode == "" {
		c.Mode = "hybrid"
	}
	if v := os.Getenv("IAB_MIN_CONFIDENCE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.MinConfidence = f
		}
	}
	if v := os.Getenv("IAB_CACHE_TTL"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil {
			c.CacheTTL = time.Duration(secs) * time.Second
		}
	}

	return c
}
