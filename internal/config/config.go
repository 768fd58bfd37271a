package config

import (
	"os"
	"path/filepath"
)

// Config holds client configuration loaded from environment variables.
type Config struct {
	// APIURL is the API origin every request is prefixed with.
	APIURL string
	// TokenFile is where the bearer token is persisted between runs.
	TokenFile string
}

func Load() *Config {
	return &Config{
		APIURL:    getenv("RECIPE_API_URL", "http://localhost:8000/api"),
		TokenFile: getenv("RECIPE_TOKEN_FILE", defaultTokenFile()),
	}
}

func defaultTokenFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "recipie", "auth_token")
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
