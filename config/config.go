package config

import (
	"os"
	"strconv"
)

// Config holds all application configuration, read from the environment.
type Config struct {
	ServerAddress string
	Environment   string
	PointsFile    string
	EnableCORS    bool
}

// LoadConfig reads configuration from environment variables, falling back
// to development defaults.
func LoadConfig() *Config {
	return &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		PointsFile:    getEnv("POINTS_FILE", "data/points.json"),
		EnableCORS:    getEnvBool("ENABLE_CORS", true),
	}
}

// IsProduction reports whether the server runs in release mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return fallback
}
