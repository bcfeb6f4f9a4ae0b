package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "data/points.json", cfg.PointsFile)
	assert.True(t, cfg.EnableCORS)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", ":9000")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("POINTS_FILE", "/etc/navigator/points.json")
	t.Setenv("ENABLE_CORS", "false")

	cfg := LoadConfig()

	assert.Equal(t, ":9000", cfg.ServerAddress)
	assert.Equal(t, "/etc/navigator/points.json", cfg.PointsFile)
	assert.False(t, cfg.EnableCORS)
	assert.True(t, cfg.IsProduction())
}

func TestLoadConfig_BadBoolFallsBack(t *testing.T) {
	t.Setenv("ENABLE_CORS", "not-a-bool")

	cfg := LoadConfig()
	assert.True(t, cfg.EnableCORS)
}
