package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jplacht/prunplanner-go/internal/infrastructure/config"
)

func TestSetDefaults(t *testing.T) {
	cfg := &config.Config{}

	config.SetDefaults(cfg)

	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.Equal(t, "prunplanner.db", cfg.Database.Path)
	assert.Equal(t, "https://rest.fnar.net", cfg.FIO.BaseURL)
	assert.Equal(t, float64(200), cfg.ROI.RateLimit)
	assert.Equal(t, 64, cfg.ROI.Burst)
	assert.Equal(t, "info", cfg.Logging.Level)

	// The defaulted configuration must also validate.
	assert.NoError(t, config.ValidateConfig(cfg))
}

func TestLoadConfig_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte("database:\n  type: postgres\n  host: db.example.com\n  port: 5433\nlogging:\n  level: debug\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg, err := config.LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.Database.Type)
	assert.Equal(t, "db.example.com", cfg.Database.Host)
	assert.Equal(t, 5433, cfg.Database.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// Untouched fields still get defaults.
	assert.Equal(t, 64, cfg.ROI.Burst)
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("database:\n  type: mysql\n"), 0o644))

	_, err := config.LoadConfig(path)

	assert.Error(t, err)
}

func TestLoadConfig_DatabaseURLPassthrough(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgresql://user:pw@localhost:5432/prunplanner")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("database:\n  type: postgres\n"), 0o644))

	cfg, err := config.LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "postgresql://user:pw@localhost:5432/prunplanner", cfg.Database.URL)
}

func TestLoadConfigOrDefault_BadFileFallsBack(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("database:\n  type: mysql\n"), 0o644))

	cfg := config.LoadConfigOrDefault(path)

	assert.Equal(t, "sqlite", cfg.Database.Type)
}
