package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	// Create a temporary directory for test files
	tempDir := t.TempDir()

	configPath := filepath.Join(tempDir, "test_config.yaml")
	configContent := `
log_level: -4
deezer:
  base_url: http://deezer.test
  proxy_url: https://corsproxy.io/?
  timeout: 3s
  placeholder_cover: /static/none.svg
server:
  port: "9090"
session:
  ttl: 1h
`
	err := os.WriteFile(configPath, []byte(configContent), 0644)
	assert.NoError(t, err)

	cfg, err := Load(configPath)

	assert.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Equal(t, -4, cfg.LogLevel)
	assert.Equal(t, "http://deezer.test", cfg.Deezer.BaseURL)
	assert.Equal(t, "https://corsproxy.io/?", cfg.Deezer.ProxyURL)
	assert.Equal(t, 3*time.Second, cfg.Deezer.Timeout)
	assert.Equal(t, "/static/none.svg", cfg.Deezer.PlaceholderCover)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, time.Hour, cfg.Session.TTL)
	assert.Equal(t, 2*time.Hour, cfg.Session.CleanupInterval)
}

func TestLoadDefaults(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "empty.yaml")
	err := os.WriteFile(configPath, []byte("log_level: 0\n"), 0644)
	assert.NoError(t, err)

	cfg, err := Load(configPath)

	assert.NoError(t, err)
	assert.Equal(t, DefaultDeezerBaseURL, cfg.Deezer.BaseURL)
	assert.Empty(t, cfg.Deezer.ProxyURL)
	assert.Equal(t, DefaultRequestTimeout, cfg.Deezer.Timeout)
	assert.Equal(t, DefaultPlaceholderCover, cfg.Deezer.PlaceholderCover)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("DEEZER_PROXY_URL", "https://relay.example/?")
	t.Setenv("PORT", "7000")

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(configPath, []byte("server:\n  port: \"8081\"\n"), 0644)
	assert.NoError(t, err)

	cfg, err := Load(configPath)

	assert.NoError(t, err)
	assert.Equal(t, "https://relay.example/?", cfg.Deezer.ProxyURL)
	assert.Equal(t, "7000", cfg.Server.Port)
}

func TestLoadNonExistentFile(t *testing.T) {
	cfg, err := Load("non_existent_file.yaml")

	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadInvalidYAML(t *testing.T) {
	tempDir := t.TempDir()

	configPath := filepath.Join(tempDir, "invalid_config.yaml")
	configContent := `
log_level: -4
deezer:
  base_url: http://deezer.test
invalid_yaml: [this is not valid yaml
`
	err := os.WriteFile(configPath, []byte(configContent), 0644)
	assert.NoError(t, err)

	cfg, err := Load(configPath)

	assert.Error(t, err)
	assert.Nil(t, cfg)
}
