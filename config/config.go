package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDeezerBaseURL    = "https://api.deezer.com"
	DefaultPlaceholderCover = "./assets/images/fallback.svg"
	DefaultRequestTimeout   = 10 * time.Second
)

type Config struct {
	LogLevel int `yaml:"log_level"`

	Deezer  DeezerConfig  `yaml:"deezer"`
	Server  ServerConfig  `yaml:"server"`
	Session SessionConfig `yaml:"session"`
}

type DeezerConfig struct {
	// Base URL of the Deezer public API.
	BaseURL string `yaml:"base_url"`

	// Optional pass-through relay prepended to every request URL,
	// e.g. "https://corsproxy.io/?".
	ProxyURL string `yaml:"proxy_url"`

	Timeout time.Duration `yaml:"timeout"`

	// Cover used when the provider has no album art for a track.
	PlaceholderCover string `yaml:"placeholder_cover"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
}

type SessionConfig struct {
	// Sessions idle for longer than TTL are dropped by the cleanup worker.
	TTL             time.Duration `yaml:"ttl"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config *Config

	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, err
	}
	if config == nil {
		config = &Config{}
	}

	config.applyEnv()
	config.SetDefaults()

	return config, nil
}

// SetDefaults fills every unset field with its default value.
func (c *Config) SetDefaults() {
	if c.Deezer.BaseURL == "" {
		c.Deezer.BaseURL = DefaultDeezerBaseURL
	}

	if c.Deezer.Timeout <= 0 {
		c.Deezer.Timeout = DefaultRequestTimeout
	}

	if c.Deezer.PlaceholderCover == "" {
		c.Deezer.PlaceholderCover = DefaultPlaceholderCover
	}

	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}

	if c.Session.TTL <= 0 {
		c.Session.TTL = 24 * time.Hour
	}

	if c.Session.CleanupInterval <= 0 {
		c.Session.CleanupInterval = 2 * time.Hour
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv("DEEZER_BASE_URL"); v != "" {
		c.Deezer.BaseURL = v
	}
	if v := os.Getenv("DEEZER_PROXY_URL"); v != "" {
		c.Deezer.ProxyURL = v
	}
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = v
	}
}
