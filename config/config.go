package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port           int      `yaml:"port"`
		AllowedOrigins []string `yaml:"allowedOrigins"`
	} `yaml:"server"`

	Gemini struct {
		// Model pins a single model and skips model discovery when set.
		Model             string `yaml:"model"`
		PreferredModel    string `yaml:"preferredModel"`
		FallbackModel     string `yaml:"fallbackModel"`
		RequestsPerMinute int    `yaml:"requestsPerMinute"` // 0 disables the limiter
	} `yaml:"gemini"`

	Session struct {
		CookieName  string `yaml:"cookieName"`
		IdleTimeout int    `yaml:"idleTimeout"` // minutes, 0 keeps sessions until restart
	} `yaml:"session"`
}

// Default returns a Config with every field set to its default value.
func Default() *Config {
	var cfg Config
	cfg.Server.Port = 8080
	cfg.Server.AllowedOrigins = []string{"http://localhost:5173"}
	cfg.Gemini.PreferredModel = "gemini-pro"
	cfg.Gemini.FallbackModel = "models/gemini-1.0-pro"
	cfg.Session.CookieName = "advice_session"
	cfg.Session.IdleTimeout = 120
	return &cfg
}

// LoadConfig reads the configuration file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Keys absent from the file keep their defaults; explicit zeros are kept.
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.Gemini.RequestsPerMinute < 0 {
		return fmt.Errorf("gemini.requestsPerMinute must not be negative")
	}
	if len(c.Server.AllowedOrigins) == 0 {
		return fmt.Errorf("server.allowedOrigins must list at least one origin")
	}
	if c.Gemini.Model == "" && c.Gemini.FallbackModel == "" {
		return fmt.Errorf("gemini.fallbackModel is required when gemini.model is empty")
	}
	if c.Session.CookieName == "" {
		return fmt.Errorf("session.cookieName must not be empty")
	}
	if c.Session.IdleTimeout < 0 {
		return fmt.Errorf("session.idleTimeout must not be negative")
	}
	return nil
}
