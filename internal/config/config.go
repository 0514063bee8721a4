package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all environment-driven settings.
type Config struct {
	Addr    string `env:"ADDR" envDefault:":8080"`
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:8080"`

	ContentAPIURL  string        `env:"CONTENT_API_URL"`
	ContentAPIKey  string        `env:"CONTENT_API_KEY"`
	ContentModel   string        `env:"CONTENT_MODEL" envDefault:"gpt-4o-mini"`
	ContentTimeout time.Duration `env:"CONTENT_TIMEOUT" envDefault:"20s"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogJSON  bool   `env:"LOG_JSON" envDefault:"false"`
}

// Load parses the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
