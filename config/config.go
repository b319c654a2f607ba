// Package config provides configuration for the advisor server.
package config

import (
	"time"

	"github.com/caarlos0/env/v6"
)

// Config holds the server configuration, loaded from environment variables.
type Config struct {
	// Server settings
	HTTPPort int `env:"HTTP_PORT" envDefault:"8080"`

	// Generation backend
	GeminiAPIKey    string        `env:"GEMINI_API_KEY"`
	GeminiBaseURL   string        `env:"GEMINI_BASE_URL"`
	Model           string        `env:"MODEL" envDefault:"gemini-3-pro-preview"`
	GenerateTimeout time.Duration `env:"GENERATE_TIMEOUT" envDefault:"60s"`

	// Profile source
	ProfilePath string `env:"PROFILE_XLSX_PATH" envDefault:"data/profiles.xlsx"`

	// Session store. Empty DSN keeps sessions in memory for the process
	// lifetime; a sqlite DSN makes them survive restarts.
	SessionDSN      string `env:"SESSION_DSN"`
	MaxSessionTurns int    `env:"MAX_SESSION_TURNS" envDefault:"200"`

	// Prompts. When set, the file content replaces the built-in persona text.
	PersonaPromptPath string `env:"PERSONA_PROMPT_PATH"`

	// Logging
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load parses configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
