// Package config loads service configuration from the environment. Absent
// upstream credentials are a supported steady state, not an error; the
// service then runs in demo mode.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Addr           string `validate:"required"`
	OPSKey         string
	OPSSecret      string
	OPSBaseURL     string `validate:"omitempty,url"`
	AnthropicKey   string
	TranslateModel string
	TranslateLang  string `validate:"omitempty,bcp47_language_tag"`
}

// Load reads a .env file when present, then the process environment, and
// validates the result.
func Load() (Config, error) {
	// A missing .env is the normal case outside local development.
	_ = godotenv.Load()

	cfg := Config{
		Addr:           getEnv("ADDR", ":8000"),
		OPSKey:         strings.TrimSpace(os.Getenv("OPS_KEY")),
		OPSSecret:      strings.TrimSpace(os.Getenv("OPS_SECRET")),
		OPSBaseURL:     strings.TrimSpace(os.Getenv("OPS_BASE_URL")),
		AnthropicKey:   strings.TrimSpace(os.Getenv("ANTHROPIC_API_KEY")),
		TranslateModel: strings.TrimSpace(os.Getenv("TRANSLATE_MODEL")),
		TranslateLang:  strings.TrimSpace(os.Getenv("TRANSLATE_TARGET_LANG")),
	}
	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Configured reports whether both upstream credentials are present; a
// partial pair counts as absent.
func (c Config) Configured() bool {
	return c.OPSKey != "" && c.OPSSecret != ""
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
