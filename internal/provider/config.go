package provider

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config carries the provider settings.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
}

// LoadConfig reads configuration from the environment, honoring a local .env
// file when present. A missing .env file is fine; other load errors surface.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return Config{}, fmt.Errorf("failed to load .env: %w", err)
		}
	}

	cfg := Config{
		APIKey:  os.Getenv("OPENAI_API_KEY"),
		Model:   os.Getenv("OPENAI_MODEL"),
		BaseURL: os.Getenv("OPENAI_BASE_URL"),
	}
	if cfg.Model == "" {
		// A widely-supported, tool-capable default.
		cfg.Model = "gpt-4o"
	}
	return cfg, nil
}
