package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all configuration for the application.
type Config struct {
	Environment    string `envconfig:"GO_ENV" default:"development"`
	Port           string `envconfig:"PORT" default:"8080"`
	DatabaseURL    string `envconfig:"DATABASE_URL"`
	AllowedOrigins string `envconfig:"ALLOWED_ORIGINS" default:"*"`
	StaticDir      string `envconfig:"STATIC_DIR" default:"web"`

	EmailProvider    string `envconfig:"EMAIL_PROVIDER" default:"noop"`
	EmailFromAddress string `envconfig:"EMAIL_FROM_ADDRESS"`
	EmailFromName    string `envconfig:"EMAIL_FROM_NAME"`
	SESRegion        string `envconfig:"SES_REGION"`
	SESAccessKeyID   string `envconfig:"SES_ACCESS_KEY_ID"`
	SESSecretKey     string `envconfig:"SES_SECRET_ACCESS_KEY"`
	SESInsecureTLS   bool   `envconfig:"SES_INSECURE_SKIP_VERIFY" default:"false"`
}

// Load loads configuration from environment variables.
// It attempts to load from a .env file first when not in production;
// in production we rely on system environment variables only.
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
	}

	return &cfg, nil
}

// Origins returns the configured allowed origins as a slice.
// A single "*" entry means any origin is allowed.
func (c *Config) Origins() []string {
	parts := strings.Split(c.AllowedOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}
