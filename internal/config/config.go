// Package config provides server configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds the HTTP server configuration. LLM provider settings and the
// database path are handled by the llm and store packages.
type Config struct {
	Port      string
	StudentID string // default student attached to new sessions
}

// Load reads configuration from LEARNLOOP_* environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Port:      getEnv("LEARNLOOP_PORT", "8000"),
		StudentID: getEnv("LEARNLOOP_STUDENT_ID", "default_student"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that required fields are set and well-formed.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("LEARNLOOP_PORT cannot be empty")
	}
	if strings.ContainsAny(c.Port, " /") {
		return fmt.Errorf("LEARNLOOP_PORT %q is not a valid port", c.Port)
	}
	if c.StudentID == "" {
		return fmt.Errorf("LEARNLOOP_STUDENT_ID cannot be empty")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
