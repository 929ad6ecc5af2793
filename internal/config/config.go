// Package config provides configuration loading and validation for the
// matching service and CLI.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the service configuration. Values come from environment
// variables (a .env file is loaded by the entry point before this runs).
type Config struct {
	Port             int           // HTTP listen port
	DatabaseURL      string        // PostgreSQL connection URL; empty disables persistence
	GeminiAPIKey     string        // Gemini API key; empty selects the hashing fallback embedder
	EmbeddingModel   string        // Gemini embedding model; empty selects the default
	DictionaryPath   string        // skill dictionary JSON file; empty selects the built-in list
	RetrievalTimeout time.Duration // budget for the semantic retrieval call
}

// FromEnv builds a Config from environment variables.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:             8080,
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		EmbeddingModel:   os.Getenv("EMBEDDING_MODEL"),
		DictionaryPath:   os.Getenv("SKILL_DICTIONARY_PATH"),
		RetrievalTimeout: 3 * time.Second,
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %v", err)
		}
		cfg.Port = port
	}

	if msStr := os.Getenv("RETRIEVAL_TIMEOUT_MS"); msStr != "" {
		ms, err := strconv.Atoi(msStr)
		if err != nil {
			return nil, fmt.Errorf("invalid RETRIEVAL_TIMEOUT_MS: %v", err)
		}
		cfg.RetrievalTimeout = time.Duration(ms) * time.Millisecond
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config error: port %d out of range", c.Port)
	}
	if c.RetrievalTimeout <= 0 {
		return fmt.Errorf("config error: retrieval timeout must be positive, got %s", c.RetrievalTimeout)
	}
	if c.DictionaryPath != "" {
		if _, err := os.Stat(c.DictionaryPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: skill dictionary not found: %s", c.DictionaryPath)
		}
	}
	return nil
}
