// Copyright © 2026 Groups.io, Inc.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/hjson/hjson-go/v4"

	"github.com/wingedpig/irclog/internal/style"
)

// Loader handles configuration file loading.
type Loader struct{}

// NewLoader creates a new config loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and parses the configuration from the given path.
func (l *Loader) Load(ctx context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	// Parse HJSON to intermediate map
	var raw map[string]interface{}
	if err := hjson.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse hjson: %w", err)
	}

	// Convert to JSON and unmarshal to struct (for type safety)
	jsonData, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("convert to json: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(jsonData, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}

// LoadWithDefaults loads config with default values applied and
// validates the result.
func (l *Loader) LoadWithDefaults(ctx context.Context, path string) (*Config, error) {
	cfg, err := l.Load(ctx, path)
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)
	if err := NewValidator().Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// FindConfig locates the configuration file: $IRCLOG_CONFIG if set,
// otherwise irclog.hjson or irclog.json in the current directory. An
// empty path with a nil error means no config file; defaults apply.
func (l *Loader) FindConfig() (string, error) {
	if path := os.Getenv("IRCLOG_CONFIG"); path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("IRCLOG_CONFIG: %w", err)
		}
		return path, nil
	}

	candidates := []string{
		"irclog.hjson",
		"irclog.json",
	}

	for _, name := range candidates {
		path := filepath.Join(".", name)
		if _, err := os.Stat(path); err == nil {
			abs, err := filepath.Abs(path)
			if err != nil {
				return path, nil
			}
			return abs, nil
		}
	}

	return "", nil
}

// Resolve loads the config file at path, locating one via FindConfig
// when path is empty. No config file at all yields the defaults.
func Resolve(ctx context.Context, path string) (*Config, error) {
	loader := NewLoader()
	if path == "" {
		found, err := loader.FindConfig()
		if err != nil {
			return nil, err
		}
		path = found
	}
	if path == "" {
		return Default(), nil
	}
	log.Printf("Using config: %s", path)
	return loader.LoadWithDefaults(ctx, path)
}

// applyDefaults sets default values for missing config fields.
func applyDefaults(cfg *Config) {
	if cfg.Title == "" {
		cfg.Title = "IRC logs"
	}
	if cfg.Style == "" {
		cfg.Style = style.DefaultStyle
	}
	if cfg.Pattern == "" {
		cfg.Pattern = "*.log"
	}

	// Search defaults
	if cfg.Search.Limit == 0 {
		cfg.Search.Limit = 100
	}

	// Server defaults
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}

	// Watch defaults
	if cfg.Watch.Debounce == "" {
		cfg.Watch.Debounce = "500ms"
	}
}
