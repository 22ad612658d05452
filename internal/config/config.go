// Package config loads tracker settings from an optional TOML file with
// BOOKTRACKER_* environment overrides applied on top.
package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"github.com/ugur10/book-tracker/internal/books"
	"github.com/ugur10/book-tracker/internal/command"
	"github.com/ugur10/book-tracker/internal/logging"
)

const EnvPrefix = "BOOKTRACKER_"

type Config struct {
	LogLevel   string       `toml:"log_level"`
	LogFormat  string       `toml:"log_format"`
	SeedSample bool         `toml:"seed_sample"`
	Role       string       `toml:"role"`
	Books      []books.Book `toml:"books"`
}

// overrides holds the settings that may come from the environment. Fields are
// pre-filled from the file so unset variables keep the file's value.
type overrides struct {
	LogLevel   string `env:"LOG_LEVEL"`
	LogFormat  string `env:"LOG_FORMAT"`
	SeedSample bool   `env:"SEED_SAMPLE"`
	Role       string `env:"ROLE"`
}

func Default() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: logging.FormatConsole,
	}
}

// Load reads path (skipped when empty), applies environment overrides and
// validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	ov := overrides{
		LogLevel:   cfg.LogLevel,
		LogFormat:  cfg.LogFormat,
		SeedSample: cfg.SeedSample,
		Role:       cfg.Role,
	}
	if err := env.ParseWithOptions(&ov, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	cfg.LogLevel = ov.LogLevel
	cfg.LogFormat = ov.LogFormat
	cfg.SeedSample = ov.SeedSample
	cfg.Role = ov.Role
	return nil
}

func Validate(cfg Config) error {
	if _, ok := logging.ParseLevel(cfg.LogLevel); !ok {
		return fmt.Errorf("config invalid log_level %q", cfg.LogLevel)
	}
	if !logging.ValidFormat(cfg.LogFormat) {
		return fmt.Errorf("config invalid log_format %q", cfg.LogFormat)
	}
	if strings.TrimSpace(cfg.Role) != "" {
		if _, err := command.ParseRole(cfg.Role); err != nil {
			return fmt.Errorf("config invalid role: %w", err)
		}
	}
	for i, b := range cfg.Books {
		if strings.TrimSpace(b.Title) == "" {
			return fmt.Errorf("books[%d] invalid: title is required", i)
		}
		if strings.TrimSpace(b.Author) == "" {
			return fmt.Errorf("books[%d] invalid: author is required", i)
		}
	}
	return nil
}

// InitialBooks returns the catalog a fresh run starts with: configured books
// first, then the sample set when enabled.
func (c Config) InitialBooks() []books.Book {
	initial := make([]books.Book, 0, len(c.Books))
	for _, b := range c.Books {
		initial = append(initial, books.Book{
			Title:  strings.TrimSpace(b.Title),
			Author: strings.TrimSpace(b.Author),
			Issued: b.Issued,
		})
	}
	if c.SeedSample {
		initial = append(initial, books.SeedData()...)
	}
	return initial
}
