package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the demo.
type Config struct {
	LogFormat string     // LOG_FORMAT: text or json
	LogLevel  slog.Level // LOG_LEVEL: debug, info, warn, error
	Verify    bool       // MESSENGER_VERIFY
	Start     int        // NUMBERLOG_START
}

// Load reads configuration from the environment after loading the given
// .env files (".env" when none are given). Missing files are skipped; values
// already set, by the environment or an earlier file, win.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("failed to load env file %s: %w", file, err)
			}
			slog.Debug("No env file found, skipping", "file", file)
		}
	}

	cfg := &Config{
		LogFormat: "text",
		LogLevel:  slog.LevelInfo,
		Verify:    true,
	}

	if v := os.Getenv("LOG_FORMAT"); v != "" {
		if v != "text" && v != "json" {
			return nil, fmt.Errorf("LOG_FORMAT must be text or json, got %q", v)
		}
		cfg.LogFormat = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(strings.ToUpper(v))); err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
		}
	}
	if v := os.Getenv("MESSENGER_VERIFY"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid MESSENGER_VERIFY: %w", err)
		}
		cfg.Verify = b
	}
	if v := os.Getenv("NUMBERLOG_START"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid NUMBERLOG_START: %w", err)
		}
		cfg.Start = n
	}

	return cfg, nil
}
