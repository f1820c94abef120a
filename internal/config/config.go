package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/grayfold3/flashview/internal/flashstation"
)

// Config captures the endpoint and transport settings flashview uses.
type Config struct {
	PortalURL      string
	BuildsURL      string
	UserAgent      string
	TimeoutSeconds int
}

const (
	defaultConfigPath     = "~/.config/flashview/config.toml"
	defaultTimeoutSeconds = 15
)

// Load locates and parses the flashview config, falling back to defaults when
// missing. Environment variables (FLASHVIEW_*) override file values; a .env
// file in the working directory is honored.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := defaults()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg.applyEnv()
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		PortalURL      string `toml:"portal_url"`
		BuildsURL      string `toml:"builds_url"`
		UserAgent      string `toml:"user_agent"`
		TimeoutSeconds int    `toml:"timeout_seconds"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.PortalURL); v != "" {
		cfg.PortalURL = v
	}
	if v := strings.TrimSpace(raw.BuildsURL); v != "" {
		cfg.BuildsURL = v
	}
	if v := strings.TrimSpace(raw.UserAgent); v != "" {
		cfg.UserAgent = v
	}
	if raw.TimeoutSeconds > 0 {
		cfg.TimeoutSeconds = raw.TimeoutSeconds
	}

	cfg.applyEnv()
	return cfg, nil
}

// Timeout returns the HTTP timeout as a duration.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return defaultTimeoutSeconds * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func defaults() Config {
	return Config{
		PortalURL:      flashstation.DefaultPortalURL,
		BuildsURL:      flashstation.DefaultBuildsURL,
		UserAgent:      flashstation.DefaultUserAgent,
		TimeoutSeconds: defaultTimeoutSeconds,
	}
}

func (c *Config) applyEnv() {
	// A missing .env is fine; explicit environment still applies.
	_ = godotenv.Load()

	if v := strings.TrimSpace(os.Getenv("FLASHVIEW_PORTAL_URL")); v != "" {
		c.PortalURL = v
	}
	if v := strings.TrimSpace(os.Getenv("FLASHVIEW_BUILDS_URL")); v != "" {
		c.BuildsURL = v
	}
	if v := strings.TrimSpace(os.Getenv("FLASHVIEW_USER_AGENT")); v != "" {
		c.UserAgent = v
	}
	if v := strings.TrimSpace(os.Getenv("FLASHVIEW_TIMEOUT_SECONDS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.TimeoutSeconds = n
		}
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
