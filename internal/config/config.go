// Package config loads the pastebutton CLI configuration from YAML or JSON.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/pastebutton/pkg/domain"
	"gopkg.in/yaml.v3"
)

// Config is the root of pastebutton.yaml.
type Config struct {
	LogLevel string  `yaml:"log_level" json:"log_level"`
	Button   Button  `yaml:"button" json:"button"`
	Server   Server  `yaml:"server" json:"server"`
	Session  Session `yaml:"session" json:"session"`
}

// Button holds the widget styling and error mode.
type Button struct {
	Label                string           `yaml:"label" json:"label"`
	TextColor            string           `yaml:"text_color" json:"text_color"`
	BackgroundColor      string           `yaml:"background_color" json:"background_color"`
	HoverBackgroundColor string           `yaml:"hover_background_color" json:"hover_background_color"`
	Key                  string           `yaml:"key" json:"key"`
	Errors               domain.ErrorMode `yaml:"errors" json:"errors"`
}

// Server configures the HTTP bridge.
type Server struct {
	Addr      string `yaml:"addr" json:"addr"`
	Metrics   bool   `yaml:"metrics" json:"metrics"`
	OutputDir string `yaml:"output_dir" json:"output_dir"`

	// AllowedOrigin enables CORS on the bridge. Empty means same-origin only.
	AllowedOrigin string `yaml:"allowed_origin" json:"allowed_origin"`
	// MaxValueBytes bounds a value POST; zero keeps the bridge default.
	MaxValueBytes int64 `yaml:"max_value_bytes" json:"max_value_bytes"`
}

// Session selects where the host session state lives.
type Session struct {
	Backend string        `yaml:"backend" json:"backend"` // "memory" or "redis"
	ID      string        `yaml:"id" json:"id"`
	Redis   Redis         `yaml:"redis" json:"redis"`
	TTL     time.Duration `yaml:"ttl" json:"ttl"`
}

// Redis holds the connection settings for the redis session backend.
type Redis struct {
	Addr     string `yaml:"addr" json:"addr"`
	Password string `yaml:"password" json:"password"`
	DB       int    `yaml:"db" json:"db"`
	Prefix   string `yaml:"prefix" json:"prefix"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		LogLevel: "info",
		Button: Button{
			Label:                "📋 Paste an image",
			TextColor:            domain.DefaultTextColor,
			BackgroundColor:      domain.DefaultBackgroundColor,
			HoverBackgroundColor: domain.DefaultHoverBackgroundColor,
			Key:                  domain.DefaultKey,
			Errors:               domain.DefaultErrorMode,
		},
		Server: Server{
			Addr:      ":8501",
			Metrics:   true,
			OutputDir: "pasted",
		},
		Session: Session{
			Backend: "memory",
			ID:      "default",
			Redis: Redis{
				Addr:   "localhost:6379",
				Prefix: "pastebutton:session:",
			},
		},
	}
}

// Load reads a configuration file (YAML or JSON) on top of Default.
// A missing file is not an error: the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".json" {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	} else {
		// Default to YAML
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the fields the CLI cannot fall back on.
func (c Config) Validate() error {
	switch c.Session.Backend {
	case "memory", "redis":
	default:
		return fmt.Errorf("unknown session backend %q (want memory or redis)", c.Session.Backend)
	}
	switch c.Button.Errors {
	case domain.ErrorsIgnore, domain.ErrorsRaise:
	default:
		return fmt.Errorf("unknown errors mode %q (want ignore or raise)", c.Button.Errors)
	}
	return nil
}

// Style converts the button section into bridge params for pastebutton.WithStyle.
func (b Button) Style() domain.BridgeParams {
	return domain.BridgeParams{
		Label:                b.Label,
		TextColor:            b.TextColor,
		BackgroundColor:      b.BackgroundColor,
		HoverBackgroundColor: b.HoverBackgroundColor,
		Key:                  b.Key,
	}
}
