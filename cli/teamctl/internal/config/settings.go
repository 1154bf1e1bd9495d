package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// Settings are host-level knobs, layered as defaults < config file < env.
// The optional file lives at ~/.config/teamctl/config.toml.
type Settings struct {
	Root     string `env:"DEVTEAM_ROOT" toml:"root"`
	Env      string `env:"DEVTEAM_ENV" toml:"env"`
	Debug    bool   `env:"DEVTEAM_DEBUG" toml:"debug"`
	LogLevel string `env:"DEVTEAM_LOG_LEVEL" toml:"log_level"`
}

// SettingsPath returns the host config file path, honoring DEVTEAM_CONFIG.
func SettingsPath() string {
	if p := strings.TrimSpace(os.Getenv("DEVTEAM_CONFIG")); p != "" {
		return p
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "teamctl", "config.toml")
	}
	return ""
}

// LoadSettings reads the host config file (if present) and applies
// environment overrides on top.
func LoadSettings() (Settings, error) {
	s := Settings{Env: "dev", LogLevel: "info"}
	if path := SettingsPath(); path != "" {
		if _, err := toml.DecodeFile(path, &s); err != nil && !os.IsNotExist(err) {
			return s, fmt.Errorf("load %s: %w", path, err)
		}
	}
	if err := env.Parse(&s); err != nil {
		return s, fmt.Errorf("parse env: %w", err)
	}
	return s, nil
}
