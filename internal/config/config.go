// Package config loads and saves the finplan TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/theirongolddev/finplan/internal/numfmt"
)

// DefaultPlan is the plan used when none is configured or given.
const DefaultPlan = "default"

// Config holds all finplan configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Formatting FormattingConfig `toml:"formatting"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	Plan     string `toml:"plan"`
	Database string `toml:"database,omitempty"`
}

// FormattingConfig controls how amounts are shown. Separators stay pt-BR.
type FormattingConfig struct {
	CurrencyPrefix      string `toml:"currency_prefix"`
	CurrencyPlaceholder string `toml:"currency_placeholder,omitempty"`
	PercentPlaceholder  string `toml:"percent_placeholder,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			Plan: DefaultPlan,
		},
		Formatting: FormattingConfig{
			CurrencyPrefix:      numfmt.BRL.CurrencyPrefix,
			CurrencyPlaceholder: "R$ 0,00",
			PercentPlaceholder:  "0,00%",
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "finplan")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "finplan")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// StateDir returns the XDG state directory for the database and logs.
func StateDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "finplan")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "finplan")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.General.Plan == "" {
		cfg.General.Plan = DefaultPlan
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// DatabasePath returns the database path from env var, config or the
// default location, in that order.
func DatabasePath(cfg Config) string {
	if p := os.Getenv("FINPLAN_DB"); p != "" {
		return p
	}
	if cfg.General.Database != "" {
		return cfg.General.Database
	}
	return filepath.Join(StateDir(), "plans.db")
}

// Policy returns the formatting policy described by cfg.
func (c Config) Policy() numfmt.Policy {
	return numfmt.BRL.WithPrefix(c.Formatting.CurrencyPrefix)
}
