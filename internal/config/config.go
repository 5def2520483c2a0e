package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/philipparndt/govec/pkg/analysis"
	"github.com/philipparndt/govec/pkg/geometry"
	"gopkg.in/yaml.v3"
)

// Config holds the settings shared by all commands
type Config struct {
	Tolerance     float64       `yaml:"tolerance"`
	Precision     int           `yaml:"precision"`
	LogLevel      string        `yaml:"log_level"`
	WatchDebounce time.Duration `yaml:"watch_debounce"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Tolerance:     geometry.DefaultTolerance,
		Precision:     analysis.DefaultPrecision,
		LogLevel:      "info",
		WatchDebounce: 200 * time.Millisecond,
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/govec/config.yaml (or the platform equivalent)
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "govec", "config.yaml")
}

// Load reads path on top of the defaults. When explicit is false a missing file is
// not an error.
func Load(path string, explicit bool) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the values are usable
func (c Config) Validate() error {
	if c.Tolerance < 0 {
		return fmt.Errorf("tolerance must not be negative, got %g", c.Tolerance)
	}
	if c.Precision < 0 || c.Precision > 17 {
		return fmt.Errorf("precision must be between 0 and 17, got %d", c.Precision)
	}
	if c.WatchDebounce < 0 {
		return fmt.Errorf("watch_debounce must not be negative, got %s", c.WatchDebounce)
	}
	return nil
}
