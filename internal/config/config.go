// Package config provides configuration management for emopick.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config represents the emopick configuration.
type Config struct {
	Picker  PickerConfig  `yaml:"picker"`
	TUI     TUIConfig     `yaml:"tui"`
	Recents RecentsConfig `yaml:"recents"`
}

// PickerConfig holds core picker behavior plus presentation hints the
// host layer may honor. Only dismiss_after_choosing affects behavior;
// the rest is passed through to the renderer.
type PickerConfig struct {
	DismissAfterChoosing bool   `yaml:"dismiss_after_choosing"` // Close after a pick
	CatalogPath          string `yaml:"catalog_path"`           // Override bundled catalog (empty = embedded)
	RuntimeVersion       string `yaml:"runtime_version"`        // Override emoji version gate (empty = newest)
	HeightHint           int    `yaml:"height_hint"`            // Preferred popover height in rows
	ArrowDirectionHint   string `yaml:"arrow_direction_hint"`   // up, down, left, right, auto
	InsetHint            int    `yaml:"inset_hint"`             // Content inset in cells
	TintHint             string `yaml:"tint_hint"`              // Accent color (terminal color or hex)
	HapticStyleHint      string `yaml:"haptic_style_hint"`      // none, light, medium, heavy
}

// TUIConfig holds terminal renderer settings.
type TUIConfig struct {
	Columns     int  `yaml:"columns"`      // Grid columns, clamped to [4, 16]
	ShowHeaders bool `yaml:"show_headers"` // Render category header rows
}

// RecentsConfig holds the recent-picks store settings.
type RecentsConfig struct {
	Enabled    bool   `yaml:"enabled"`     // Record picks to the store
	DBPath     string `yaml:"db_path"`     // SQLite path (empty = default data dir)
	MaxEntries int    `yaml:"max_entries"` // Rows kept before pruning
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Picker: PickerConfig{
			DismissAfterChoosing: true,
			ArrowDirectionHint:   "auto",
			HapticStyleHint:      "none",
		},
		TUI: TUIConfig{
			Columns:     8,
			ShowHeaders: true,
		},
		Recents: RecentsConfig{
			Enabled:    true,
			MaxEntries: 500,
		},
	}
}

// Load loads configuration from the default path.
func Load() (*Config, error) {
	paths := DefaultPaths()
	return LoadFromFile(paths.ConfigFile())
}

// LoadFromFile loads configuration from the specified file.
// If the file doesn't exist, returns default configuration.
// Environment variable overrides are applied after file loading.
func LoadFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.ApplyEnvOverrides()
			if err := cfg.Validate(); err != nil {
				return nil, fmt.Errorf("invalid config: %w", err)
			}
			return cfg, nil // Return defaults if file doesn't exist
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.ApplyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves the configuration to the specified file.
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration. Grid columns are clamped
// rather than rejected; hint enums must be spelled correctly.
func (c *Config) Validate() error {
	if !isValidArrowDirection(c.Picker.ArrowDirectionHint) {
		return fmt.Errorf("picker.arrow_direction_hint must be up, down, left, right, or auto (got: %s)", c.Picker.ArrowDirectionHint)
	}

	if !isValidHapticStyle(c.Picker.HapticStyleHint) {
		return fmt.Errorf("picker.haptic_style_hint must be none, light, medium, or heavy (got: %s)", c.Picker.HapticStyleHint)
	}

	if c.Picker.HeightHint < 0 {
		return errors.New("picker.height_hint must be >= 0")
	}

	if c.Picker.InsetHint < 0 {
		return errors.New("picker.inset_hint must be >= 0")
	}

	// Clamp grid columns to [4, 16]
	if c.TUI.Columns < 4 {
		c.TUI.Columns = 4
	}
	if c.TUI.Columns > 16 {
		c.TUI.Columns = 16
	}

	if c.Recents.MaxEntries < 0 {
		return errors.New("recents.max_entries must be >= 0")
	}

	return nil
}

// ApplyEnvOverrides applies environment variable overrides to the
// config. Environment variables override config file values.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("EMOPICK_CATALOG"); v != "" {
		c.Picker.CatalogPath = v
	}
	if v := os.Getenv("EMOPICK_NO_RECENTS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil && b {
			c.Recents.Enabled = false
		}
	}
	if v := os.Getenv("EMOPICK_COLUMNS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.TUI.Columns = n
		}
	}
}

func isValidArrowDirection(dir string) bool {
	switch dir {
	case "up", "down", "left", "right", "auto":
		return true
	default:
		return false
	}
}

func isValidHapticStyle(style string) bool {
	switch style {
	case "none", "light", "medium", "heavy":
		return true
	default:
		return false
	}
}
