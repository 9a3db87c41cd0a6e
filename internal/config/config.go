// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for
// mascot-tui.
//
// Configuration is TOML with sensible defaults and environment variable
// overrides. File location:
//   - ~/.mascot/config.toml
//   - Built-in defaults when no file exists
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/mascot-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete mascot-tui configuration.
type Config struct {
	Version string `toml:"version"`

	// Character (cursor tracking) configuration
	Character CharacterConfig `toml:"character"`

	// Animation (scripted sequence) configuration
	Animation AnimationConfig `toml:"animation"`

	// UI configuration
	UI UIConfig `toml:"ui"`
}

// CharacterConfig controls the cursor-tracking mascot.
type CharacterConfig struct {
	// BucketScheme selects direction classification: "five" (default) or
	// "three". Pick one and keep it; the two schemes bucket differently
	// on purpose.
	BucketScheme string `toml:"bucket_scheme"`
	// AssetDir is the directory holding sprite art overrides. Sprites are
	// resolved as <asset_dir>/character/<direction>.png; built-in ASCII
	// art is used when a file is absent.
	AssetDir string `toml:"asset_dir"`
	// WatchAssets enables live reload of sprite art overrides.
	WatchAssets bool `toml:"watch_assets"`
}

// AnimationConfig holds the scripted sequence timings in milliseconds.
type AnimationConfig struct {
	TypeSpeedMs   int `toml:"type_speed_ms"`
	DeleteSpeedMs int `toml:"delete_speed_ms"`
	HoldMs        int `toml:"hold_ms"`
	SettleMs      int `toml:"settle_ms"`
	ExitMs        int `toml:"exit_ms"`
	ScrollMs      int `toml:"scroll_ms"`
}

// UIConfig contains UI configuration.
type UIConfig struct {
	// Theme is the UI theme: "dark", "light", "auto"
	Theme string `toml:"theme"`
	// SidebarOpen controls whether the sidebar starts expanded.
	SidebarOpen bool `toml:"sidebar_open"`
	// CompactMode uses a more compact layout
	CompactMode bool `toml:"compact_mode"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns a Config with the demo's canonical values.
func Default() *Config {
	return &Config{
		Version: "1.0.0",
		Character: CharacterConfig{
			BucketScheme: "five",
			AssetDir:     "assets",
			WatchAssets:  true,
		},
		Animation: AnimationConfig{
			TypeSpeedMs:   50,
			DeleteSpeedMs: 30,
			HoldMs:        3000,
			SettleMs:      500,
			ExitMs:        1000,
			ScrollMs:      1500,
		},
		UI: UIConfig{
			Theme:       "auto",
			SidebarOpen: true,
			CompactMode: false,
		},
	}
}

// TypeSpeed returns the typing delay as a duration.
func (a AnimationConfig) TypeSpeed() time.Duration {
	return time.Duration(a.TypeSpeedMs) * time.Millisecond
}

// DeleteSpeed returns the deleting delay as a duration.
func (a AnimationConfig) DeleteSpeed() time.Duration {
	return time.Duration(a.DeleteSpeedMs) * time.Millisecond
}

// Hold returns the per-stanza hold as a duration.
func (a AnimationConfig) Hold() time.Duration {
	return time.Duration(a.HoldMs) * time.Millisecond
}

// Settle returns the pre-exit settle delay as a duration.
func (a AnimationConfig) Settle() time.Duration {
	return time.Duration(a.SettleMs) * time.Millisecond
}

// Exit returns the exit transition duration.
func (a AnimationConfig) Exit() time.Duration {
	return time.Duration(a.ExitMs) * time.Millisecond
}

// Scroll returns the smooth-scroll duration.
func (a AnimationConfig) Scroll() time.Duration {
	return time.Duration(a.ScrollMs) * time.Millisecond
}

// =============================================================================
// PATHS
// =============================================================================

// ConfigDir returns the mascot configuration directory (~/.mascot).
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine home directory: %w", err)
	}
	return filepath.Join(home, ".mascot"), nil
}

// EnsureConfigDir creates the configuration directory if missing.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0700)
}

// ConfigPath returns the TOML config file path.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// =============================================================================
// LOAD / SAVE
// =============================================================================

// Load reads the configuration: built-in defaults, overlaid with the
// config file if present, overlaid with environment overrides. A missing
// file is not an error.
func Load() (*Config, error) {
	cfg := Default()

	path, err := ConfigPath()
	if err == nil {
		if err := LoadFromPath(cfg, path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromPath overlays cfg with the TOML file at path.
func LoadFromPath(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

// Save writes cfg to the config file atomically.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveToPath(cfg, path)
}

// SaveToPath writes cfg as TOML to an explicit path atomically.
func SaveToPath(cfg *Config, path string) error {
	var sb strings.Builder
	if err := toml.NewEncoder(&sb).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return util.AtomicWriteFile(path, []byte(sb.String()), 0600)
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies MASCOT_* environment variables on top of the
// loaded configuration.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("MASCOT_THEME"); v != "" {
		c.UI.Theme = v
	}
	if v := os.Getenv("MASCOT_BUCKET_SCHEME"); v != "" {
		c.Character.BucketScheme = v
	}
	if v := os.Getenv("MASCOT_ASSET_DIR"); v != "" {
		c.Character.AssetDir = v
	}
	if v := os.Getenv("MASCOT_WATCH_ASSETS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Character.WatchAssets = b
		}
	}
	if v := os.Getenv("MASCOT_TYPE_SPEED_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Animation.TypeSpeedMs = n
		}
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError describes one invalid configuration field.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	switch c.Character.BucketScheme {
	case "three", "five":
	default:
		return ValidationError{
			Field:   "character.bucket_scheme",
			Message: fmt.Sprintf("must be %q or %q, got %q", "three", "five", c.Character.BucketScheme),
		}
	}

	switch c.UI.Theme {
	case "dark", "light", "auto":
	default:
		return ValidationError{
			Field:   "ui.theme",
			Message: fmt.Sprintf("must be dark, light, or auto, got %q", c.UI.Theme),
		}
	}

	timings := map[string]int{
		"animation.type_speed_ms":   c.Animation.TypeSpeedMs,
		"animation.delete_speed_ms": c.Animation.DeleteSpeedMs,
		"animation.hold_ms":         c.Animation.HoldMs,
		"animation.settle_ms":       c.Animation.SettleMs,
		"animation.exit_ms":         c.Animation.ExitMs,
		"animation.scroll_ms":       c.Animation.ScrollMs,
	}
	for field, v := range timings {
		if v <= 0 {
			return ValidationError{Field: field, Message: "must be positive"}
		}
	}
	return nil
}
