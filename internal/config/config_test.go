// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "five", cfg.Character.BucketScheme)
	assert.Equal(t, 50, cfg.Animation.TypeSpeedMs)
	assert.Equal(t, 30, cfg.Animation.DeleteSpeedMs)
	assert.Equal(t, 3000, cfg.Animation.HoldMs)
	assert.True(t, cfg.UI.SidebarOpen)
	assert.NoError(t, cfg.Validate())
}

func TestAnimationDurations(t *testing.T) {
	a := Default().Animation

	assert.Equal(t, 50*time.Millisecond, a.TypeSpeed())
	assert.Equal(t, 30*time.Millisecond, a.DeleteSpeed())
	assert.Equal(t, 3*time.Second, a.Hold())
	assert.Equal(t, 500*time.Millisecond, a.Settle())
	assert.Equal(t, time.Second, a.Exit())
	assert.Equal(t, 1500*time.Millisecond, a.Scroll())
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := Default()
	cfg.Character.BucketScheme = "three"
	cfg.Animation.HoldMs = 1234
	require.NoError(t, SaveToPath(cfg, path))

	loaded := Default()
	require.NoError(t, LoadFromPath(loaded, path))
	assert.Equal(t, "three", loaded.Character.BucketScheme)
	assert.Equal(t, 1234, loaded.Animation.HoldMs)
}

func TestLoadFromPath_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui]\ntheme = \"dark\"\n"), 0644))

	cfg := Default()
	require.NoError(t, LoadFromPath(cfg, path))

	assert.Equal(t, "dark", cfg.UI.Theme)
	// Untouched sections keep their defaults.
	assert.Equal(t, "five", cfg.Character.BucketScheme)
	assert.Equal(t, 3000, cfg.Animation.HoldMs)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"Defaults", func(c *Config) {}, false},
		{"ThreeBucket", func(c *Config) { c.Character.BucketScheme = "three" }, false},
		{"BadScheme", func(c *Config) { c.Character.BucketScheme = "seven" }, true},
		{"BadTheme", func(c *Config) { c.UI.Theme = "sepia" }, true},
		{"ZeroTypeSpeed", func(c *Config) { c.Animation.TypeSpeedMs = 0 }, true},
		{"NegativeHold", func(c *Config) { c.Animation.HoldMs = -1 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("MASCOT_THEME", "light")
	t.Setenv("MASCOT_BUCKET_SCHEME", "three")
	t.Setenv("MASCOT_TYPE_SPEED_MS", "10")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	assert.Equal(t, "light", cfg.UI.Theme)
	assert.Equal(t, "three", cfg.Character.BucketScheme)
	assert.Equal(t, 10, cfg.Animation.TypeSpeedMs)
}
