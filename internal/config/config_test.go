package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("LAUNCHKIT_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 4, cfg.Dock.Slots)
	require.Equal(t, 500, cfg.Watcher.DebounceMS)
	require.Equal(t, "info", cfg.Logging.Level)
	require.NotEmpty(t, cfg.Database.Path)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `[database]
path = "/tmp/lk/apps.db"

[dock]
slots = 6

[logging]
level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("LAUNCHKIT_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "/tmp/lk/apps.db", cfg.Database.Path)
	require.Equal(t, 6, cfg.Dock.Slots)
	require.Equal(t, "debug", cfg.Logging.Level)
	require.Equal(t, 500, cfg.Watcher.DebounceMS) // default survives partial file
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("LAUNCHKIT_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
	t.Setenv("LAUNCHKIT_DOCK_SLOTS", "8")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 8, cfg.Dock.Slots)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("LAUNCHKIT_CONFIG", path)

	want := Config{
		Database: DatabaseConfig{Path: "/tmp/lk/apps.db"},
		Registry: RegistryConfig{Path: "/tmp/lk/registry"},
		Dock:     DockConfig{Slots: 5},
		Watcher:  WatcherConfig{DebounceMS: 250},
		Logging:  LoggingConfig{Level: "warn"},
	}
	require.NoError(t, Save(want))

	got, err := Load()
	require.NoError(t, err)
	require.Equal(t, want, got)
}
