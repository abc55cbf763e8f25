package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Registry RegistryConfig
	Dock     DockConfig
	Watcher  WatcherConfig
	Logging  LoggingConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// RegistryConfig points at the package-manifest directory.
type RegistryConfig struct {
	Path string
}

// DockConfig sizes the dock.
type DockConfig struct {
	Slots int
}

// WatcherConfig tunes the registry watcher.
type WatcherConfig struct {
	DebounceMS int `mapstructure:"debounce_ms"`
}

// LoggingConfig selects verbosity.
type LoggingConfig struct {
	Level string
}

// Load reads configuration from file and env. Env var overrides use prefix
// LAUNCHKIT_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "launchkit", "launchkit.db"))
	v.SetDefault("registry.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "launchkit", "registry"))
	v.SetDefault("dock.slots", 4)
	v.SetDefault("watcher.debounce_ms", 500)
	v.SetDefault("logging.level", "info")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("LAUNCHKIT_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "launchkit"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("LAUNCHKIT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if
// needed.
func Save(cfg Config) error {
	path := os.Getenv("LAUNCHKIT_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "launchkit", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("registry.path", cfg.Registry.Path)
	v.Set("dock.slots", cfg.Dock.Slots)
	v.Set("watcher.debounce_ms", cfg.Watcher.DebounceMS)
	v.Set("logging.level", cfg.Logging.Level)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
