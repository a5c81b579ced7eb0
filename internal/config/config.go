// Package config provides layered configuration for lineedit.
//
// Configuration is assembled from three layers, later layers overriding
// earlier ones:
//
//  1. Built-in defaults (Default)
//  2. A configuration file, TOML or YAML by extension (missing is fine)
//  3. LINEEDIT_* environment variables
//
// Command-line flags are applied by the caller on top of the result.
//
// Example config.toml:
//
//	[buffer]
//	capacity = 25
//
//	[history]
//	limit = 3
//
//	[logging]
//	level = "info"
//	file = ""
//
//	[display]
//	truncate = true
//	width = 0
//
//	[script]
//	callLimit = 10000
//	timeout = "5s"
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/lineedit/internal/config/loader"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "LINEEDIT_"

// Config is the complete lineedit configuration.
type Config struct {
	Buffer  BufferConfig  `toml:"buffer"`
	History HistoryConfig `toml:"history"`
	Logging LoggingConfig `toml:"logging"`
	Display DisplayConfig `toml:"display"`
	Script  ScriptConfig  `toml:"script"`
}

// BufferConfig configures the line buffer.
type BufferConfig struct {
	// Capacity is the maximum number of lines.
	Capacity int `toml:"capacity"`
}

// HistoryConfig configures the undo log.
type HistoryConfig struct {
	// Limit is the number of operation labels kept.
	Limit int `toml:"limit"`
}

// LoggingConfig configures diagnostic logging.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`
	// File receives log output. Empty means stderr.
	File string `toml:"file"`
}

// DisplayConfig configures how lines are printed.
type DisplayConfig struct {
	// Truncate cuts displayed lines to the output width.
	Truncate bool `toml:"truncate"`
	// Width is the output width in columns. Zero detects the terminal width.
	Width int `toml:"width"`
}

// ScriptConfig configures the script runner.
type ScriptConfig struct {
	// CallLimit bounds the editor calls a single script may make.
	CallLimit int64 `toml:"callLimit"`
	// Timeout bounds the run time of a single script, as a Go duration string.
	Timeout string `toml:"timeout"`
}

// TimeoutDuration returns Timeout parsed, or zero if it does not parse.
func (s ScriptConfig) TimeoutDuration() time.Duration {
	d, err := time.ParseDuration(s.Timeout)
	if err != nil {
		return 0
	}
	return d
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Buffer:  BufferConfig{Capacity: 25},
		History: HistoryConfig{Limit: 3},
		Logging: LoggingConfig{Level: "info"},
		Display: DisplayConfig{Truncate: true},
		Script:  ScriptConfig{CallLimit: 10_000, Timeout: "5s"},
	}
}

// DefaultPath returns the default configuration file location,
// or an empty string if the user config directory is unknown.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "lineedit", "config.toml")
}

// Options controls where Load reads from.
type Options struct {
	// Path is the configuration file. Empty uses DefaultPath.
	Path string
	// FS reads the configuration file. Nil uses the OS file system.
	FS loader.FileSystem
	// Env loads environment overrides. Nil uses a LINEEDIT_ EnvLoader.
	Env loader.Loader
}

// Load builds the configuration from defaults, file and environment,
// and validates the result.
func Load(opts Options) (Config, error) {
	merged, err := toMap(Default())
	if err != nil {
		return Config{}, err
	}

	path := opts.Path
	if path == "" {
		path = DefaultPath()
	}
	if path != "" {
		fileCfg, err := loader.ForPath(opts.FS, path).Load()
		if err != nil {
			return Config{}, err
		}
		merged = loader.DeepMerge(merged, fileCfg)
	}

	env := opts.Env
	if env == nil {
		env = loader.NewEnvLoader(EnvPrefix)
	}
	envCfg, err := env.Load()
	if err != nil {
		return Config{}, fmt.Errorf("loading environment: %w", err)
	}
	merged = loader.DeepMerge(merged, envCfg)

	cfg, err := fromMap(merged)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// toMap converts cfg into the generic form the loaders produce.
func toMap(cfg Config) (map[string]any, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encoding defaults: %w", err)
	}
	var m map[string]any
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("encoding defaults: %w", err)
	}
	return m, nil
}

// fromMap decodes a merged configuration map into a Config.
func fromMap(m map[string]any) (Config, error) {
	data, err := toml.Marshal(m)
	if err != nil {
		return Config{}, fmt.Errorf("decoding configuration: %w", err)
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decoding configuration: %w", err)
	}
	return cfg, nil
}
