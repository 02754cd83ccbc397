// Package config handles configuration loading and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"

	"github.com/sandeepkv93/todo/internal/model"
)

// Default values.
const (
	DefaultBackend       = "sqlite"
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "text"
	DefaultProgressWidth = 40
	DefaultConfigFile    = "todo.toml"
	appDirName           = "todo"
)

// Config holds the runtime configuration for the to-do app.
type Config struct {
	Backend   string `toml:"backend"`
	StorePath string `toml:"store_path"`

	LogFile       string `toml:"log_file"`
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`

	Filter        string `toml:"filter"`
	ProgressWidth int    `toml:"progress_width"`

	// ConfigFile is the file the values were read from, if any.
	ConfigFile string `toml:"-"`
}

func Default() *Config {
	return &Config{
		Backend:       DefaultBackend,
		LogLevel:      DefaultLogLevel,
		LogFormat:     DefaultLogFormat,
		Filter:        string(model.FilterAll),
		ProgressWidth: DefaultProgressWidth,
	}
}

// RegisterFlags adds the configuration flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "path to a TOML config file (default: ./todo.toml if present)")
	fs.String("backend", DefaultBackend, "storage backend: sqlite, file or memory")
	fs.String("store", "", "path of the task store (default: $XDG_DATA_HOME/todo, else ~/.local/share/todo)")
	fs.String("log-file", "", "append logs to this file (default: discard)")
	fs.String("log-level", DefaultLogLevel, "log level: debug, info, warn, error")
	fs.String("log-format", DefaultLogFormat, "log format: text, json or logfmt")
	fs.Bool("log-timestamps", false, "include timestamps in log records")
	fs.String("filter", string(model.FilterAll), "initial filter: all, active or done")
	fs.Int("progress-width", DefaultProgressWidth, "width of the completion progress bar")
}

// Load builds the configuration in priority order:
// 1. Defaults
// 2. Config file (--config, TODO_CONFIG, or ./todo.toml)
// 3. Environment variables
// 4. Flags that were set explicitly
//
// fs must already carry the flags from RegisterFlags. Parse errors,
// including pflag.ErrHelp, are returned unwrapped.
func Load(fs *pflag.FlagSet, args []string) (*Config, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := Default()

	path, explicit := configFilePath(fs)
	if path != "" {
		if err := loadFile(cfg, path); err != nil {
			if explicit || !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("loading config file %s: %w", path, err)
			}
		} else {
			cfg.ConfigFile = path
		}
	}

	loadFromEnv(cfg)

	if err := applyFlags(cfg, fs); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	if err := finalize(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func configFilePath(fs *pflag.FlagSet) (string, bool) {
	if fs.Changed("config") {
		v, _ := fs.GetString("config")
		return expandPath(v), true
	}
	if v := strings.TrimSpace(os.Getenv("TODO_CONFIG")); v != "" {
		return expandPath(v), true
	}
	return DefaultConfigFile, false
}

func loadFile(cfg *Config, path string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}
	_, err := toml.DecodeFile(path, cfg)
	return err
}

func loadFromEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv("TODO_BACKEND")); v != "" {
		cfg.Backend = v
	}
	if v := strings.TrimSpace(os.Getenv("TODO_STORE")); v != "" {
		cfg.StorePath = v
	}
	if v := strings.TrimSpace(os.Getenv("TODO_LOG_FILE")); v != "" {
		cfg.LogFile = v
	}
	if v := strings.TrimSpace(os.Getenv("TODO_LOG_LEVEL")); v != "" {
		cfg.LogLevel = v
	}
	if v := strings.TrimSpace(os.Getenv("TODO_LOG_FORMAT")); v != "" {
		cfg.LogFormat = v
	}
	if v, ok := getEnvBool("TODO_LOG_TIMESTAMPS"); ok {
		cfg.LogTimestamps = v
	}
	if v := strings.TrimSpace(os.Getenv("TODO_FILTER")); v != "" {
		cfg.Filter = v
	}
	if v, ok := getEnvInt("TODO_PROGRESS_WIDTH"); ok && v > 0 {
		cfg.ProgressWidth = v
	}
}

func applyFlags(cfg *Config, fs *pflag.FlagSet) error {
	var firstErr error
	str := func(name string, dst *string) {
		if !fs.Changed(name) {
			return
		}
		v, err := fs.GetString(name)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		*dst = v
	}
	str("backend", &cfg.Backend)
	str("store", &cfg.StorePath)
	str("log-file", &cfg.LogFile)
	str("log-level", &cfg.LogLevel)
	str("log-format", &cfg.LogFormat)
	str("filter", &cfg.Filter)

	if fs.Changed("log-timestamps") {
		v, err := fs.GetBool("log-timestamps")
		if err != nil && firstErr == nil {
			firstErr = err
		}
		cfg.LogTimestamps = v
	}
	if fs.Changed("progress-width") {
		v, err := fs.GetInt("progress-width")
		if err != nil && firstErr == nil {
			firstErr = err
		}
		if v > 0 {
			cfg.ProgressWidth = v
		}
	}
	return firstErr
}

// finalize normalizes names and fills in the store path for the backend.
func finalize(cfg *Config) error {
	cfg.Backend = strings.ToLower(strings.TrimSpace(cfg.Backend))
	switch cfg.Backend {
	case "", "sqlite":
		cfg.Backend = "sqlite"
	case "json":
		cfg.Backend = "file"
	case "file", "memory":
	default:
		return fmt.Errorf("config: unknown backend %q", cfg.Backend)
	}

	filter, err := model.ParseFilter(cfg.Filter)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	cfg.Filter = string(filter)

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))
	if cfg.LogFormat == "" {
		cfg.LogFormat = DefaultLogFormat
	}
	if cfg.ProgressWidth <= 0 {
		cfg.ProgressWidth = DefaultProgressWidth
	}

	if cfg.StorePath == "" && cfg.Backend != "memory" {
		name := "todo.db"
		if cfg.Backend == "file" {
			name = "todo.json"
		}
		cfg.StorePath = filepath.Join(dataDir(), name)
	}
	cfg.StorePath = expandPath(cfg.StorePath)
	cfg.LogFile = expandPath(cfg.LogFile)
	return nil
}

// InitialFilter is the parsed form of cfg.Filter.
func (c *Config) InitialFilter() model.Filter {
	f, err := model.ParseFilter(c.Filter)
	if err != nil {
		return model.FilterAll
	}
	return f
}

// dataDir follows the XDG base directory layout for user data.
func dataDir() string {
	if v := strings.TrimSpace(os.Getenv("XDG_DATA_HOME")); v != "" {
		return filepath.Join(v, appDirName)
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return filepath.Join(home, ".local", "share", appDirName)
	}
	return "." + appDirName
}

func expandPath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return ""
	}
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return os.ExpandEnv(p)
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
