package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/jask/boule/internal/board"
)

// Store backends.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendBadger = "badger"
)

// Config holds application configuration.
type Config struct {
	Board    board.Config
	Store    StoreConfig
	Autosave AutosaveConfig
	Log      LogConfig
}

// StoreConfig selects the snapshot backend. An empty path means the
// backend's default location under the data dir.
type StoreConfig struct {
	Backend string
	Path    string
}

// AutosaveConfig holds the periodic save interval. Zero disables it.
type AutosaveConfig struct {
	Interval time.Duration
}

// LogConfig holds logging settings.
type LogConfig struct {
	Path  string
	Level string
}

func dataDir() string {
	return filepath.Join(os.Getenv("HOME"), ".local", "share", "boule")
}

// DefaultPath is where the config file lives unless BOULE_CONFIG says otherwise.
func DefaultPath() string {
	if p := os.Getenv("BOULE_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "boule", "config.toml")
}

func newViper(path string) *viper.Viper {
	v := viper.New()

	// default values
	v.SetDefault("board.columns", board.DefaultConfig.Columns)
	v.SetDefault("board.capacity", board.DefaultConfig.Capacity)
	v.SetDefault("store.backend", BackendSQLite)
	v.SetDefault("store.path", "")
	v.SetDefault("autosave.interval", "30s")
	v.SetDefault("log.path", filepath.Join(dataDir(), "boule.log"))
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")
	v.SetConfigFile(path)

	v.SetEnvPrefix("BOULE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return v
}

func decode(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	switch c.Store.Backend {
	case BackendSQLite, BackendFile, BackendBadger:
	default:
		return Config{}, fmt.Errorf("unknown store backend %q", c.Store.Backend)
	}
	c.Board = c.Board.Clamp()
	return c, nil
}

// Load reads configuration from path (DefaultPath when empty) and env. Env
// var overrides use prefix BOULE_. A missing file is not an error.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultPath()
	}
	v := newViper(path)
	var notFound viper.ConfigFileNotFoundError
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return decode(v)
}

// Watch calls fn with the reloaded configuration every time the file at path
// changes. Reload errors are logged and skipped.
func Watch(path string, logger *slog.Logger, fn func(Config)) {
	if path == "" {
		path = DefaultPath()
	}
	v := newViper(path)
	if err := v.ReadInConfig(); err != nil {
		logger.Warn("config read failed", "file", path, "err", err)
	}
	v.OnConfigChange(func(e fsnotify.Event) {
		c, err := decode(v)
		if err != nil {
			logger.Warn("config reload failed", "file", e.Name, "err", err)
			return
		}
		logger.Info("config reloaded", "file", e.Name, "op", e.Op.String())
		fn(c)
	})
	v.WatchConfig()
}

// StorePath resolves the backend location.
func (c Config) StorePath() string {
	if c.Store.Path != "" {
		return c.Store.Path
	}
	switch c.Store.Backend {
	case BackendFile:
		return filepath.Join(dataDir(), "snapshot.json")
	case BackendBadger:
		return filepath.Join(dataDir(), "badger")
	default:
		return filepath.Join(dataDir(), "boule.db")
	}
}

// LogLevel parses Log.Level, defaulting to info.
func (c Config) LogLevel() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo
	}
	return l
}
