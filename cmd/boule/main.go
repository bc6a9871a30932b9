package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jask/boule/internal/config"
	"github.com/jask/boule/internal/database"
	"github.com/jask/boule/internal/kvstore"
	"github.com/jask/boule/internal/prefs"
	"github.com/jask/boule/internal/service"
	"github.com/jask/boule/internal/tui"
)

var (
	configPath string
	columns    int
	capacity   int
	backend    string
)

var rootCmd = &cobra.Command{
	Use:          "boule",
	Short:        "Sort the colored balls so every column holds a single color",
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "config file (default $BOULE_CONFIG or ~/.config/boule/config.toml)")
	rootCmd.Flags().IntVar(&columns, "columns", 0, "columns for a fresh game")
	rootCmd.Flags().IntVar(&capacity, "capacity", 0, "column capacity for a fresh game")
	rootCmd.Flags().StringVar(&backend, "store", "", "snapshot store: sqlite, file or badger")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if cmd.Flags().Changed("columns") {
		cfg.Board.Columns = columns
	}
	if cmd.Flags().Changed("capacity") {
		cfg.Board.Capacity = capacity
	}
	if cmd.Flags().Changed("store") {
		cfg.Store.Backend = backend
	}
	cfg.Board = cfg.Board.Clamp()

	logger, closeLog, err := openLogger(cfg)
	if err != nil {
		return fmt.Errorf("log: %w", err)
	}
	defer closeLog()

	store, closeStore, err := openStore(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Error("close store", "err", err)
		}
	}()

	saver := &service.Saver{
		Store:    store,
		Interval: cfg.Autosave.Interval,
		Logger:   logger,
		Default:  cfg.Board,
	}
	g := saver.Restore(ctx)

	src := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64()))
	p := tea.NewProgram(tui.New(ctx, g, saver, src, logger), tea.WithAltScreen())

	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	if _, err := os.Stat(path); err == nil {
		config.Watch(path, logger, func(c config.Config) { p.Send(tui.ConfigMsg(c)) })
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	// The UI flushes on quit; this catches an interrupted program.
	if err := saver.Flush(ctx, g, false); err != nil {
		return fmt.Errorf("final save: %w", err)
	}
	return nil
}

// openLogger writes to a file since the terminal belongs to the UI.
func openLogger(cfg config.Config) (*slog.Logger, func(), error) {
	if err := os.MkdirAll(filepath.Dir(cfg.Log.Path), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(cfg.Log.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, err
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: cfg.LogLevel()}))
	slog.SetDefault(logger)
	return logger, func() {
		if err := f.Close(); err != nil {
			log.Printf("close log: %v", err)
		}
	}, nil
}

func openStore(cfg config.Config, logger *slog.Logger) (service.SnapshotStore, func() error, error) {
	path := cfg.StorePath()
	logger.Info("opening store", "backend", cfg.Store.Backend, "path", path)
	switch cfg.Store.Backend {
	case config.BackendFile:
		return prefs.FileStore{Path: path}, func() error { return nil }, nil
	case config.BackendBadger:
		kv, err := kvstore.Open(kvstore.Config{Path: path, Logger: logger})
		if err != nil {
			return nil, nil, err
		}
		return kv, kv.Close, nil
	case config.BackendSQLite:
		if err := database.RunMigrations(path); err != nil {
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
		db, err := database.Open(path)
		if err != nil {
			return nil, nil, fmt.Errorf("open db: %w", err)
		}
		return &service.SQLiteStore{DB: db}, db.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}
