package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/crispy-forty/internal/assistant"
	"github.com/vovakirdan/crispy-forty/internal/config"
	"github.com/vovakirdan/crispy-forty/internal/leaderboard"
	"github.com/vovakirdan/crispy-forty/internal/levels"
	"github.com/vovakirdan/crispy-forty/internal/persist"
	"github.com/vovakirdan/crispy-forty/internal/storage"
)

// env is everything a subcommand needs, built from config and flags.
type env struct {
	cfg     config.Config
	logger  *log.Logger
	backend storage.Backend
	store   *persist.Adapter
	catalog *levels.Catalog
	board   *leaderboard.Board

	closers []io.Closer
}

// loadEnv reads the config, opens the store and loads the catalog. Logs go
// to logOut, or to the configured log file when logOut is nil.
func loadEnv(logOut io.Writer, prefix string) (*env, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	if flagCatalog != "" {
		cfg.Game.Catalog = flagCatalog
	}

	e := &env{cfg: cfg}

	if logOut == nil {
		logOut = e.openLogFile(cfg.Log.File)
	}
	e.logger = log.NewWithOptions(logOut, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           cfg.LogLevel(),
	})
	e.logger.Debug("config loaded", "source", cfg.Source)

	catalog, err := levels.Load(cfg.Game.Catalog)
	if err != nil {
		e.Close()
		return nil, fmt.Errorf("loading level catalog: %w", err)
	}
	e.catalog = catalog

	// Continue without durable storage rather than refuse to play
	db, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		e.logger.Warn("could not open database, progress will not be kept", "path", cfg.Storage.Path, "error", err)
		e.backend = storage.NewMemory()
	} else {
		e.backend = db
	}
	e.closers = append(e.closers, e.backend)

	k := cfg.Storage.Keys
	e.store = persist.New(e.backend, persist.Keys{
		Progress:    k.Progress,
		Leaderboard: k.Leaderboard,
		Player:      k.Player,
	}, e.logger.WithPrefix(prefix+"/store"))
	if cfg.Game.DefaultPlayer != "" {
		e.store = e.store.WithDefaultPlayer(cfg.Game.DefaultPlayer)
	}

	e.board = leaderboard.New(e.store.LoadLeaderboard())
	return e, nil
}

// openLogFile opens the log sink for the full-screen UI, which owns stdout.
func (e *env) openLogFile(path string) io.Writer {
	if path == "" {
		return io.Discard
	}
	path, err := config.ExpandPath(path)
	if err != nil {
		return io.Discard
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return io.Discard
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return io.Discard
	}
	e.closers = append(e.closers, f)
	return f
}

func (e *env) assistant() *assistant.Assistant {
	bot, err := assistant.Default()
	if err != nil {
		e.logger.Error("help chat corpus unavailable", "error", err)
		return assistant.New(assistant.Corpus{Fallback: "Sorry, the help chat is unavailable right now."})
	}
	return bot
}

// Close releases the store and the log file.
func (e *env) Close() {
	for i := len(e.closers) - 1; i >= 0; i-- {
		if err := e.closers[i].Close(); err != nil && e.logger != nil {
			e.logger.Error("close failed", "error", err)
		}
	}
	e.closers = nil
}

// configOrDefault loads the config, falling back to the built-in one.
func configOrDefault() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Default(), err
	}
	return cfg, nil
}
