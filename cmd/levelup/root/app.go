package root

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/sandeepkv93/levelup/internal/catalog"
	"github.com/sandeepkv93/levelup/internal/config"
	"github.com/sandeepkv93/levelup/internal/logging"
	"github.com/sandeepkv93/levelup/internal/repository"
	"github.com/sandeepkv93/levelup/internal/scheduler"
	"github.com/sandeepkv93/levelup/internal/storage"
	"github.com/sandeepkv93/levelup/internal/tracker"
)

type app struct {
	cfg     config.RuntimeConfig
	log     zerolog.Logger
	service *tracker.Service
	engine  *scheduler.Engine
}

type appMode int

const (
	modeCLI appMode = iota
	modeTUI
)

// openApp wires config, logging, storage and the tracker service. In TUI mode
// logs go to a file and the reminder engine is started; CLI commands log to
// stderr and never arm reminders.
func openApp(ctx context.Context, mode appMode) (*app, func(), error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, nil, err
	}

	closers := make([]io.Closer, 0, 2)
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			_ = closers[i].Close()
		}
	}

	var logger zerolog.Logger
	if mode == modeTUI {
		fileLog, closer, err := logging.NewFile(cfg)
		if err != nil {
			return nil, nil, err
		}
		closers = append(closers, closer)
		logger = fileLog
	} else {
		logger = logging.New(cfg, os.Stderr)
	}

	dir, err := cfg.DataPath()
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("create data dir: %w", err)
	}
	backend, err := storage.Open(cfg.Store, dir, logger)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	closers = append(closers, backend)

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	repo := repository.FromBackend(backend, nil, logger)
	opts := tracker.Options{Catalog: &cat, Logger: logger}

	a := &app{cfg: cfg, log: logger}
	if mode == modeTUI {
		a.engine = scheduler.NewEngine(cfg.SchedulerBuffer)
		a.engine.Start()
		opts.Scheduler = a.engine
		engine := a.engine
		prev := cleanup
		cleanup = func() {
			engine.Stop()
			prev()
		}
	}
	a.service = tracker.New(repo, opts)
	if mode == modeTUI {
		if err := a.service.RestoreReminder(ctx); err != nil {
			logger.Warn().Err(err).Msg("restore hydration reminder")
		}
	}
	logger.Debug().Str("store", cfg.Store).Str("dir", dir).Msg("levelup opened")
	return a, cleanup, nil
}
