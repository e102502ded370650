package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// newLogger builds the process logger. Interactive commands own the terminal,
// so they only log when --log-file is given.
func newLogger(interactive bool) (*log.Logger, func(), error) {
	var w io.Writer = os.Stderr
	closer := func() {}

	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, closer, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closer = func() { f.Close() }
	case interactive:
		w = io.Discard
	}

	level := appConfig.LogLevel()
	if flagLogLevel != "" {
		lvl, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			closer()
			return nil, func() {}, err
		}
		level = lvl
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "t2048",
		Level:           level,
	})
	return logger, closer, nil
}

// openStore opens the score database. Failures are logged and play continues
// without storage.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// runtimeConfig returns the runtime config for the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	appConfig.ApplyRuntime(&cfg)
	return cfg
}
