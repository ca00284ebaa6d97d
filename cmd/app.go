/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/nakachan-ing/kanban-cli/internal/board"
	"github.com/nakachan-ing/kanban-cli/internal/model"
	"github.com/nakachan-ing/kanban-cli/internal/store"
	"github.com/nakachan-ing/kanban-cli/internal/util"
)

// app is one open board plus everything that has to be released with it.
type app struct {
	config  *model.Config
	board   *board.Board
	store   store.Store
	logFile *os.File
	locked  bool
}

// openApp loads the config, redirects logs, takes the data-dir lock and
// restores the board.
func openApp(celebrator board.Celebrator) (*app, error) {
	config, err := store.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("❌ Error loading config: %w", err)
	}
	if ephemeral {
		config.Storage.Backend = "memory"
	}

	a := &app{config: config}
	if err := a.setupLogging(); err != nil {
		return nil, err
	}

	if !ephemeral {
		if err := util.CreateLockFile(config.DataDir); err != nil {
			a.Close()
			return nil, fmt.Errorf("❌ %w", err)
		}
		a.locked = true
	}

	a.store, err = store.Open(*config)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("❌ Error opening storage: %w", err)
	}

	a.board = board.New(board.OptionsFromConfig(*config, a.store, celebrator))
	log.WithFields(log.Fields{
		"backend": config.Storage.Backend,
		"tasks":   a.board.Len(),
	}).Info("board opened")
	return a, nil
}

func (a *app) setupLogging() error {
	level, err := log.ParseLevel(a.config.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	if verbose {
		level = log.DebugLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true, DisableColors: true})

	if a.config.LogFile == "" {
		log.SetOutput(os.Stderr)
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(a.config.LogFile), 0755); err != nil {
		return fmt.Errorf("❌ Failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(a.config.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("❌ Failed to open log file: %w", err)
	}
	a.logFile = f
	log.SetOutput(f)
	return nil
}

func (a *app) Close() {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			log.WithError(err).Warn("failed to close storage")
		}
	}
	if a.locked {
		if err := util.RemoveLockFile(a.config.DataDir); err != nil {
			log.WithError(err).Warn("failed to remove lock file")
		}
	}
	if a.logFile != nil {
		log.SetOutput(os.Stderr)
		a.logFile.Close()
	}
}
