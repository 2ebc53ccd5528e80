// Package internal provides the App struct that wires all components of
// taskdeck together and initializes the CLI layer.
package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"taskdeck/internal/cli"
	"taskdeck/internal/core"
	"taskdeck/internal/observability"
	"taskdeck/internal/storage"
	"taskdeck/pkg/models"
)

// App holds all service dependencies for taskdeck.
type App struct {
	BasePath string
	Config   *models.AppConfig

	// Storage layer
	Gateway *storage.Gateway
	Repo    *storage.Repository

	// Core
	ConfigMgr core.ConfigManager
	Coord     *core.Coordinator

	// Observability
	EventLog observability.EventLog
	Notifier observability.Notifier
}

// NewApp creates and wires all components. basePath is the directory where
// all data lives (typically ~/.taskdeck or a directory containing
// .taskdeckrc).
func NewApp(basePath string) (*App, error) {
	app := &App{BasePath: basePath}

	app.Notifier = observability.NewTerminalNotifier(os.Stderr)

	// --- Configuration ---
	app.ConfigMgr = core.NewConfigManager(basePath)
	cfg, err := app.ConfigMgr.Load()
	if err != nil {
		return nil, fmt.Errorf("initializing taskdeck: %w", err)
	}
	app.Config = cfg

	// --- Storage layer ---
	dataDir := basePath
	if cfg.DataDir != "" {
		dataDir = cfg.DataDir
		if !filepath.IsAbs(dataDir) {
			dataDir = filepath.Join(basePath, dataDir)
		}
	}
	var kv storage.KVStore
	switch cfg.Backend {
	case models.BackendSQLite:
		kv, err = storage.NewSQLiteKV(filepath.Join(dataDir, "taskdeck.db"))
		if err != nil {
			// A backend that cannot even open degrades the session the
			// same way a failed probe does.
			app.Notifier.Warn(fmt.Sprintf("sqlite backend unavailable, running in-memory: %v", err))
			kv = unavailableKV{err: err}
		}
	default:
		kv = storage.NewFileKV(dataDir)
	}

	app.Gateway = storage.NewGateway(kv)
	if app.Gateway.Degraded() {
		app.Notifier.Warn("storage unavailable: changes will not be saved this session")
	}

	ids, err := storage.NewIDGenerator()
	if err != nil {
		return nil, fmt.Errorf("initializing taskdeck: %w", err)
	}
	app.Repo = storage.NewRepository(app.Gateway, ids)
	app.Repo.Seed()

	// --- Observability ---
	if cfg.EventLog {
		logPath := filepath.Join(basePath, ".taskdeck_events.jsonl")
		app.EventLog, err = observability.NewJSONLEventLog(logPath)
		if err != nil {
			// Non-fatal: run without an event log.
			app.EventLog = nil
		}
	}

	var events core.EventLogger
	if app.EventLog != nil {
		events = &eventLogAdapter{log: app.EventLog}
	}

	// --- Coordinator ---
	app.Coord = core.NewCoordinator(app.Repo, events, app.Notifier)
	if app.Gateway.Degraded() && events != nil {
		_ = events.LogEvent("store.degraded", nil)
	}

	// --- Wire CLI package-level variables ---
	cli.BasePath = basePath
	cli.Coord = app.Coord
	cli.ConfigMgr = app.ConfigMgr
	cli.EventLog = app.EventLog
	cli.Notifier = app.Notifier
	cli.EventBudget = cfg.EventLogBudget

	return app, nil
}

// Close releases resources held by the App.
func (a *App) Close() error {
	if a.EventLog != nil {
		_ = a.EventLog.Close()
	}
	return a.Gateway.Close()
}

// ResolveBasePath determines the taskdeck data directory. It checks the
// TASKDECK_HOME env var, then walks up from the working directory looking
// for a .taskdeckrc, then falls back to ~/.taskdeck.
func ResolveBasePath() string {
	if home := os.Getenv("TASKDECK_HOME"); home != "" {
		return home
	}
	if dir, err := os.Getwd(); err == nil {
		for {
			if _, err := os.Stat(filepath.Join(dir, ".taskdeckrc")); err == nil {
				return dir
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".taskdeck")
}

// --- Adapters ---

// eventLogAdapter adapts observability.EventLog to core.EventLogger.
type eventLogAdapter struct {
	log observability.EventLog
}

func (a *eventLogAdapter) LogEvent(eventType string, data map[string]any) error {
	return a.log.Write(observability.Event{
		Time:    time.Now().UTC(),
		Level:   "INFO",
		Type:    eventType,
		Message: eventType,
		Data:    data,
	})
}

// unavailableKV is the stand-in store used when the configured backend
// cannot be opened; every operation fails so the gateway probe degrades.
type unavailableKV struct {
	err error
}

func (s unavailableKV) Get(string) (string, bool, error) { return "", false, s.err }
func (s unavailableKV) Set(string, string) error         { return s.err }
func (s unavailableKV) Delete(string) error              { return s.err }
func (s unavailableKV) Close() error                     { return nil }
