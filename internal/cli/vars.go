package cli

import (
	"taskdeck/internal/core"
	"taskdeck/internal/observability"
)

// Service instances, set during app initialization in app.go.
var (
	BasePath    string
	Coord       *core.Coordinator
	ConfigMgr   core.ConfigManager
	EventLog    observability.EventLog
	Notifier    observability.Notifier
	EventBudget int
)
