// Package core contains the business logic of taskdeck: the application
// coordinator, the derive/filter/sort query engine, the snapshot transfer
// codec, and tool-level configuration.
package core

import "taskdeck/pkg/models"

// Store is the subset of the storage repository the core needs. It is
// defined locally so core stays independent of the storage package; the app
// wires storage.Repository to it.
type Store interface {
	ListTasks() []models.Task
	ListCategories() []models.Category
	GetSettings() models.Settings

	CreateTask(draft models.TaskDraft) (*models.Task, error)
	UpdateTask(id string, patch models.TaskPatch) (*models.Task, error)
	DeleteTask(id string) error
	ToggleTaskCompletion(id string) (*models.Task, error)
	ClearCompletedTasks() error
	GetTaskByID(id string) (*models.Task, error)

	CreateCategory(draft models.CategoryDraft) (*models.Category, error)
	GetCategoryByID(id string) (*models.Category, error)

	UpdateSetting(key, value string) error
	ReplaceAll(tasks []models.Task, cats []models.Category, settings *models.Settings) error
	ResetAll() error
}

// EventLogger is the subset of the observability event log the core needs.
type EventLogger interface {
	LogEvent(eventType string, data map[string]any) error
}

// Notifier surfaces one-line user-facing messages for failed or noteworthy
// actions. Failures are surfaced once; there is no retry anywhere in the
// core.
type Notifier interface {
	Notify(message string)
	Warn(message string)
}
