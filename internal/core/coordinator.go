package core

import (
	"fmt"
	"time"

	"taskdeck/pkg/models"
)

// Coordinator holds the in-memory session state and orchestrates every
// external command against the store. After each successful mutation the
// coordinator reloads all three collections in full, so the session mirrors
// never diverge from persisted state; nothing is patched in place.
//
// The coordinator is an explicit handle constructed once at startup. It is
// not safe for concurrent use; the design assumes a single logical writer.
type Coordinator struct {
	store    Store
	events   EventLogger
	notifier Notifier
	now      func() time.Time

	tasks      []models.Task
	categories []models.Category
	settings   models.Settings

	searchText string
	editingID  string
}

// NewCoordinator creates a coordinator and loads the initial session state.
// events and notifier may be nil.
func NewCoordinator(store Store, events EventLogger, notifier Notifier) *Coordinator {
	c := &Coordinator{
		store:    store,
		events:   events,
		notifier: notifier,
		now:      time.Now,
	}
	c.Reload()
	return c
}

// Reload refreshes the three session mirrors from the store.
func (c *Coordinator) Reload() {
	c.tasks = c.store.ListTasks()
	c.categories = c.store.ListCategories()
	c.settings = c.store.GetSettings()
}

// Tasks returns the session's task mirror.
func (c *Coordinator) Tasks() []models.Task { return c.tasks }

// Categories returns the session's category mirror.
func (c *Coordinator) Categories() []models.Category { return c.categories }

// Settings returns the session's settings mirror.
func (c *Coordinator) Settings() models.Settings { return c.settings }

// View derives the display-ready task list from the session mirrors using
// the persisted filter and sort settings plus the session search text.
func (c *Coordinator) View() []models.Task {
	return DeriveView(c.tasks, c.searchText, c.settings.FilterCategory, c.settings.FilterStatus, c.settings.SortBy)
}

// Counts returns the aggregate totals over the full (unfiltered) collection.
func (c *Coordinator) Counts() Counts {
	return CountTasks(c.tasks)
}

// SetSearchText updates the session-only search term. Search text is UI
// state and is never persisted.
func (c *Coordinator) SetSearchText(text string) {
	c.searchText = text
}

// SearchText returns the session search term.
func (c *Coordinator) SearchText() string { return c.searchText }

// BeginEdit marks a task as being edited. Pass the empty string (or call
// EndEdit) to return to create mode.
func (c *Coordinator) BeginEdit(id string) { c.editingID = id }

// EndEdit clears the editing selection.
func (c *Coordinator) EndEdit() { c.editingID = "" }

// EditingID returns the ID of the task being edited, or empty when creating.
func (c *Coordinator) EditingID() string { return c.editingID }

// fail surfaces a one-line notification for a failed action and returns the
// error unchanged.
func (c *Coordinator) fail(action string, err error) error {
	if c.notifier != nil {
		c.notifier.Notify(fmt.Sprintf("%s failed: %v", action, err))
	}
	return err
}

func (c *Coordinator) logEvent(eventType string, data map[string]any) {
	if c.events == nil {
		return
	}
	// Event log failures never block a command.
	_ = c.events.LogEvent(eventType, data)
}

// CreateTask persists a new task and refreshes the session.
func (c *Coordinator) CreateTask(draft models.TaskDraft) (*models.Task, error) {
	task, err := c.store.CreateTask(draft)
	if err != nil {
		return nil, c.fail("creating task", err)
	}
	c.logEvent("task.created", map[string]any{"id": task.ID, "title": task.Title})
	c.Reload()
	return task, nil
}

// UpdateTask applies a partial update and refreshes the session.
func (c *Coordinator) UpdateTask(id string, patch models.TaskPatch) (*models.Task, error) {
	task, err := c.store.UpdateTask(id, patch)
	if err != nil {
		return nil, c.fail("updating task", err)
	}
	c.logEvent("task.updated", map[string]any{"id": id})
	c.Reload()
	return task, nil
}

// DeleteTask removes a task and refreshes the session.
func (c *Coordinator) DeleteTask(id string) error {
	if err := c.store.DeleteTask(id); err != nil {
		return c.fail("deleting task", err)
	}
	c.logEvent("task.deleted", map[string]any{"id": id})
	c.Reload()
	return nil
}

// ToggleTask flips a task's completion state and refreshes the session.
func (c *Coordinator) ToggleTask(id string) (*models.Task, error) {
	task, err := c.store.ToggleTaskCompletion(id)
	if err != nil {
		return nil, c.fail("toggling task", err)
	}
	c.logEvent("task.toggled", map[string]any{"id": id, "completed": task.Completed})
	c.Reload()
	return task, nil
}

// ClearCompleted removes every completed task and refreshes the session.
func (c *Coordinator) ClearCompleted() error {
	if err := c.store.ClearCompletedTasks(); err != nil {
		return c.fail("clearing completed tasks", err)
	}
	c.logEvent("tasks.cleared", nil)
	c.Reload()
	return nil
}

// CreateCategory persists a new category and refreshes the session.
func (c *Coordinator) CreateCategory(draft models.CategoryDraft) (*models.Category, error) {
	cat, err := c.store.CreateCategory(draft)
	if err != nil {
		return nil, c.fail("creating category", err)
	}
	c.logEvent("category.created", map[string]any{"id": cat.ID, "name": cat.Name})
	c.Reload()
	return cat, nil
}

// CategoryByID resolves a category reference for display.
func (c *Coordinator) CategoryByID(id string) (*models.Category, error) {
	return c.store.GetCategoryByID(id)
}

// TaskByID resolves a task for display or editing.
func (c *Coordinator) TaskByID(id string) (*models.Task, error) {
	return c.store.GetTaskByID(id)
}

// UpdateSetting merges one settings key and refreshes the session.
func (c *Coordinator) UpdateSetting(key, value string) error {
	if err := c.store.UpdateSetting(key, value); err != nil {
		return c.fail("updating setting "+key, err)
	}
	c.logEvent("setting.updated", map[string]any{"key": key, "value": value})
	c.Reload()
	return nil
}

// Export serializes the full repository state to a snapshot document.
func (c *Coordinator) Export() (string, error) {
	text, err := ExportSnapshot(c.store, c.now)
	if err != nil {
		return "", c.fail("exporting snapshot", err)
	}
	c.logEvent("snapshot.exported", map[string]any{"tasks": len(c.tasks)})
	return text, nil
}

// Import validates and restores a snapshot document, then refreshes the
// session. A malformed document mutates nothing.
func (c *Coordinator) Import(text string) error {
	if err := ImportSnapshot(c.store, text); err != nil {
		return c.fail("importing snapshot", err)
	}
	c.Reload()
	c.logEvent("snapshot.imported", map[string]any{"tasks": len(c.tasks)})
	return nil
}

// ResetAll erases all persisted state, re-seeds defaults and refreshes the
// session.
func (c *Coordinator) ResetAll() error {
	if err := c.store.ResetAll(); err != nil {
		return c.fail("resetting", err)
	}
	c.logEvent("store.reset", nil)
	c.Reload()
	c.editingID = ""
	c.searchText = ""
	return nil
}
