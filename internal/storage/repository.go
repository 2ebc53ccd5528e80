package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"taskdeck/pkg/models"
)

// Sentinel errors reported by repository operations. Everything else a
// repository method returns wraps one of these or a gateway write failure.
var (
	ErrNotFound          = errors.New("record not found")
	ErrDuplicateCategory = errors.New("category name already exists")
	ErrInvalidValue      = errors.New("invalid field value")
)

// Repository provides typed CRUD over the three persisted slots. Every
// mutation is atomic at the granularity of "read full slot, mutate, write
// full slot back"; a failed write leaves the previously persisted state
// untouched. Corrupt or unparsable slot contents never surface as errors:
// reads substitute the slot's default value.
type Repository struct {
	gateway *Gateway
	ids     IDGenerator
	now     func() time.Time
}

// NewRepository creates a Repository over the given gateway.
func NewRepository(gateway *Gateway, ids IDGenerator) *Repository {
	return &Repository{
		gateway: gateway,
		ids:     ids,
		now:     time.Now,
	}
}

// defaultCategories returns the four preset categories seeded on first run.
// Their IDs are fixed so fresh installs agree on them.
func defaultCategories() []models.Category {
	return []models.Category{
		{ID: "cat_1", Name: "Work", Color: "#6366f1"},
		{ID: "cat_2", Name: "Personal", Color: "#ec4899"},
		{ID: "cat_3", Name: "Shopping", Color: "#f59e0b"},
		{ID: "cat_4", Name: "Health", Color: "#10b981"},
	}
}

// Seed writes defaults into any absent slot. Called once at startup; write
// failures are ignored here because a degraded gateway already means the
// session runs on in-memory defaults.
func (r *Repository) Seed() {
	if _, ok := r.gateway.ReadSlot(SlotTasks); !ok {
		_ = r.writeTasks([]models.Task{})
	}
	if _, ok := r.gateway.ReadSlot(SlotCategories); !ok {
		_ = r.writeCategories(defaultCategories())
	}
	if _, ok := r.gateway.ReadSlot(SlotSettings); !ok {
		_ = r.writeSettings(models.DefaultSettings())
	}
}

// ListTasks returns the full task collection. A missing or corrupt slot
// yields the empty collection.
func (r *Repository) ListTasks() []models.Task {
	raw, ok := r.gateway.ReadSlot(SlotTasks)
	if !ok {
		return []models.Task{}
	}
	var tasks []models.Task
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil || tasks == nil {
		return []models.Task{}
	}
	return tasks
}

// ListCategories returns the full category collection, substituting the four
// presets when the slot is missing or corrupt.
func (r *Repository) ListCategories() []models.Category {
	raw, ok := r.gateway.ReadSlot(SlotCategories)
	if !ok {
		return defaultCategories()
	}
	var cats []models.Category
	if err := json.Unmarshal([]byte(raw), &cats); err != nil || cats == nil {
		return defaultCategories()
	}
	return cats
}

// GetSettings returns the settings record, substituting defaults when the
// slot is missing or corrupt.
func (r *Repository) GetSettings() models.Settings {
	raw, ok := r.gateway.ReadSlot(SlotSettings)
	if !ok {
		return models.DefaultSettings()
	}
	var s models.Settings
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return models.DefaultSettings()
	}
	return s
}

func (r *Repository) writeTasks(tasks []models.Task) error {
	data, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("encoding tasks: %w", err)
	}
	return r.gateway.WriteSlot(SlotTasks, string(data))
}

func (r *Repository) writeCategories(cats []models.Category) error {
	data, err := json.Marshal(cats)
	if err != nil {
		return fmt.Errorf("encoding categories: %w", err)
	}
	return r.gateway.WriteSlot(SlotCategories, string(data))
}

func (r *Repository) writeSettings(s models.Settings) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	return r.gateway.WriteSlot(SlotSettings, string(data))
}

// freshID generates an ID with the given prefix guaranteed not to collide
// with any taken ID. The nanoid suffix makes a retry essentially
// unreachable, but uniqueness is still checked rather than assumed.
func (r *Repository) freshID(prefix string, taken []string) string {
	for {
		id := r.ids.NewID(prefix)
		collides := false
		for _, existing := range taken {
			if existing == id {
				collides = true
				break
			}
		}
		if !collides {
			return id
		}
	}
}

func taskIDs(tasks []models.Task) []string {
	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return ids
}

func categoryIDs(cats []models.Category) []string {
	ids := make([]string, len(cats))
	for i, c := range cats {
		ids[i] = c.ID
	}
	return ids
}

// CreateTask validates the draft, assigns identity fields, appends the task
// and persists the collection. On a failed write nothing is mutated.
func (r *Repository) CreateTask(draft models.TaskDraft) (*models.Task, error) {
	if strings.TrimSpace(draft.Title) == "" {
		return nil, fmt.Errorf("creating task: title must not be empty: %w", ErrInvalidValue)
	}
	if !draft.Priority.Valid() {
		return nil, fmt.Errorf("creating task: unknown priority %q: %w", draft.Priority, ErrInvalidValue)
	}

	tasks := r.ListTasks()
	task := models.Task{
		ID:          r.freshID("task", taskIDs(tasks)),
		Title:       draft.Title,
		Description: draft.Description,
		Category:    draft.Category,
		Priority:    draft.Priority,
		DueDate:     draft.DueDate,
		Completed:   false,
		CreatedAt:   r.now(),
	}
	if err := r.writeTasks(append(tasks, task)); err != nil {
		return nil, fmt.Errorf("creating task: %w", err)
	}
	return &task, nil
}

// UpdateTask shallow-merges the patch over the task with the given ID:
// non-nil patch fields win, nil fields preserve the stored value. Completed
// and CompletedAt are only touched when the patch includes them.
func (r *Repository) UpdateTask(id string, patch models.TaskPatch) (*models.Task, error) {
	tasks := r.ListTasks()
	idx := -1
	for i, t := range tasks {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("updating task %s: %w", id, ErrNotFound)
	}

	t := tasks[idx]
	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.Category != nil {
		t.Category = *patch.Category
	}
	if patch.Priority != nil {
		t.Priority = *patch.Priority
	}
	if patch.DueDate != nil {
		t.DueDate = *patch.DueDate
	}
	if patch.Completed != nil {
		t.Completed = *patch.Completed
	}
	if patch.CompletedAt != nil {
		t.CompletedAt = patch.CompletedAt
	}
	tasks[idx] = t

	if err := r.writeTasks(tasks); err != nil {
		return nil, fmt.Errorf("updating task %s: %w", id, err)
	}
	return &t, nil
}

// DeleteTask removes the task with the given ID.
func (r *Repository) DeleteTask(id string) error {
	tasks := r.ListTasks()
	kept := make([]models.Task, 0, len(tasks))
	found := false
	for _, t := range tasks {
		if t.ID == id {
			found = true
			continue
		}
		kept = append(kept, t)
	}
	if !found {
		return fmt.Errorf("deleting task %s: %w", id, ErrNotFound)
	}
	if err := r.writeTasks(kept); err != nil {
		return fmt.Errorf("deleting task %s: %w", id, err)
	}
	return nil
}

// ToggleTaskCompletion flips a task's completed flag. Transitioning to
// completed stamps CompletedAt; transitioning back clears it.
func (r *Repository) ToggleTaskCompletion(id string) (*models.Task, error) {
	tasks := r.ListTasks()
	idx := -1
	for i, t := range tasks {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("toggling task %s: %w", id, ErrNotFound)
	}

	t := tasks[idx]
	t.Completed = !t.Completed
	if t.Completed {
		now := r.now()
		t.CompletedAt = &now
	} else {
		t.CompletedAt = nil
	}
	tasks[idx] = t

	if err := r.writeTasks(tasks); err != nil {
		return nil, fmt.Errorf("toggling task %s: %w", id, err)
	}
	return &t, nil
}

// ClearCompletedTasks removes every completed task. Removing zero tasks is
// still a success.
func (r *Repository) ClearCompletedTasks() error {
	tasks := r.ListTasks()
	kept := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if !t.Completed {
			kept = append(kept, t)
		}
	}
	if err := r.writeTasks(kept); err != nil {
		return fmt.Errorf("clearing completed tasks: %w", err)
	}
	return nil
}

// GetTaskByID returns the task with the given ID.
func (r *Repository) GetTaskByID(id string) (*models.Task, error) {
	for _, t := range r.ListTasks() {
		if t.ID == id {
			task := t
			return &task, nil
		}
	}
	return nil, fmt.Errorf("task %s: %w", id, ErrNotFound)
}

// CreateCategory rejects drafts whose name collides case-insensitively with
// an existing category, then assigns a fresh ID and persists.
func (r *Repository) CreateCategory(draft models.CategoryDraft) (*models.Category, error) {
	if strings.TrimSpace(draft.Name) == "" {
		return nil, fmt.Errorf("creating category: name must not be empty: %w", ErrInvalidValue)
	}

	cats := r.ListCategories()
	for _, c := range cats {
		if strings.EqualFold(c.Name, draft.Name) {
			return nil, fmt.Errorf("creating category %q: %w", draft.Name, ErrDuplicateCategory)
		}
	}

	cat := models.Category{
		ID:    r.freshID("cat", categoryIDs(cats)),
		Name:  draft.Name,
		Color: draft.Color,
	}
	if err := r.writeCategories(append(cats, cat)); err != nil {
		return nil, fmt.Errorf("creating category %q: %w", draft.Name, err)
	}
	return &cat, nil
}

// GetCategoryByID returns the category with the given ID. Display code uses
// this to resolve a task's category reference; a dangling reference simply
// reports ErrNotFound.
func (r *Repository) GetCategoryByID(id string) (*models.Category, error) {
	for _, c := range r.ListCategories() {
		if c.ID == id {
			cat := c
			return &cat, nil
		}
	}
	return nil, fmt.Errorf("category %s: %w", id, ErrNotFound)
}

// UpdateSetting merges one key into the settings record and persists it.
// Known keys are validated against their enumerations; unknown keys are
// retained verbatim in the record's extension map for forward compatibility.
func (r *Repository) UpdateSetting(key, value string) error {
	s := r.GetSettings()
	switch key {
	case "theme":
		theme := models.Theme(value)
		if theme != models.ThemeLight && theme != models.ThemeDark {
			return fmt.Errorf("updating setting theme: unknown value %q: %w", value, ErrInvalidValue)
		}
		s.Theme = theme
	case "sortBy":
		mode := models.SortMode(value)
		if mode != models.SortByDate && mode != models.SortByPriority && mode != models.SortByAlphabetical {
			return fmt.Errorf("updating setting sortBy: unknown value %q: %w", value, ErrInvalidValue)
		}
		s.SortBy = mode
	case "filterCategory":
		s.FilterCategory = value
	case "filterStatus":
		status := models.StatusFilter(value)
		if status != models.StatusAll && status != models.StatusPending && status != models.StatusCompleted {
			return fmt.Errorf("updating setting filterStatus: unknown value %q: %w", value, ErrInvalidValue)
		}
		s.FilterStatus = status
	default:
		raw, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("updating setting %s: %w", key, err)
		}
		if s.Extra == nil {
			s.Extra = make(map[string]json.RawMessage)
		}
		s.Extra[key] = raw
	}

	if err := r.writeSettings(s); err != nil {
		return fmt.Errorf("updating setting %s: %w", key, err)
	}
	return nil
}

// ReplaceAll overwrites the task and category slots, and the settings slot
// when settings is non-nil. Used by snapshot import after shape validation.
func (r *Repository) ReplaceAll(tasks []models.Task, cats []models.Category, settings *models.Settings) error {
	if err := r.writeTasks(tasks); err != nil {
		return fmt.Errorf("replacing tasks: %w", err)
	}
	if err := r.writeCategories(cats); err != nil {
		return fmt.Errorf("replacing categories: %w", err)
	}
	if settings != nil {
		if err := r.writeSettings(*settings); err != nil {
			return fmt.Errorf("replacing settings: %w", err)
		}
	}
	return nil
}

// ResetAll erases all three slots and re-seeds defaults.
func (r *Repository) ResetAll() error {
	for _, slot := range []string{SlotTasks, SlotCategories, SlotSettings} {
		if err := r.gateway.DeleteSlot(slot); err != nil {
			return fmt.Errorf("resetting %s: %w", slot, err)
		}
	}
	r.Seed()
	return nil
}
