package models

import "time"

// Priority represents the urgency level of a task.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Valid reports whether p is one of the three known priority levels.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Rank returns the sort rank of a priority: high sorts before medium,
// medium before low. Unknown priorities sort last.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	}
	return 3
}

// Task represents a single tracked item. ID and CreatedAt are assigned once
// at creation and never change. Category holds a Category ID; the reference
// is not validated at write time, so a dangling reference is tolerated and
// resolved (or not) at display time.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Category    string     `json:"category"`
	Priority    Priority   `json:"priority"`
	DueDate     string     `json:"dueDate"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// TaskPatch carries the optional fields of a partial task update. Nil fields
// are left untouched; non-nil fields overwrite the stored value. The identity
// fields (ID, CreatedAt) are deliberately absent.
type TaskPatch struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Category    *string    `json:"category,omitempty"`
	Priority    *Priority  `json:"priority,omitempty"`
	DueDate     *string    `json:"dueDate,omitempty"`
	Completed   *bool      `json:"completed,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// TaskDraft carries the caller-settable fields of a new task. The identity
// fields (ID, CreatedAt, Completed, CompletedAt) are owned by the repository
// and cannot be pre-set.
type TaskDraft struct {
	Title       string
	Description string
	Category    string
	Priority    Priority
	DueDate     string
}

// CategoryDraft carries the caller-settable fields of a new category.
type CategoryDraft struct {
	Name  string
	Color string
}

// Category groups tasks for filtering. Name is unique across the collection
// under case-insensitive comparison. Color is a hex string used only for
// presentation.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}
