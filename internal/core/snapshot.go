package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"taskdeck/pkg/models"
)

// ErrMalformedSnapshot is returned when an import payload cannot be parsed
// as the expected snapshot shape.
var ErrMalformedSnapshot = errors.New("malformed snapshot document")

// ExportSnapshot serializes the full repository state into a self-describing
// snapshot document.
func ExportSnapshot(store Store, now func() time.Time) (string, error) {
	snap := models.Snapshot{
		Tasks:      store.ListTasks(),
		Categories: store.ListCategories(),
		Settings:   settingsPtr(store.GetSettings()),
		ExportDate: now().Format(time.RFC3339),
		Version:    models.SnapshotVersion,
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("exporting snapshot: %w", err)
	}
	return string(data), nil
}

func settingsPtr(s models.Settings) *models.Settings {
	return &s
}

// snapshotShape is the import-side decoding of a snapshot. Pointer slices
// distinguish an absent field from an empty array.
type snapshotShape struct {
	Tasks      *[]models.Task     `json:"tasks"`
	Categories *[]models.Category `json:"categories"`
	Settings   *models.Settings   `json:"settings"`
	Version    string             `json:"version"`
}

// ImportSnapshot validates the payload's structural shape and overwrites the
// repository. Tasks and categories must be present or the import fails with
// no mutation; settings are only replaced when the document carries them.
// Individual records are not validated beyond their structural decoding, and
// the version tag is carried but not enforced.
func ImportSnapshot(store Store, text string) error {
	var shape snapshotShape
	if err := json.Unmarshal([]byte(text), &shape); err != nil {
		return fmt.Errorf("importing snapshot: %w: %v", ErrMalformedSnapshot, err)
	}
	if shape.Tasks == nil || shape.Categories == nil {
		return fmt.Errorf("importing snapshot: missing tasks or categories: %w", ErrMalformedSnapshot)
	}
	if err := store.ReplaceAll(*shape.Tasks, *shape.Categories, shape.Settings); err != nil {
		return fmt.Errorf("importing snapshot: %w", err)
	}
	return nil
}
