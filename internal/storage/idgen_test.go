package storage

import (
	"strings"
	"testing"
	"time"
)

func TestIDGeneratorFormat(t *testing.T) {
	gen, err := NewIDGenerator()
	if err != nil {
		t.Fatalf("NewIDGenerator failed: %v", err)
	}

	id := gen.NewID("task")
	parts := strings.Split(id, "_")
	if len(parts) != 3 {
		t.Fatalf("id %q does not have prefix_millis_suffix shape", id)
	}
	if parts[0] != "task" {
		t.Errorf("prefix = %q, want task", parts[0])
	}
	if len(parts[2]) != 8 {
		t.Errorf("suffix %q length = %d, want 8", parts[2], len(parts[2]))
	}
}

func TestIDGeneratorUniqueWithinSameMillisecond(t *testing.T) {
	gen, err := NewIDGenerator()
	if err != nil {
		t.Fatalf("NewIDGenerator failed: %v", err)
	}
	// Freeze the clock so every ID shares the timestamp component.
	frozen := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	gen.(*nanoIDGenerator).now = func() time.Time { return frozen }

	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		id := gen.NewID("task")
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %q at call %d", id, i+1)
		}
		seen[id] = struct{}{}
	}
}
