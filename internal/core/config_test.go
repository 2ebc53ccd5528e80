package core

import (
	"os"
	"path/filepath"
	"testing"

	"taskdeck/pkg/models"
)

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cm := NewConfigManager(t.TempDir())
	cfg, err := cm.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Backend != models.BackendFile {
		t.Errorf("backend = %q, want file", cfg.Backend)
	}
	if !cfg.EventLog {
		t.Error("event log not enabled by default")
	}
	if cfg.EventLogBudget != 20 {
		t.Errorf("event log budget = %d, want 20", cfg.EventLogBudget)
	}
}

func TestLoadConfigReadsFile(t *testing.T) {
	dir := t.TempDir()
	content := "backend: sqlite\nevent_log: false\n"
	if err := os.WriteFile(filepath.Join(dir, ".taskdeckrc"), []byte(content), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := NewConfigManager(dir).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Backend != models.BackendSQLite {
		t.Errorf("backend = %q, want sqlite", cfg.Backend)
	}
	if cfg.EventLog {
		t.Error("event_log: false not honored")
	}
	// Unset keys keep their defaults.
	if cfg.EventLogBudget != 20 {
		t.Errorf("event log budget = %d, want default 20", cfg.EventLogBudget)
	}
}

func TestLoadConfigRejectsUnknownBackend(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".taskdeckrc"), []byte("backend: redis\n"), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	if _, err := NewConfigManager(dir).Load(); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}

func TestWriteDefaultConfig(t *testing.T) {
	dir := t.TempDir()
	cm := NewConfigManager(dir)

	path, err := cm.WriteDefault()
	if err != nil {
		t.Fatalf("WriteDefault failed: %v", err)
	}
	if filepath.Base(path) != ".taskdeckrc" {
		t.Errorf("path = %s", path)
	}

	// The written file must load back cleanly.
	cfg, err := cm.Load()
	if err != nil {
		t.Fatalf("Load after WriteDefault failed: %v", err)
	}
	if cfg.Backend != models.BackendFile {
		t.Errorf("backend = %q", cfg.Backend)
	}

	// A second WriteDefault leaves the existing file alone.
	if err := os.WriteFile(path, []byte("backend: sqlite\n"), 0o600); err != nil {
		t.Fatalf("overwriting config: %v", err)
	}
	if _, err := cm.WriteDefault(); err != nil {
		t.Fatalf("second WriteDefault failed: %v", err)
	}
	cfg, err = cm.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Backend != models.BackendSQLite {
		t.Error("WriteDefault clobbered an existing config")
	}
}
