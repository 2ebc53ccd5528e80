// Package storage contains the persistence layer: the string-only key-value
// backends, the slot gateway with its degraded mode, and the typed repository
// over the three persisted slots.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// KVStore is a synchronous, string-only key-value store. Implementations must
// treat keys as opaque and report a missing key via the bool return, not an
// error.
type KVStore interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error
	Close() error
}

type fileKV struct {
	dir string
}

// NewFileKV creates a KVStore that keeps one file per key under
// dir/slots/. Keys are restricted to filename-safe characters by the
// callers (the gateway owns all key names).
func NewFileKV(dir string) KVStore {
	return &fileKV{dir: filepath.Join(dir, "slots")}
}

func (s *fileKV) keyPath(key string) string {
	// Gateway keys never contain separators; flatten any that slip through.
	safe := strings.ReplaceAll(key, string(os.PathSeparator), "_")
	return filepath.Join(s.dir, safe)
}

func (s *fileKV) Get(key string) (string, bool, error) {
	data, err := os.ReadFile(s.keyPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("reading key %s: %w", key, err)
	}
	return string(data), true, nil
}

func (s *fileKV) Set(key, value string) error {
	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return fmt.Errorf("creating slots directory: %w", err)
	}
	tmp := s.keyPath(key) + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), 0o600); err != nil {
		return fmt.Errorf("writing key %s: %w", key, err)
	}
	if err := os.Rename(tmp, s.keyPath(key)); err != nil {
		return fmt.Errorf("writing key %s: %w", key, err)
	}
	return nil
}

func (s *fileKV) Delete(key string) error {
	if err := os.Remove(s.keyPath(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("deleting key %s: %w", key, err)
	}
	return nil
}

func (s *fileKV) Close() error { return nil }
