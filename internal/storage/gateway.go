package storage

import (
	"errors"
	"fmt"
)

// Slot names owned by the gateway. Every persisted value lives under one of
// these three keys.
const (
	SlotTasks      = "taskdeck_tasks"
	SlotCategories = "taskdeck_categories"
	SlotSettings   = "taskdeck_settings"
)

// probeKey is the private key written and deleted to confirm the backing
// store is usable.
const probeKey = "taskdeck_probe"

// ErrStorageUnavailable is returned by writes while the gateway is degraded.
var ErrStorageUnavailable = errors.New("backing store unavailable")

// Gateway wraps a KVStore and owns the three named slots. When the probe at
// construction fails the gateway enters degraded mode for the lifetime of the
// handle: reads report absent, writes fail with ErrStorageUnavailable, and
// callers fall back to in-memory defaults for the rest of the session.
type Gateway struct {
	store    KVStore
	degraded bool
}

// NewGateway probes store for writability and returns the gateway. A probe
// failure is not an error; the returned gateway is degraded and Degraded()
// reports true so the caller can surface a warning once.
func NewGateway(store KVStore) *Gateway {
	g := &Gateway{store: store}
	if err := g.probe(); err != nil {
		g.degraded = true
	}
	return g
}

func (g *Gateway) probe() error {
	if err := g.store.Set(probeKey, "1"); err != nil {
		return fmt.Errorf("probing store: %w", err)
	}
	if err := g.store.Delete(probeKey); err != nil {
		return fmt.Errorf("probing store: %w", err)
	}
	return nil
}

// Degraded reports whether the gateway is running in-memory-only.
func (g *Gateway) Degraded() bool {
	return g.degraded
}

// ReadSlot returns a slot's raw text. Absent slots, read failures and
// degraded mode all report ok=false; the repository substitutes the slot's
// default value in every one of those cases.
func (g *Gateway) ReadSlot(name string) (string, bool) {
	if g.degraded {
		return "", false
	}
	value, ok, err := g.store.Get(name)
	if err != nil {
		return "", false
	}
	return value, ok
}

// WriteSlot persists a slot's raw text. A failed write (including capacity
// exhaustion in the backing store) is reported, never retried.
func (g *Gateway) WriteSlot(name, text string) error {
	if g.degraded {
		return ErrStorageUnavailable
	}
	if err := g.store.Set(name, text); err != nil {
		return fmt.Errorf("writing slot %s: %w", name, err)
	}
	return nil
}

// DeleteSlot removes a slot entirely. Used only by the reset operation.
func (g *Gateway) DeleteSlot(name string) error {
	if g.degraded {
		return ErrStorageUnavailable
	}
	if err := g.store.Delete(name); err != nil {
		return fmt.Errorf("deleting slot %s: %w", name, err)
	}
	return nil
}

// Close releases the backing store.
func (g *Gateway) Close() error {
	return g.store.Close()
}
