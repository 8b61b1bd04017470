// control/config.go
// Author: momentics <momentics@gmail.com>
//
// Thread-safe configuration store with dynamic update and hot-reload
// propagation. Beyond the generic key/value store, this file seeds and
// names the pool's own control-surface tunables (worker count, queue
// caps, dispatch cadence, submission lock) so a pool's live
// configuration is visible and adjustable through the same
// GetSnapshot/SetConfig path as any other config value.

package control

import (
	"sync"
	"time"

	"github.com/momentics/taskpool/pool"
)

// ConfigStore is a dynamic key/value map with atomic snapshot and listener support.
type ConfigStore struct {
	mu        sync.RWMutex
	config    map[string]any
	listeners []func()
}

// NewConfigStore initializes a new config store with empty data.
func NewConfigStore() *ConfigStore {
	return &ConfigStore{
		config:    make(map[string]any),
		listeners: make([]func(), 0),
	}
}

// GetSnapshot returns a copy of all config values.
func (cs *ConfigStore) GetSnapshot() map[string]any {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	copy := make(map[string]any, len(cs.config))
	for k, v := range cs.config {
		copy[k] = v
	}
	return copy
}

// SetConfig merges new values and dispatches reload if needed.
func (cs *ConfigStore) SetConfig(newCfg map[string]any) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	for k, v := range newCfg {
		cs.config[k] = v
	}
	cs.dispatchReload()
}

// OnReload registers a listener hook called on config changes.
func (cs *ConfigStore) OnReload(fn func()) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.listeners = append(cs.listeners, fn)
}

// dispatchReload invokes all listeners.
func (cs *ConfigStore) dispatchReload() {
	for _, fn := range cs.listeners {
		go fn()
	}
}

// Pool tunable keys exposed through ConfigStore's GetSnapshot/SetConfig
// surface. KeySubmissionLocked is the only one of these that a SetConfig
// call can actually change a running pool's behavior through; the rest
// are informational, reflecting Properties as they stood at Create.
const (
	KeyMaxThreads       = "pool.max_threads"
	KeyMaxTasks         = "pool.max_tasks"
	KeyDispatchInterval = "pool.dispatch_interval_ms"
	KeySubmissionLocked = "pool.submission_locked"
)

// SeedPoolConfig populates cs with p's static tunables and the
// dispatcher's cycle interval, so GetSnapshot reflects the pool's
// actual construction-time configuration instead of an empty map.
// KeySubmissionLocked is seeded false; combine with
// RegisterSubmissionLockReload to make it a live switch.
func SeedPoolConfig(cs *ConfigStore, props pool.Properties, dispatchInterval time.Duration) {
	cs.SetConfig(map[string]any{
		KeyMaxThreads:       props.MaxThreads,
		KeyMaxTasks:         props.MaxTasks,
		KeyDispatchInterval: dispatchInterval.Milliseconds(),
		KeySubmissionLocked: false,
	})
}
