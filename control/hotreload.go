// control/hotreload.go
// Manages global hot-reload hooks for config changes, plus a
// pool-specific reload binding that turns ConfigStore's
// KeySubmissionLocked entry into a live switch on a running pool.
// Adds a TriggerHotReloadSync for deterministic test notification.

package control

import "github.com/momentics/taskpool/pool"

var reloadHooks []func()

// RegisterReloadHook adds a new component reload listener.
func RegisterReloadHook(fn func()) {
	reloadHooks = append(reloadHooks, fn)
}

// TriggerHotReload dispatches all reload hooks asynchronously.
func TriggerHotReload() {
	for _, fn := range reloadHooks {
		go fn()
	}
}

// TriggerHotReloadSync invokes all reload hooks synchronously (for test determinism).
func TriggerHotReloadSync() {
	for _, fn := range reloadHooks {
		fn()
	}
}

// RegisterSubmissionLockReload wires cs's KeySubmissionLocked entry to
// p.SetSubmissionLock: after every SetConfig call, the reload listener
// sets the pool's submission lock to that key's current value. The
// listener runs in its own goroutine (see ConfigStore.dispatchReload),
// so the lock changes shortly after SetConfig returns, not before. Lets
// an operator pause new submissions by writing a bool through the
// ordinary config path instead of a pool-specific API.
func RegisterSubmissionLockReload(cs *ConfigStore, p *pool.Pool) {
	cs.OnReload(func() {
		snap := cs.GetSnapshot()
		if locked, ok := snap[KeySubmissionLocked].(bool); ok {
			p.SetSubmissionLock(locked)
		}
	})
}
