// File: api/control.go
// Package api defines the Control interface shared by the pool's
// ambient config/metrics/debug surface.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// Control manages a pool's dynamic config and runtime metrics. It is
// implemented by adapters.ControlAdapter, wiring control.ConfigStore,
// control.MetricsRegistry and control.DebugProbes together.
type Control interface {
	GetConfig() map[string]any
	SetConfig(cfg map[string]any) error
	Stats() map[string]any
	OnReload(fn func())
	RegisterDebugProbe(name string, fn func() any)
}
