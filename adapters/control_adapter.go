// Package adapters
// Author: momentics <momentics@gmail.com>
//
// Control adapter implementing api.Control against control package
// primitives, with an optional binding to a *pool.Pool so config,
// metrics and debug probes all observe the same pool instance.

package adapters

import (
	"github.com/momentics/taskpool/api"
	"github.com/momentics/taskpool/control"
	"github.com/momentics/taskpool/pool"
)

type ControlAdapter struct {
	config  *control.ConfigStore
	metrics *control.MetricsRegistry
	debug   *control.DebugProbes
}

func NewControlAdapter() api.Control {
	adapter := &ControlAdapter{
		config:  control.NewConfigStore(),
		metrics: control.NewMetricsRegistry(),
		debug:   control.NewDebugProbes(),
	}
	control.RegisterPlatformProbes(adapter.debug)
	return adapter
}

// NewControlAdapterForPool builds a ControlAdapter whose debug probes and
// metrics snapshot are pre-wired to p's worker-status histogram and
// queue occupancy, in addition to the generic platform probes.
func NewControlAdapterForPool(p *pool.Pool) api.Control {
	adapter := &ControlAdapter{
		config:  control.NewConfigStore(),
		metrics: control.NewMetricsRegistry(),
		debug:   control.NewDebugProbes(),
	}
	control.RegisterPlatformProbes(adapter.debug)
	control.RegisterPoolProbes(adapter.debug, p)
	control.SamplePoolMetrics(adapter.metrics, p)
	control.SeedPoolConfig(adapter.config, p.Properties(), pool.DefaultDispatchInterval)
	control.RegisterSubmissionLockReload(adapter.config, p)
	return adapter
}

func (c *ControlAdapter) GetConfig() map[string]any {
	return c.config.GetSnapshot()
}
func (c *ControlAdapter) SetConfig(cfg map[string]any) error {
	c.config.SetConfig(cfg)
	return nil
}

// Stats merges the config snapshot, collected metrics, and debug probe
// output into one map, prefixing debug entries with "debug." to avoid
// key collisions with config/metric names.
func (c *ControlAdapter) Stats() map[string]any {
	combined := make(map[string]any)
	for k, v := range c.config.GetSnapshot() {
		combined[k] = v
	}
	for k, v := range c.metrics.GetSnapshot() {
		combined[k] = v
	}
	for k, v := range c.debug.DumpState() {
		combined["debug."+k] = v
	}
	return combined
}
func (c *ControlAdapter) OnReload(fn func()) {
	c.config.OnReload(fn)
	control.RegisterReloadHook(fn)
}
func (c *ControlAdapter) SetMetric(key string, value any) {
	c.metrics.Set(key, value)
}
func (c *ControlAdapter) RegisterDebugProbe(name string, fn func() any) {
	c.debug.RegisterProbe(name, fn)
}
