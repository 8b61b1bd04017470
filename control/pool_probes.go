// File: control/pool_probes.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Wires a *pool.Pool's queue emptiness, worker availability and
// worker-status histogram into DebugProbes/MetricsRegistry. Per-queue
// depths are not reported.

package control

import (
	"github.com/momentics/taskpool/api"
	"github.com/momentics/taskpool/pool"
)

// RegisterPoolProbes registers named introspection probes for p's
// worker-status histogram and queue occupancy.
func RegisterPoolProbes(dp *DebugProbes, p *pool.Pool) {
	dp.RegisterProbe("pool.workers.not_executing", func() any {
		return p.SpecificStatusCount(api.StatusNotExecuting)
	})
	dp.RegisterProbe("pool.workers.executing", func() any {
		return p.SpecificStatusCount(api.StatusExecuting)
	})
	dp.RegisterProbe("pool.workers.purging", func() any {
		return p.SpecificStatusCount(api.StatusPurging)
	})
	dp.RegisterProbe("pool.workers.pausing", func() any {
		return p.SpecificStatusCount(api.StatusPausing)
	})
	dp.RegisterProbe("pool.available", func() any {
		return p.AvailableCount()
	})
	dp.RegisterProbe("pool.empty", func() any {
		return p.IsEmpty()
	})
}

// SamplePoolMetrics writes a one-shot snapshot of p's state into mr.
// Intended to be called on a timer or from a hot-reload hook.
func SamplePoolMetrics(mr *MetricsRegistry, p *pool.Pool) {
	mr.Set("pool.available", p.AvailableCount())
	mr.Set("pool.any_working", p.AnyWorking())
	mr.Set("pool.is_empty", p.IsEmpty())
}
