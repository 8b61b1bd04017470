//go:build linux
// +build linux

// File: internal/platform/platform_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux Platform Adapter: golang.org/x/sys/unix SchedSetaffinity for
// affinity, Setpriority (nice value) for priority — a pure-Go sibling
// to the Windows adapter, no cgo required. See DESIGN.md for why nice
// values stand in for pthread_setschedparam on SCHED_OTHER.

package platform

import (
	"log"

	"golang.org/x/sys/unix"

	"github.com/momentics/taskpool/api"
)

func applyAffinity(attrs *api.ExecutionAttributes) {
	switch attrs.AffinityMode() {
	case api.AffinityHard:
		mask := attrs.AffinityMask()
		if mask == 0 {
			return
		}
		var set unix.CPUSet
		set.Zero()
		for i := 0; i < 64; i++ {
			if mask&(uint64(1)<<uint(i)) != 0 {
				set.Set(i)
			}
		}
		if err := unix.SchedSetaffinity(0, &set); err != nil {
			log.Printf("platform: SchedSetaffinity failed: %v", err)
		}
	case api.AffinitySoft:
		core := attrs.IdealCore()
		if core < 0 {
			return
		}
		var set unix.CPUSet
		set.Zero()
		set.Set(core)
		if err := unix.SchedSetaffinity(0, &set); err != nil {
			log.Printf("platform: SchedSetaffinity(soft) failed: %v", err)
		}
	case api.AffinityUndefined:
		// no-op
	}
}

// niceFor maps a Priority onto Linux nice values (lower is higher
// priority); SCHED_OTHER has no static priority range
// (sched_get_priority_min/max both return 0), so nice is the practical
// analogue rather than pthread_setschedparam.
func niceFor(p api.Priority) int {
	switch p {
	case api.PriorityLow:
		return 19
	case api.PriorityNormal:
		return 0
	case api.PriorityHigh:
		return -10
	case api.PriorityCritical:
		return -15
	case api.PriorityTimeCritical:
		return -20
	default:
		return 0
	}
}

func applyPriority(attrs *api.ExecutionAttributes) {
	tid := unix.Gettid()
	if err := unix.Setpriority(unix.PRIO_PROCESS, tid, niceFor(attrs.Priority())); err != nil {
		log.Printf("platform: Setpriority failed: %v", err)
	}
}

// numCPU returns the number of schedulable CPUs visible to this
// process, honoring cgroup/taskset restrictions where the generic
// runtime.NumCPU would not.
func numCPU() int {
	var set unix.CPUSet
	if err := unix.SchedGetaffinity(0, &set); err != nil {
		return 0
	}
	return set.Count()
}
