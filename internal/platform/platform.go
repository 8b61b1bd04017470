// File: internal/platform/platform.go
// Package platform implements taskpool's Platform Adapter: the
// OS-specific application of priority and affinity to the calling
// worker's own OS thread.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
package platform

import (
	"runtime"

	"github.com/momentics/taskpool/api"
)

// NumCPU returns the number of logical CPUs available to this process,
// used by ExecutionAttributes.ComputeAffinityMask as the hardware-
// concurrency bound.
func NumCPU() int {
	if n := numCPU(); n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// Apply applies attrs to the calling goroutine's locked OS thread.
// Callers must have already called runtime.LockOSThread — taskpool's
// Worker does this once for its entire lifetime, so every Apply call
// acts on "the calling thread."
//
// Failures from the OS are swallowed; attribute application is
// best-effort and must never fail the caller's dispatch.
func Apply(attrs *api.ExecutionAttributes) {
	if attrs == nil {
		return
	}
	applyAffinity(attrs)
	applyPriority(attrs)
}
