//go:build !linux && !windows && !darwin
// +build !linux,!windows,!darwin

// File: internal/platform/platform_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Stub Platform Adapter for platforms without a supported native
// facility, adapted from affinity/affinity_stub.go /
// internal/concurrency/affinity_stub.go. Attribute application is a
// documented no-op here.

package platform

import (
	"runtime"

	"github.com/momentics/taskpool/api"
)

func applyAffinity(attrs *api.ExecutionAttributes) {}

func applyPriority(attrs *api.ExecutionAttributes) {}

func numCPU() int {
	return runtime.NumCPU()
}
