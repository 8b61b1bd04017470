//go:build windows
// +build windows

// File: internal/platform/platform_windows.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Windows Platform Adapter: applies thread affinity, ideal processor,
// and priority through lazily-bound kernel32 procedures.

package platform

import (
	"log"
	"runtime"

	"golang.org/x/sys/windows"

	"github.com/momentics/taskpool/api"
)

var (
	modkernel32                  = windows.NewLazySystemDLL("kernel32.dll")
	procSetThreadAffinityMask    = modkernel32.NewProc("SetThreadAffinityMask")
	procSetThreadIdealProcessor  = modkernel32.NewProc("SetThreadIdealProcessor")
	procSetThreadPriority        = modkernel32.NewProc("SetThreadPriority")
	procGetCurrentThread         = modkernel32.NewProc("GetCurrentThread")
)

const (
	threadPriorityLowest      = -2
	threadPriorityBelowNormal = -1
	threadPriorityNormal      = 0
	threadPriorityAboveNormal = 1
	threadPriorityHighest     = 2
	threadPriorityTimeCritical = 15
)

func currentThreadHandle() uintptr {
	h, _, _ := procGetCurrentThread.Call()
	return h
}

func applyAffinity(attrs *api.ExecutionAttributes) {
	handle := currentThreadHandle()
	switch attrs.AffinityMode() {
	case api.AffinityHard:
		mask := attrs.AffinityMask()
		if mask == 0 {
			return
		}
		if old, _, err := procSetThreadAffinityMask.Call(handle, uintptr(mask)); old == 0 {
			log.Printf("platform: SetThreadAffinityMask failed: %v", err)
		}
	case api.AffinitySoft:
		core := attrs.IdealCore()
		if core < 0 {
			return
		}
		if old, _, err := procSetThreadIdealProcessor.Call(handle, uintptr(core)); old == 0xFFFFFFFF {
			log.Printf("platform: SetThreadIdealProcessor failed: %v", err)
		}
	case api.AffinityUndefined:
		// no-op
	}
}

func winPriorityFor(p api.Priority) int {
	switch p {
	case api.PriorityLow:
		return threadPriorityLowest
	case api.PriorityNormal:
		return threadPriorityNormal
	case api.PriorityHigh:
		return threadPriorityAboveNormal
	case api.PriorityCritical:
		return threadPriorityHighest
	case api.PriorityTimeCritical:
		return threadPriorityTimeCritical
	default:
		return threadPriorityNormal
	}
}

func applyPriority(attrs *api.ExecutionAttributes) {
	handle := currentThreadHandle()
	if ok, _, err := procSetThreadPriority.Call(handle, uintptr(winPriorityFor(attrs.Priority()))); ok == 0 {
		log.Printf("platform: SetThreadPriority failed: %v", err)
	}
}

func numCPU() int {
	return runtime.NumCPU()
}
