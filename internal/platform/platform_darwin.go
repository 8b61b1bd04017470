//go:build darwin
// +build darwin

// File: internal/platform/platform_darwin.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Darwin Platform Adapter: maps Priority onto Apple's QoS classes via
// pthread_set_qos_class_self_np. Affinity pinning has no stable public
// API on Darwin, so it is a documented no-op.

package platform

/*
#include <pthread.h>
#include <pthread/qos.h>

static int tp_set_qos(int qos) {
    return pthread_set_qos_class_self_np((qos_class_t)qos, 0);
}
*/
import "C"

import (
	"log"
	"runtime"

	"github.com/momentics/taskpool/api"
)

const (
	qosUtility        = C.QOS_CLASS_UTILITY
	qosDefault        = C.QOS_CLASS_DEFAULT
	qosUserInitiated  = C.QOS_CLASS_USER_INITIATED
	qosUserInteractive = C.QOS_CLASS_USER_INTERACTIVE
)

func qosFor(p api.Priority) C.int {
	switch p {
	case api.PriorityLow:
		return C.int(qosUtility)
	case api.PriorityNormal:
		return C.int(qosDefault)
	case api.PriorityHigh:
		return C.int(qosUserInitiated)
	case api.PriorityCritical, api.PriorityTimeCritical:
		return C.int(qosUserInteractive)
	default:
		return C.int(qosDefault)
	}
}

func applyAffinity(attrs *api.ExecutionAttributes) {
	// No native per-thread affinity facility on Darwin; no-op.
}

func applyPriority(attrs *api.ExecutionAttributes) {
	if ret := C.tp_set_qos(qosFor(attrs.Priority())); ret != 0 {
		log.Printf("platform: pthread_set_qos_class_self_np failed: %d", ret)
	}
}

func numCPU() int {
	return runtime.NumCPU()
}
