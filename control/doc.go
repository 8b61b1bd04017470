// Package control is taskpool's ambient config/metrics/debug layer:
// pool tunables (of which only the submission lock is adjustable at
// runtime), queue-emptiness and worker-status gauges, and named
// introspection probes.
//
// Provides concurrent-safe state handling primitives including:
//   - Immutable snapshot config reads and atomic updates
//   - Runtime observers for hot-reload
//   - Metrics telemetry contracts
//   - State export, debug hooks, and probe registration
//
// This package is cross-platform and build-tag-partitioned as needed.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
package control
