// Package pool implements the cross-platform worker-thread pool: the
// Worker state machine, the four submission queues, the periodic
// Dispatcher, and the Pool control surface. Each worker runs as a
// goroutine locked to its OS thread, suspension is channel/condvar
// based, and a single pool-wide mutex guards worker membership and the
// queues.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
package pool
