// File: pool/dispatcher.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Dispatcher runs a periodic cycle that drains the pool's four queues
// in a fixed order — object-missed, object-primary, value-missed,
// value-primary — then promotes any Purging workers back to
// availability, on a ticker-driven loop that can be started and
// stopped cleanly.

package pool

import (
	"time"

	eapachequeue "github.com/eapache/queue"

	"github.com/momentics/taskpool/api"
	iqueue "github.com/momentics/taskpool/internal/queue"
)

// DefaultDispatchInterval is the nominal cycle period (10ms). Create
// always uses it; control.SeedPoolConfig reports it through
// control.ConfigStore, but changing that entry does not alter a running
// dispatcher.
const DefaultDispatchInterval = 10 * time.Millisecond

type dispatcher struct {
	pool     *Pool
	interval time.Duration
	stopCh   chan struct{}
	done     chan struct{}
}

func newDispatcher(p *Pool, interval time.Duration) *dispatcher {
	if interval <= 0 {
		interval = DefaultDispatchInterval
	}
	return &dispatcher{pool: p, interval: interval, stopCh: make(chan struct{}), done: make(chan struct{})}
}

func (d *dispatcher) start() {
	go d.run()
}

func (d *dispatcher) run() {
	defer close(d.done)
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()
	for {
		select {
		case <-d.stopCh:
			return
		case <-ticker.C:
			d.cycle()
		}
	}
}

func (d *dispatcher) stop() {
	select {
	case <-d.stopCh:
		// already stopped
	default:
		close(d.stopCh)
	}
	<-d.done
}

// cycle runs one full drain-and-promote pass. The pool mutex is held
// for the whole cycle: every operation inside is pointer/slot
// bookkeeping, not task execution, so holding it briefly never blocks
// on a worker actually running a task (see DESIGN.md).
func (d *dispatcher) cycle() {
	p := d.pool
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.shutdown {
		return
	}

	drainMissed(p.objectMissed, d.placeObjectLocked)
	drainPrimary(p.objectPrimary, p.objectMissed, d.placeObjectLocked)
	drainMissed(p.valueMissed, d.placeValueLocked)
	drainPrimary(p.valuePrimary, p.valueMissed, d.placeValueLocked)

	d.promotePurgingLocked()
}

func (d *dispatcher) placeObjectLocked(t api.ObjectTask) bool {
	w := d.pool.availableWorkerLocked()
	if w == nil {
		return false
	}
	w.AssignObject(t)
	return true
}

func (d *dispatcher) placeValueLocked(t api.ValueTask) bool {
	w := d.pool.availableWorkerLocked()
	if w == nil {
		return false
	}
	w.AssignValue(t)
	return true
}

// drainPrimary drains a primary queue in FIFO (oldest-first) order.
// Placed entries are removed; entries that fail to place are moved to
// the front of the corresponding missed queue.
func drainPrimary[T any](primary, missed *iqueue.Deque[T], place func(T) bool) {
	n := primary.Len()
	for i := 0; i < n; i++ {
		v, ok := primary.PopBack()
		if !ok {
			return
		}
		if !place(v) {
			missed.PushFront(v)
		}
	}
}

// drainMissed drains a missed queue, removing only entries that get
// placed this cycle; entries that still can't be placed are left in
// place, preserving their relative order among themselves.
func drainMissed[T any](missed *iqueue.Deque[T], place func(T) bool) {
	n := missed.Len()
	var leftover []T
	for i := 0; i < n; i++ {
		v, ok := missed.PopBack()
		if !ok {
			break
		}
		if !place(v) {
			leftover = append(leftover, v)
		}
	}
	// Re-insert newest-first so the oldest leftover ends up at the back
	// again and is popped first next cycle.
	for i := len(leftover) - 1; i >= 0; i-- {
		missed.PushBack(leftover[i])
	}
}

// promotePurgingLocked promotes every worker observed Purging back to
// NotExecuting. The staging FIFO
// (github.com/eapache/queue) collects the Purging workers from this
// scan before promoting them, giving the pool a consistent snapshot to
// act on even as workers continue mutating their own status
// concurrently outside the pool mutex.
func (d *dispatcher) promotePurgingLocked() {
	staging := eapachequeue.New()
	for _, w := range d.pool.workers {
		if w.Status() == api.StatusPurging {
			staging.Add(w)
		}
	}
	for staging.Length() > 0 {
		w := staging.Remove().(*Worker)
		w.setStatus(api.StatusNotExecuting)
	}
}
