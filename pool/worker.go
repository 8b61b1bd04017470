// File: pool/worker.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Worker is the per-thread state machine: a goroutine locked to its
// own OS thread, with a small mutex-guarded pair of next/current slots
// and plain int pending-change counters in place of the atomic counters
// a lock-free pointer-handoff design would use. A plain mutex keeps the critical
// section race-detector-safe without relying on implicit ordering
// between a pointer store and an atomic counter.

package pool

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/momentics/taskpool/api"
	"github.com/momentics/taskpool/internal/platform"
)

// Worker owns one OS thread (via runtime.LockOSThread) and runs a
// cooperative event loop: wait for an assignment, run it, then go
// idle until resumed or terminated.
type Worker struct {
	id int

	status atomic.Int32 // api.Status, read lock-free by Pool's hot paths

	mu            sync.Mutex
	nextObject    api.ObjectTask
	currentObject api.ObjectTask
	pendingObject int
	nextValue     api.ValueTask
	currentValue  api.ValueTask
	pendingValue  int

	suspendMu   sync.Mutex
	suspendCond *sync.Cond
	suspended   bool

	stopRequested atomic.Bool
	done          chan struct{}
}

func newWorker(id int) *Worker {
	w := &Worker{id: id, suspended: true, done: make(chan struct{})}
	w.suspendCond = sync.NewCond(&w.suspendMu)
	w.status.Store(int32(api.StatusNotExecuting))
	return w
}

// start launches the worker's event-loop goroutine. Called once, by
// Pool.Create.
func (w *Worker) start() {
	go w.loop()
}

// loop is the worker's main event loop.
func (w *Worker) loop() {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer close(w.done)

	for {
		if w.stopRequested.Load() {
			return
		}

		w.mu.Lock()
		if w.pendingObject != 0 {
			w.currentObject = w.nextObject
			w.nextObject = nil
			w.pendingObject--
		}
		if w.pendingValue != 0 {
			w.currentValue = w.nextValue
			w.nextValue = api.ValueTask{}
			w.pendingValue--
		}
		obj := w.currentObject
		val := w.currentValue
		w.mu.Unlock()

		// Object tasks are served before value tasks when a worker
		// wakes with both pending.
		switch {
		case obj != nil:
			platform.Apply(obj.Attributes())
			obj.Run()
			w.mu.Lock()
			w.currentObject = nil
			w.mu.Unlock()
			w.status.Store(int32(api.StatusPurging))
		case !val.IsZero():
			if val.Func.Attrs != nil {
				platform.Apply(val.Func.Attrs)
			}
			val.Func.Call(val.Arg, val.Delete)
			w.mu.Lock()
			w.currentValue = api.ValueTask{}
			w.mu.Unlock()
			w.status.Store(int32(api.StatusPurging))
		}

		w.suspendMu.Lock()
		w.suspended = true
		for w.suspended && !w.stopRequested.Load() {
			w.suspendCond.Wait()
		}
		stop := w.stopRequested.Load()
		w.suspendMu.Unlock()
		if stop {
			return
		}
	}
}

// Status returns the worker's current lifecycle state.
func (w *Worker) Status() api.Status { return api.Status(w.status.Load()) }

// setStatus is used only by the Dispatcher to promote Purging workers
// back to NotExecuting (always under Pool.mu — see dispatcher.go), by
// Pool.Pause to surface the Pausing state explicitly, and by
// Pool.Resume to set Executing again.
func (w *Worker) setStatus(s api.Status) { w.status.Store(int32(s)) }

// AssignObject hands obj to the worker: set the next-object slot,
// bump its pending counter, mark Executing, and wake the suspend
// latch.
func (w *Worker) AssignObject(obj api.ObjectTask) {
	w.mu.Lock()
	w.nextObject = obj
	w.pendingObject++
	w.mu.Unlock()
	w.status.Store(int32(api.StatusExecuting))
	w.Resume()
}

// AssignValue hands t to the worker the same way AssignObject does.
func (w *Worker) AssignValue(t api.ValueTask) {
	w.mu.Lock()
	w.nextValue = t
	w.pendingValue++
	w.mu.Unlock()
	w.status.Store(int32(api.StatusExecuting))
	w.Resume()
}

// CurrentObject returns the object task this worker is currently
// running, or about to run (already assigned but not yet picked up by
// the loop) — the identity Pool.Pause/Resume/Terminate/Status compare
// handles against.
func (w *Worker) CurrentObject() api.ObjectTask {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.currentObject != nil {
		return w.currentObject
	}
	return w.nextObject
}

// Suspend requests suspension without blocking; the worker observes
// it at the next loop-top after its current task finishes.
func (w *Worker) Suspend() {
	w.suspendMu.Lock()
	w.suspended = true
	w.suspendMu.Unlock()
}

// Resume clears the suspend flag and wakes the latch.
func (w *Worker) Resume() {
	w.suspendMu.Lock()
	w.suspended = false
	w.suspendMu.Unlock()
	w.suspendCond.Broadcast()
}

// Terminate requests stop, wakes the latch, and joins the goroutine.
// Safe to call more than once.
func (w *Worker) Terminate() {
	if !w.stopRequested.CompareAndSwap(false, true) {
		<-w.done
		return
	}
	w.suspendMu.Lock()
	w.suspended = false
	w.suspendMu.Unlock()
	w.suspendCond.Broadcast()
	<-w.done
}
