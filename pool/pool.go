// File: pool/pool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Pool is the thread pool's control surface. The pool mutex guards
// worker membership, the four queues, properties, and the shutdown
// flag, held briefly and never across task execution — except in
// TerminateAll/Shutdown, which intentionally hold it across each
// worker's join.

package pool

import (
	"sync"
	"time"

	"github.com/momentics/taskpool/api"
	iqueue "github.com/momentics/taskpool/internal/queue"
	"github.com/momentics/taskpool/argpool"
)

// waitPollInterval bounds Pool.Wait's polling granularity.
const waitPollInterval = 100 * time.Millisecond

// Pool owns a bounded set of Workers and the four submission queues.
// The zero value is not usable; construct with Create.
type Pool struct {
	mu sync.Mutex

	workers []*Worker

	objectPrimary *iqueue.Deque[api.ObjectTask]
	objectMissed  *iqueue.Deque[api.ObjectTask]
	valuePrimary  *iqueue.Deque[api.ValueTask]
	valueMissed   *iqueue.Deque[api.ValueTask]

	props            Properties
	submissionLocked bool
	shutdown         bool

	dispatcher *dispatcher
	args       argpool.ArgPool
}

// ArgPool returns this Pool's own argument-buffer recycling pool (one
// per Pool, not a process-wide singleton).
func (p *Pool) ArgPool() argpool.ArgPool { return p.args }

// Properties returns a copy of the pool's static configuration.
func (p *Pool) Properties() Properties {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.props
}

// SubmitValue submits a value task to the primary value queue. Fails
// fast (returns false, no state change) when shut down, locked, or at
// capacity.
func (p *Pool) SubmitValue(t api.ValueTask) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.shutdown || p.submissionLocked {
		return false
	}
	if p.valuePrimary.Len() > p.props.MaxTasks {
		return false
	}
	p.valuePrimary.PushFront(t)
	return true
}

// SubmitObject submits an object task to the primary object queue,
// under the same fail-fast conditions as SubmitValue.
func (p *Pool) SubmitObject(t api.ObjectTask) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.shutdown || p.submissionLocked {
		return false
	}
	if p.objectPrimary.Len() > p.props.MaxTasks {
		return false
	}
	p.objectPrimary.PushFront(t)
	return true
}

// SetSubmissionLock blocks (or unblocks) new submissions without
// touching in-flight work.
func (p *Pool) SetSubmissionLock(on bool) {
	p.mu.Lock()
	p.submissionLocked = on
	p.mu.Unlock()
}

// availableWorkerLocked returns the first NotExecuting worker in
// insertion order. Callers must hold p.mu.
func (p *Pool) availableWorkerLocked() *Worker {
	for _, w := range p.workers {
		if w.Status() == api.StatusNotExecuting {
			return w
		}
	}
	return nil
}

// AvailableWorker scans workers in insertion order and returns the
// first NotExecuting one; when remove is true it is also excised from
// the pool (handed out to an external owner).
func (p *Pool) AvailableWorker(remove bool) *Worker {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, w := range p.workers {
		if w.Status() == api.StatusNotExecuting {
			if remove {
				p.workers = append(p.workers[:i:i], p.workers[i+1:]...)
			}
			return w
		}
	}
	return nil
}

// AvailableCount counts workers whose status is NotExecuting or
// Purging (purging workers are idle-reusable after the next
// dispatcher cycle).
func (p *Pool) AvailableCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, w := range p.workers {
		if s := w.Status(); s == api.StatusNotExecuting || s == api.StatusPurging {
			n++
		}
	}
	return n
}

// SpecificStatusCount counts workers whose status equals s.
func (p *Pool) SpecificStatusCount(s api.Status) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, w := range p.workers {
		if w.Status() == s {
			n++
		}
	}
	return n
}

// IsEmpty reports whether all four queues are empty.
func (p *Pool) IsEmpty() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.objectPrimary.Len() == 0 && p.objectMissed.Len() == 0 &&
		p.valuePrimary.Len() == 0 && p.valueMissed.Len() == 0
}

// AnyWorking reports whether any worker's status is not NotExecuting.
func (p *Pool) AnyWorking() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, w := range p.workers {
		if w.Status() != api.StatusNotExecuting {
			return true
		}
	}
	return false
}

// SuspendAll sets the submission lock and suspends every non-idle
// worker.
func (p *Pool) SuspendAll() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.submissionLocked = true
	for _, w := range p.workers {
		if w.Status() != api.StatusNotExecuting {
			w.Suspend()
		}
	}
}

// ResumeAll resumes every non-idle worker. It does not clear the
// submission lock set by SuspendAll.
func (p *Pool) ResumeAll() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, w := range p.workers {
		if w.Status() != api.StatusNotExecuting {
			w.Resume()
		}
	}
}

// TerminateAll sets the submission lock, then terminates every
// non-idle worker, joining each before returning.
func (p *Pool) TerminateAll() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.submissionLocked = true
	for _, w := range p.workers {
		if w.Status() != api.StatusNotExecuting {
			w.Terminate()
		}
	}
}

func (p *Pool) findWorkerByHandleLocked(handle api.ObjectTask) *Worker {
	for _, w := range p.workers {
		if w.CurrentObject() == handle {
			return w
		}
	}
	return nil
}

// Pause suspends the worker currently running handle, if any, and
// sets its status to Pausing. A no-op if no worker
// owns handle.
func (p *Pool) Pause(handle api.ObjectTask) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if w := p.findWorkerByHandleLocked(handle); w != nil {
		w.Suspend()
		w.setStatus(api.StatusPausing)
	}
}

// Resume resumes the worker currently running handle, if any.
func (p *Pool) Resume(handle api.ObjectTask) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if w := p.findWorkerByHandleLocked(handle); w != nil {
		w.setStatus(api.StatusExecuting)
		w.Resume()
	}
}

// Terminate terminates the worker currently running handle, if any.
func (p *Pool) Terminate(handle api.ObjectTask) {
	p.mu.Lock()
	w := p.findWorkerByHandleLocked(handle)
	p.mu.Unlock()
	if w != nil {
		w.Terminate()
	}
}

// Status returns the status of the worker currently running handle,
// or StatusNone if no worker owns it.
func (p *Pool) Status(handle api.ObjectTask) api.Status {
	p.mu.Lock()
	defer p.mu.Unlock()
	if w := p.findWorkerByHandleLocked(handle); w != nil {
		return w.Status()
	}
	return api.StatusNone
}

// Wait polls for handle's worker to become NotExecuting. It returns
// WaitComplete both when the handle has finished and when no worker
// ever owned it (an intentionally-preserved ambiguity — see
// DESIGN.md), WaitTimeout once timeoutMs elapses, and never
// WaitInternalError (reserved for conditions this implementation
// cannot encounter). Pass api.WaitIndefinite to wait forever.
func (p *Pool) Wait(handle api.ObjectTask, timeoutMs uint32) api.WaitResult {
	start := time.Now()
	indefinite := timeoutMs == api.WaitIndefinite
	deadline := start.Add(time.Duration(timeoutMs) * time.Millisecond)

	for {
		p.mu.Lock()
		w := p.findWorkerByHandleLocked(handle)
		if w == nil {
			p.mu.Unlock()
			return api.WaitComplete
		}
		if w.Status() == api.StatusNotExecuting {
			p.mu.Unlock()
			return api.WaitComplete
		}
		p.mu.Unlock()

		if !indefinite && !time.Now().Before(deadline) {
			return api.WaitTimeout
		}

		sleep := waitPollInterval
		if !indefinite {
			if remaining := time.Until(deadline); remaining < sleep {
				sleep = remaining
			}
		}
		if sleep > 0 {
			time.Sleep(sleep)
		}
	}
}

// Shutdown stops the dispatcher, terminates every worker, and clears
// all queues. Idempotent: calling it twice has the same effect as
// once.
func (p *Pool) Shutdown() error {
	p.dispatcher.stop()

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.shutdown {
		return nil
	}
	p.shutdown = true
	for _, w := range p.workers {
		w.Terminate()
	}
	p.workers = nil
	p.objectPrimary.Clear()
	p.objectMissed.Clear()
	p.valuePrimary.Clear()
	p.valueMissed.Clear()
	return nil
}
