package pool

import (
	"sync/atomic"

	"github.com/momentics/taskpool/api"
)

// funcObjectTask is a minimal api.ObjectTask for tests: it runs an
// arbitrary func and exposes distinct identity per instance (pointer
// identity of the struct itself serves as the handle).
type funcObjectTask struct {
	fn    func()
	attrs *api.ExecutionAttributes
	id    uint32
}

func newFuncObjectTask(id uint32, fn func()) *funcObjectTask {
	return &funcObjectTask{fn: fn, attrs: api.NewExecutionAttributes(), id: id}
}

func (t *funcObjectTask) Run()                             { t.fn() }
func (t *funcObjectTask) Attributes() *api.ExecutionAttributes { return t.attrs }
func (t *funcObjectTask) ObjectID() uint32                 { return t.id }

// loopingObjectTask runs until its stop flag is set, used for
// pause/resume test scenarios.
type loopingObjectTask struct {
	attrs   *api.ExecutionAttributes
	stopped atomic.Bool
	started chan struct{}
	done    chan struct{}
}

func newLoopingObjectTask() *loopingObjectTask {
	return &loopingObjectTask{
		attrs:   api.NewExecutionAttributes(),
		started: make(chan struct{}),
		done:    make(chan struct{}),
	}
}

func (t *loopingObjectTask) Run() {
	close(t.started)
	for !t.stopped.Load() {
	}
	close(t.done)
}

func (t *loopingObjectTask) Attributes() *api.ExecutionAttributes { return t.attrs }
func (t *loopingObjectTask) ObjectID() uint32                     { return 0 }
func (t *loopingObjectTask) Stop()                                { t.stopped.Store(true) }
