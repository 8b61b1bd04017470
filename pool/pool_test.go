package pool

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/momentics/taskpool/api"
)

func TestCreateFailsWithZeroWorkers(t *testing.T) {
	_, err := Create(api.PlatformNone, 0)
	if err != api.ErrNoWorkerSpawned {
		t.Fatalf("Create(0) err = %v, want ErrNoWorkerSpawned", err)
	}
}

func TestBaselineDispatch(t *testing.T) {
	p, err := Create(api.PlatformLinux, 4)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer Release(p)

	var counter atomic.Int32
	for i := 0; i < 4; i++ {
		task := newFuncObjectTask(uint32(i), func() {
			time.Sleep(100 * time.Millisecond)
			counter.Add(1)
		})
		if !p.SubmitObject(task) {
			t.Fatalf("SubmitObject(%d) = false", i)
		}
	}

	deadline := time.Now().Add(500 * time.Millisecond)
	for time.Now().Before(deadline) {
		if counter.Load() == 4 && !p.AnyWorking() && p.IsEmpty() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("counter=%d anyWorking=%v isEmpty=%v, want 4/false/true", counter.Load(), p.AnyWorking(), p.IsEmpty())
}

func TestSpillover(t *testing.T) {
	p, err := Create(api.PlatformLinux, 2)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer Release(p)

	var counter atomic.Int32
	for i := 0; i < 6; i++ {
		task := newFuncObjectTask(uint32(i), func() {
			time.Sleep(200 * time.Millisecond)
			counter.Add(1)
		})
		if !p.SubmitObject(task) {
			t.Fatalf("SubmitObject(%d) = false", i)
		}
	}

	time.Sleep(50 * time.Millisecond)
	if n := p.SpecificStatusCount(api.StatusExecuting); n != 2 {
		t.Fatalf("SpecificStatusCount(Executing) = %d, want 2", n)
	}

	deadline := time.Now().Add(1500 * time.Millisecond)
	for time.Now().Before(deadline) {
		if counter.Load() == 6 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("counter=%d, want 6 within 1.5s", counter.Load())
}

// Pausing a worker suspends it between tasks — a running task is
// never interrupted — but Pause/Resume/Status by handle remain
// observable independent of the task's own progress.
func TestTargetedPauseResume(t *testing.T) {
	p, err := Create(api.PlatformLinux, 1)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer Release(p)

	task := newLoopingObjectTask()
	if !p.SubmitObject(task) {
		t.Fatalf("SubmitObject = false")
	}

	select {
	case <-task.started:
	case <-time.After(200 * time.Millisecond):
		t.Fatalf("task never started")
	}

	p.Pause(task)
	if s := p.Status(task); s != api.StatusPausing {
		t.Fatalf("Status() = %v, want Pausing", s)
	}

	p.Resume(task)
	if s := p.Status(task); s != api.StatusExecuting {
		t.Fatalf("Status() after Resume = %v, want Executing", s)
	}

	task.Stop()
	select {
	case <-task.done:
	case <-time.After(200 * time.Millisecond):
		t.Fatalf("task never completed after Stop")
	}
}

func TestWaitByIdentity(t *testing.T) {
	p, err := Create(api.PlatformLinux, 1)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer Release(p)

	task := newFuncObjectTask(1, func() { time.Sleep(300 * time.Millisecond) })
	if !p.SubmitObject(task) {
		t.Fatalf("SubmitObject = false")
	}
	time.Sleep(20 * time.Millisecond) // let the dispatcher assign it

	if r := p.Wait(task, 50); r != api.WaitTimeout {
		t.Fatalf("Wait(50ms) = %v, want WaitTimeout", r)
	}
	if r := p.Wait(task, 1000); r != api.WaitComplete {
		t.Fatalf("Wait(1000ms) = %v, want WaitComplete", r)
	}
	if r := p.Wait(task, 10); r != api.WaitComplete {
		t.Fatalf("Wait after completion = %v, want WaitComplete", r)
	}
}

func TestWaitUnknownHandleReturnsComplete(t *testing.T) {
	p, err := Create(api.PlatformLinux, 1)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer Release(p)

	unknown := newFuncObjectTask(99, func() {})
	if r := p.Wait(unknown, 10); r != api.WaitComplete {
		t.Fatalf("Wait(never submitted) = %v, want WaitComplete", r)
	}
}

func TestShutdownWhileQueued(t *testing.T) {
	p, err := Create(api.PlatformLinux, 1)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	block := make(chan struct{})
	busy := newFuncObjectTask(1, func() { <-block })
	if !p.SubmitObject(busy) {
		t.Fatalf("SubmitObject(busy) = false")
	}
	time.Sleep(20 * time.Millisecond)

	for i := 0; i < 10; i++ {
		p.SubmitValue(api.ValueTask{Func: api.Attrfn{Call: func(any, bool) {}}})
	}

	close(block)
	if err := p.Shutdown(); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}

	if p.SubmitObject(newFuncObjectTask(2, func() {})) {
		t.Fatalf("SubmitObject after Shutdown = true, want false")
	}
	if err := p.Shutdown(); err != nil {
		t.Fatalf("second Shutdown: %v", err)
	}
}

// Affinity application is best-effort and must never panic; OS-level
// verification is out of scope for a portable unit test.
func TestAffinityApplicationDoesNotPanic(t *testing.T) {
	p, err := Create(api.PlatformLinux, 1)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer Release(p)

	attrs := api.NewExecutionAttributes()
	attrs.SetAffinityMode(api.AffinityHard)
	attrs.SetIdealCore(1)
	attrs.ComputeAffinityMask(4)

	task := &funcObjectTask{fn: func() {}, attrs: attrs, id: 1}
	if !p.SubmitObject(task) {
		t.Fatalf("SubmitObject = false")
	}
	if r := p.Wait(task, 1000); r != api.WaitComplete {
		t.Fatalf("Wait = %v, want WaitComplete", r)
	}
}

func TestAvailableCountNeverExceedsMaxThreads(t *testing.T) {
	p, err := Create(api.PlatformLinux, 3)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer Release(p)

	if n := p.AvailableCount(); n > p.Properties().MaxThreads {
		t.Fatalf("AvailableCount() = %d, want <= %d", n, p.Properties().MaxThreads)
	}
}

func TestIsEmptyImpliesZeroQueued(t *testing.T) {
	p, err := Create(api.PlatformLinux, 2)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer Release(p)

	if !p.IsEmpty() {
		t.Fatalf("IsEmpty() = false on a freshly created pool")
	}
}

func TestSuspendAllResumeAllPreservesAssignments(t *testing.T) {
	p, err := Create(api.PlatformLinux, 2)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer Release(p)

	block := make(chan struct{})
	task := newFuncObjectTask(1, func() { <-block })
	if !p.SubmitObject(task) {
		t.Fatalf("SubmitObject = false")
	}
	time.Sleep(20 * time.Millisecond)

	before := p.Status(task)
	p.SuspendAll()
	p.ResumeAll()
	after := p.Status(task)
	if before != after {
		t.Fatalf("status changed across suspend/resume: %v -> %v", before, after)
	}
	close(block)
}

func TestBoundaryMaxTasks(t *testing.T) {
	p, err := Create(api.PlatformLinux, 1)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer Release(p)

	// Keep the sole worker permanently busy so the dispatcher can never
	// drain valuePrimary out from under this test; otherwise queue
	// occupancy would race the 10ms dispatch cycle.
	block := make(chan struct{})
	defer close(block)
	busy := newFuncObjectTask(1, func() { <-block })
	if !p.SubmitObject(busy) {
		t.Fatalf("SubmitObject(busy) = false")
	}
	time.Sleep(20 * time.Millisecond)

	noop := api.ValueTask{Func: api.Attrfn{Call: func(any, bool) {}}}

	// size == max_tasks succeeds.
	for i := 0; i <= p.Properties().MaxTasks; i++ {
		if !p.SubmitValue(noop) {
			t.Fatalf("submit %d (size<=MaxTasks) = false, want true", i)
		}
	}

	// size == max_tasks + 1 fails.
	if p.SubmitValue(noop) {
		t.Fatalf("submit at size==MaxTasks+1 = true, want false")
	}
}
