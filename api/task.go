// File: api/task.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// ObjectTask is the polymorphic task shape: an opaque handle a client
// owns and keeps alive until the pool reports completion (its status
// observed as NotExecuting). Identity equality of the handle is how
// clients later address the task (pause, resume, terminate, wait).
//
// Re-submitting the same handle is only valid after the previous run
// has observably completed.
type ObjectTask interface {
	// Run executes the task once per dispatch.
	Run()

	// Attributes must remain valid for the duration of Run and the
	// subsequent transition to Purging.
	Attributes() *ExecutionAttributes

	// ObjectID is an opaque identifier the pool never interprets; it
	// exists purely for the caller's own bookkeeping.
	ObjectID() uint32
}

// ValueFunc is the callable half of a value task. It must be safe to
// call on any worker thread, and is responsible for interpreting arg
// and, when del is true, releasing it.
type ValueFunc func(arg any, del bool)

// ValueTask is the non-polymorphic task shape: a callable plus an
// opaque argument and a delete flag. No return value is propagated.
type ValueTask struct {
	Func Attrfn

	Arg    any
	Delete bool
}

// Attrfn pairs a ValueFunc with the ExecutionAttributes to apply before
// invoking it; Attrs may be nil, in which case the worker applies no
// attributes for this dispatch — value tasks get attributes only when
// the caller externally configured them.
type Attrfn struct {
	Call  ValueFunc
	Attrs *ExecutionAttributes
}

// IsZero reports whether t carries no callable, i.e. an empty slot.
func (t ValueTask) IsZero() bool { return t.Func.Call == nil }
