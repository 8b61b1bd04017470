// Package argpool provides an opt-in, size-classed recycling pool for
// the []byte arguments that value tasks (api.ValueTask) frequently
// carry as their opaque arg. It is a supplemental feature: Task/Worker/
// Dispatcher semantics are unaffected — a value task's Arg remains an
// any, and argpool is just one way a caller may produce and later
// release that any when it happens to be a []byte.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
package argpool
