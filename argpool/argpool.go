// File: argpool/argpool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// ArgPool recycles size-classed []byte buffers behind a small public
// interface. It is NOT a package-level singleton: every Pool owns
// exactly one ArgPool instance of its own rather than reaching for a
// process-wide default.

package argpool

// ArgPool recycles []byte value-task arguments by size class. Get
// returns a buffer of at least size bytes; Release returns it to the
// pool for reuse. Callers that pass del=true on their ValueTask should
// call Release from the task's own callable once it is done with the
// buffer.
type ArgPool interface {
	Get(size int) []byte
	Release(buf []byte)
}

type argPool struct {
	classes *sizeClassPool
}

// New returns a fresh, independent ArgPool.
func New() ArgPool {
	return &argPool{classes: newSizeClassPool()}
}

func (p *argPool) Get(size int) []byte {
	return p.classes.Get(size)
}

func (p *argPool) Release(buf []byte) {
	if buf == nil {
		return
	}
	p.classes.Put(buf)
}
