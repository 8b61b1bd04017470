// File: pool/factory.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Create/Release are the pool's construction and teardown entry
// points; taskpool folds its thin construction facade directly into
// these two functions instead of a separate facade package (see
// DESIGN.md).

package pool

import (
	"github.com/momentics/taskpool/api"
	"github.com/momentics/taskpool/argpool"
	iqueue "github.com/momentics/taskpool/internal/queue"
)

// Create spawns maxThreads workers and starts the dispatcher. It
// returns api.ErrNoWorkerSpawned if zero workers could be spawned.
func Create(platformID api.PlatformID, maxThreads int) (*Pool, error) {
	p := &Pool{
		props:         DefaultProperties(platformID, maxThreads),
		objectPrimary: iqueue.New[api.ObjectTask](8),
		objectMissed:  iqueue.New[api.ObjectTask](8),
		valuePrimary:  iqueue.New[api.ValueTask](8),
		valueMissed:   iqueue.New[api.ValueTask](8),
		args:          argpool.New(),
	}

	for i := 0; i < maxThreads; i++ {
		w := newWorker(i)
		w.start()
		p.workers = append(p.workers, w)
	}
	if len(p.workers) == 0 {
		return nil, api.ErrNoWorkerSpawned
	}

	p.dispatcher = newDispatcher(p, DefaultDispatchInterval)
	p.dispatcher.start()
	return p, nil
}

// Release shuts p down, terminating every worker and clearing all
// queues. Equivalent to calling p.Shutdown directly; provided for
// symmetry with Create.
func Release(p *Pool) error {
	return p.Shutdown()
}
