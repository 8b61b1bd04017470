// File: pool/properties.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Properties holds a pool's static configuration.

package pool

import "github.com/momentics/taskpool/api"

// Properties holds a Pool's static configuration, seeded at Create and
// not changed afterwards; control.SeedPoolConfig only reports it
// through control.ConfigStore.
type Properties struct {
	// MaxThreads is the number of workers spawned at Create.
	MaxThreads int

	// MaxTasks bounds the two primary queues independently: a submit
	// succeeds while the target primary queue's size is <= MaxTasks.
	// The missed queues are not checked against it.
	MaxTasks int

	// StackSizeHint is metadata only on Go (see api.DefaultStackSizeHint).
	StackSizeHint int

	// Platform is the platform id the pool was created for.
	Platform api.PlatformID
}

// DefaultProperties returns Properties with MaxTasks=25 and the
// default stack-size hint.
func DefaultProperties(platform api.PlatformID, maxThreads int) Properties {
	return Properties{
		MaxThreads:    maxThreads,
		MaxTasks:      25,
		StackSizeHint: api.DefaultStackSizeHint,
		Platform:      platform,
	}
}
