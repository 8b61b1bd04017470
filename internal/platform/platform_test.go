package platform

import (
	"testing"

	"github.com/momentics/taskpool/api"
)

func TestApplyNeverPanics(t *testing.T) {
	attrs := api.NewExecutionAttributes()
	attrs.SetPriority(api.PriorityHigh)
	attrs.SetIdealCore(0)
	attrs.SetAffinityMode(api.AffinityHard)
	attrs.ComputeAffinityMask(NumCPU())

	// Best-effort application; OS failures are swallowed, so this must
	// never panic regardless of the host.
	Apply(attrs)
	Apply(nil)
}

func TestNumCPUPositive(t *testing.T) {
	if NumCPU() <= 0 {
		t.Fatalf("NumCPU() = %d, want > 0", NumCPU())
	}
}
