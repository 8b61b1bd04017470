package argpool

import "testing"

func TestGetReleaseRoundTrip(t *testing.T) {
	p := New()
	buf := p.Get(100)
	if len(buf) != 100 {
		t.Fatalf("len(buf) = %d, want 100", len(buf))
	}
	p.Release(buf)

	buf2 := p.Get(100)
	if len(buf2) != 100 {
		t.Fatalf("len(buf2) = %d, want 100", len(buf2))
	}
}

func TestReleaseNilIsNoop(t *testing.T) {
	p := New()
	p.Release(nil) // must not panic
}

func TestGetRoundsUpToSizeClass(t *testing.T) {
	p := New().(*argPool)
	buf := p.Get(100)
	p.Release(buf)

	// A 100-byte request rounds up to the 128-byte size class; a
	// subsequent 128-byte request should be served from the same free
	// list the 100-byte release fed back into.
	reused := p.Get(128)
	if cap(reused) < 128 {
		t.Fatalf("cap(reused) = %d, want >= 128", cap(reused))
	}
}
