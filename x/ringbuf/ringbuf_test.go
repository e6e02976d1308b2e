package ringbuf

import "testing"

func TestWriteReadRoundTrip(t *testing.T) {
	r := New(8)
	n := r.TryWriteFrom([]byte{1, 2, 3})
	if n != 3 {
		t.Fatalf("TryWriteFrom = %d, want 3", n)
	}
	if r.Available() != 3 || r.Space() != 5 {
		t.Fatalf("Available/Space = %d/%d, want 3/5", r.Available(), r.Space())
	}
	dst := make([]byte, 3)
	if n := r.TryReadInto(dst); n != 3 {
		t.Fatalf("TryReadInto = %d, want 3", n)
	}
	if dst[0] != 1 || dst[1] != 2 || dst[2] != 3 {
		t.Fatalf("dst = %v, want [1 2 3]", dst)
	}
}

func TestWriteStopsAtCapacity(t *testing.T) {
	r := New(4)
	n := r.TryWriteFrom([]byte{1, 2, 3, 4, 5})
	if n != 4 {
		t.Fatalf("TryWriteFrom into a full ring = %d, want 4 (capped at capacity)", n)
	}
	if r.Space() != 0 {
		t.Fatalf("Space = %d, want 0 once full", r.Space())
	}
}

func TestReadFromEmptyReturnsZero(t *testing.T) {
	r := New(4)
	if n := r.TryReadInto(make([]byte, 4)); n != 0 {
		t.Fatalf("TryReadInto on an empty ring = %d, want 0", n)
	}
}

func TestIndicesWrapAcrossCapacityBoundary(t *testing.T) {
	r := New(4)
	r.TryWriteFrom([]byte{1, 2, 3})
	r.TryReadInto(make([]byte, 2)) // rd=2, wr=3, one byte (3) still buffered

	n := r.TryWriteFrom([]byte{4, 5, 6}) // wraps: only 3 bytes of space
	if n != 3 {
		t.Fatalf("TryWriteFrom across the wrap = %d, want 3", n)
	}

	dst := make([]byte, 4)
	if n := r.TryReadInto(dst); n != 4 {
		t.Fatalf("TryReadInto after wrap = %d, want 4", n)
	}
	want := []byte{3, 4, 5, 6}
	for i, b := range want {
		if dst[i] != b {
			t.Fatalf("dst = %v, want %v", dst, want)
		}
	}
}

func TestNewPanicsOnNonPowerOfTwoSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected New(3) to panic: 3 is not a power of two")
		}
	}()
	New(3)
}
