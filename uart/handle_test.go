package uart

import "testing"

// queueRx replays a fixed sequence of (byte, error) pairs, grounding the
// "sticky error" scenario: an error surfaces once, mid-stream, then the
// stream resumes.
type queueRx struct {
	entries []rxEntry
	i       int
}

type rxEntry struct {
	b   byte
	err error
}

func (q *queueRx) Rx() (byte, error) {
	e := q.entries[q.i]
	q.i++
	return e.b, e.err
}

func TestReadBlockingStickyErrorSurfacesOnNextCall(t *testing.T) {
	q := &queueRx{entries: []rxEntry{
		{b: 0x41},
		{err: Overrun},
		{b: 0x42},
	}}
	h := New(q)

	buf := make([]byte, 3)
	n, err := h.ReadBlocking(buf[:3])
	if err != nil || n != 1 || buf[0] != 0x41 {
		t.Fatalf("first call = (%d, %v, %#x), want (1, nil, 0x41)", n, err, buf[0])
	}

	n, err = h.ReadBlocking(buf[:1])
	if n != 0 || err != Overrun {
		t.Fatalf("second call = (%d, %v), want (0, Overrun)", n, err)
	}

	n, err = h.ReadBlocking(buf[:1])
	if err != nil || n != 1 || buf[0] != 0x42 {
		t.Fatalf("third call = (%d, %v, %#x), want (1, nil, 0x42)", n, err, buf[0])
	}
}

type queueTx struct{ written []byte }

func (q *queueTx) Tx(b byte) error {
	q.written = append(q.written, b)
	return nil
}

func TestWriteBlockingWritesEveryByte(t *testing.T) {
	tx := &queueTx{}
	h := New(tx)
	n, err := h.WriteBlocking([]byte{1, 2, 3})
	if err != nil || n != 3 {
		t.Fatalf("WriteBlocking = (%d, %v), want (3, nil)", n, err)
	}
	if string(tx.written) != string([]byte{1, 2, 3}) {
		t.Fatalf("written = %v, want [1 2 3]", tx.written)
	}
}

// availRx is an Rx that also advertises CanRead, so non-blocking reads can
// be exercised without a GetRxBytesAvailable capability.
type availRx struct {
	queueRx
	available bool
}

func (a *availRx) CanRead() bool { return a.available }

func TestReadNonBlockingReturnsWouldBlockWhenEmpty(t *testing.T) {
	a := &availRx{available: false}
	h := New(a)
	buf := make([]byte, 1)
	n, err := h.ReadNonBlocking(buf)
	if n != 0 || err != WouldBlock {
		t.Fatalf("ReadNonBlocking on empty = (%d, %v), want (0, WouldBlock)", n, err)
	}
}

func TestReadNonBlockingReturnsAvailableBytes(t *testing.T) {
	a := &availRx{queueRx: queueRx{entries: []rxEntry{{b: 0xAA}, {b: 0xBB}}}, available: true}
	h := New(a)
	buf := make([]byte, 2)
	n, err := h.ReadNonBlocking(buf)
	if err != nil || n != 2 || buf[0] != 0xAA || buf[1] != 0xBB {
		t.Fatalf("ReadNonBlocking = (%d, %v, %v), want (2, nil, [0xAA 0xBB])", n, err, buf)
	}
}

func TestCapabilitiesReportsDiscoveredSet(t *testing.T) {
	h := New(&availRx{available: true})
	report := h.Capabilities()
	if !report.Rx || !report.ReadAvailability {
		t.Fatalf("Capabilities() = %+v, want Rx and ReadAvailability set", report)
	}
	if report.Tx || report.GenericRead || report.StickyReadErrorsOwnedByChip {
		t.Fatalf("Capabilities() = %+v, want write/generic/sticky-error capabilities unset", report)
	}
}

func TestNewPanicsWithNoCapabilities(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic wrapping an implementation with no read or write primitive")
		}
	}()
	New(struct{}{})
}
