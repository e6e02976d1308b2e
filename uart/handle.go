// Package uart adapts a chip's UART implementation — whatever subset of
// buffered/unbuffered, blocking/non-blocking, byte-at-a-time or slice
// capabilities it natively exposes — to one uniform reader/writer
// contract, synthesising whatever the chip doesn't provide directly.
package uart

// Handle owns one chip UART implementation and exposes the uniform
// blocking/non-blocking read/write contract over it.
type Handle struct {
	rx         Rx
	tx         Tx
	genRead    GenericReader
	genReadNB  GenericNonBlockingReader
	genWrite   GenericWriter
	genWriteNB GenericNonBlockingWriter
	readErrSrc ReadErrorSource
	canRead    ReadAvailabilityChecker
	rxAvail    RxBytesAvailable
	canWrite   WriteAvailabilityChecker
	txAvail    TxBytesAvailable
	peek       Peeker
	lifecycle  Lifecycle

	// pendingReadErr is the front end's own sticky-error store, used only
	// when the chip doesn't implement ReadErrorSource itself.
	pendingReadErr error
}

// New wraps impl, discovering its capabilities by type assertion. impl
// must implement at least one of the read primitives (Rx, GenericReader)
// or one of the write primitives (Tx, GenericWriter) — a UART with
// neither is a configuration error (spec's compile-time-diagnostic tier,
// downgraded to a construction-time panic since Go has no comptime
// interface-satisfaction check to run it against).
func New(impl any) *Handle {
	h := &Handle{}
	h.rx, _ = impl.(Rx)
	h.tx, _ = impl.(Tx)
	h.genRead, _ = impl.(GenericReader)
	h.genReadNB, _ = impl.(GenericNonBlockingReader)
	h.genWrite, _ = impl.(GenericWriter)
	h.genWriteNB, _ = impl.(GenericNonBlockingWriter)
	h.readErrSrc, _ = impl.(ReadErrorSource)
	h.canRead, _ = impl.(ReadAvailabilityChecker)
	h.rxAvail, _ = impl.(RxBytesAvailable)
	h.canWrite, _ = impl.(WriteAvailabilityChecker)
	h.txAvail, _ = impl.(TxBytesAvailable)
	h.peek, _ = impl.(Peeker)
	h.lifecycle, _ = impl.(Lifecycle)

	canRead := h.rx != nil || h.genRead != nil
	canWrite := h.tx != nil || h.genWrite != nil
	if !canRead && !canWrite {
		panic("uart: implementation exposes neither a read nor a write primitive")
	}
	return h
}

// Capabilities reports which interfaces impl actually satisfied.
func (h *Handle) Capabilities() Report {
	return Report{
		Rx:                            h.rx != nil,
		Tx:                            h.tx != nil,
		GenericRead:                   h.genRead != nil,
		GenericReadNonBlocking:        h.genReadNB != nil,
		GenericWrite:                  h.genWrite != nil,
		GenericWriteNonBlocking:       h.genWriteNB != nil,
		ReadAvailability:              h.canRead != nil || h.rxAvail != nil,
		WriteAvailability:             h.canWrite != nil || h.txAvail != nil,
		StickyReadErrorsOwnedByChip:   h.readErrSrc != nil,
		Peek:                          h.peek != nil,
		Lifecycle:                     h.lifecycle != nil,
	}
}

// Init, Start, Stop and Deinit forward to the implementation's optional
// Lifecycle capability. Stop is expected (by the chip implementation) to
// abort reception and drain pending transmission before returning.
func (h *Handle) Init()   { h.forwardLifecycle((Lifecycle).Init) }
func (h *Handle) Start()  { h.forwardLifecycle((Lifecycle).Start) }
func (h *Handle) Stop()   { h.forwardLifecycle((Lifecycle).Stop) }
func (h *Handle) Deinit() { h.forwardLifecycle((Lifecycle).Deinit) }

func (h *Handle) forwardLifecycle(fn func(Lifecycle)) {
	if h.lifecycle != nil {
		fn(h.lifecycle)
	}
}

func (h *Handle) getReadError() error {
	if h.readErrSrc != nil {
		return h.readErrSrc.GetReadError()
	}
	return h.pendingReadErr
}

func (h *Handle) clearReadError(err error) {
	if h.readErrSrc != nil {
		h.readErrSrc.ClearReadError(err)
		return
	}
	if h.pendingReadErr == err {
		h.pendingReadErr = nil
	}
}

func (h *Handle) deferReadError(err error) {
	if h.readErrSrc != nil {
		// The chip tracks its own stickiness; nothing to stash here.
		return
	}
	h.pendingReadErr = err
}

// ReadBlocking fills buf completely, blocking as needed, unless a read
// error interrupts it first.
func (h *Handle) ReadBlocking(buf []byte) (int, error) {
	if h.genRead != nil {
		return h.genRead.ReadBlocking(buf)
	}
	if h.rx == nil {
		panic("uart: no read primitive available")
	}
	if err := h.getReadError(); err != nil {
		h.clearReadError(err)
		return 0, err
	}
	for i := range buf {
		b, err := h.rx.Rx()
		if err != nil {
			if i == 0 {
				h.clearReadError(err)
				return 0, err
			}
			h.deferReadError(err)
			return i, nil
		}
		buf[i] = b
	}
	return len(buf), nil
}

// ReadNonBlocking fills as much of buf as is immediately available,
// returning WouldBlock only if zero bytes could be read.
func (h *Handle) ReadNonBlocking(buf []byte) (int, error) {
	if h.genReadNB != nil {
		return h.genReadNB.ReadNonBlocking(buf)
	}
	if h.rx == nil {
		panic("uart: no read primitive available")
	}
	if err := h.getReadError(); err != nil {
		h.clearReadError(err)
		return 0, err
	}
	n := 0
	for n < len(buf) {
		if !h.canReadNow() {
			if n == 0 {
				return 0, WouldBlock
			}
			return n, nil
		}
		b, err := h.rx.Rx()
		if err != nil {
			if n == 0 {
				h.clearReadError(err)
				return 0, err
			}
			h.deferReadError(err)
			return n, nil
		}
		buf[n] = b
		n++
	}
	return n, nil
}

// WriteBlocking writes buf completely, blocking for room as needed.
func (h *Handle) WriteBlocking(buf []byte) (int, error) {
	if h.genWrite != nil {
		return h.genWrite.WriteBlocking(buf)
	}
	if h.tx == nil {
		panic("uart: no write primitive available")
	}
	for i, b := range buf {
		if err := h.tx.Tx(b); err != nil {
			return i, err
		}
	}
	return len(buf), nil
}

// WriteNonBlocking writes as much of buf as there is room for, returning
// WriteWouldBlock only if zero bytes could be written.
func (h *Handle) WriteNonBlocking(buf []byte) (int, error) {
	if h.genWriteNB != nil {
		return h.genWriteNB.WriteNonBlocking(buf)
	}
	if h.tx == nil {
		panic("uart: no write primitive available")
	}
	n := 0
	for n < len(buf) {
		if !h.canWriteNow() {
			if n == 0 {
				return 0, WriteWouldBlock
			}
			return n, nil
		}
		if err := h.tx.Tx(buf[n]); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// Peek returns the next unread byte without consuming it. ok is false if
// no byte is available or the implementation doesn't support peeking.
func (h *Handle) Peek() (b byte, ok bool) {
	if h.peek == nil {
		return 0, false
	}
	return h.peek.Peek()
}

func (h *Handle) canReadNow() bool {
	switch {
	case h.canRead != nil:
		return h.canRead.CanRead()
	case h.rxAvail != nil:
		return h.rxAvail.GetRxBytesAvailable() > 0
	default:
		panic("uart: non-blocking read requires CanRead or GetRxBytesAvailable")
	}
}

// RxBytesAvailable reports how much data can be read without blocking,
// derived from whichever of CanRead/GetRxBytesAvailable the chip
// natively supplies.
func (h *Handle) RxBytesAvailable() int {
	switch {
	case h.rxAvail != nil:
		return h.rxAvail.GetRxBytesAvailable()
	case h.canRead != nil:
		if h.canRead.CanRead() {
			return 1
		}
		return 0
	default:
		return 0
	}
}

func (h *Handle) canWriteNow() bool {
	switch {
	case h.canWrite != nil:
		return h.canWrite.CanWrite()
	case h.txAvail != nil:
		return h.txAvail.GetTxBytesAvailable() > 0
	default:
		panic("uart: non-blocking write requires CanWrite or GetTxBytesAvailable")
	}
}

// TxBytesAvailable mirrors RxBytesAvailable for the transmit side.
func (h *Handle) TxBytesAvailable() int {
	switch {
	case h.txAvail != nil:
		return h.txAvail.GetTxBytesAvailable()
	case h.canWrite != nil:
		if h.canWrite.CanWrite() {
			return 1
		}
		return 0
	default:
		return 0
	}
}
