package uart

// The interfaces below are probed by type assertion against a chip's UART
// implementation (see New). A chip need only implement the subset it can
// natively support efficiently; Handle synthesises the rest.

// Rx is the byte-at-a-time receive primitive.
type Rx interface {
	Rx() (byte, error)
}

// Tx is the byte-at-a-time transmit primitive; it blocks until room is
// available.
type Tx interface {
	Tx(b byte) error
}

// ReadErrorSource is implemented by a chip that maintains its own sticky
// read-error state. Handle defers to it when present instead of tracking
// the pending error itself.
type ReadErrorSource interface {
	GetReadError() error
	ClearReadError(err error)
}

// ReadAvailabilityChecker and RxBytesAvailable are the two natively
// supplied forms of "is there data to read"; Handle derives whichever is
// missing from the other.
type ReadAvailabilityChecker interface {
	CanRead() bool
}

type RxBytesAvailable interface {
	GetRxBytesAvailable() int
}

// WriteAvailabilityChecker and TxBytesAvailable mirror the read-side pair
// for the transmit side.
type WriteAvailabilityChecker interface {
	CanWrite() bool
}

type TxBytesAvailable interface {
	GetTxBytesAvailable() int
}

// Peeker looks at the next byte without consuming it.
type Peeker interface {
	Peek() (byte, bool)
}

// GenericReader and GenericNonBlockingReader are implemented by a chip
// that already performs efficient slice-at-a-time reads natively; when
// present, Handle delegates directly instead of synthesising a
// byte-at-a-time loop.
type GenericReader interface {
	ReadBlocking(buf []byte) (int, error)
}

type GenericNonBlockingReader interface {
	ReadNonBlocking(buf []byte) (int, error)
}

// GenericWriter and GenericNonBlockingWriter mirror the reader pair.
type GenericWriter interface {
	WriteBlocking(buf []byte) (int, error)
}

type GenericNonBlockingWriter interface {
	WriteNonBlocking(buf []byte) (int, error)
}

// Lifecycle is the optional start/stop hook a chip UART may implement;
// Handle's own Init/Start/Stop/Deinit are no-ops against implementations
// that don't need them.
type Lifecycle interface {
	Init()
	Start()
	Stop()
	Deinit()
}

// Report summarises which capabilities a wrapped implementation actually
// advertised, for diagnostics and tests.
type Report struct {
	Rx, Tx                               bool
	GenericRead, GenericReadNonBlocking  bool
	GenericWrite, GenericWriteNonBlocking bool
	ReadAvailability, WriteAvailability  bool
	StickyReadErrorsOwnedByChip          bool
	Peek                                 bool
	Lifecycle                            bool
}
