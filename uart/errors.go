package uart

// ReadError is a stable, comparable UART receive-error identifier — the
// subset of {Overrun, ParityError, FramingError, BreakInterrupt,
// NoiseError} a chip may report, plus WouldBlock for the non-blocking
// reader.
type ReadError string

func (e ReadError) Error() string { return string(e) }

const (
	Overrun        ReadError = "overrun"
	ParityError    ReadError = "parity_error"
	FramingError   ReadError = "framing_error"
	BreakInterrupt ReadError = "break_interrupt"
	NoiseError     ReadError = "noise_error"
	WouldBlock     ReadError = "would_block"
)

// WriteError is the (usually empty) set of write-side errors; the
// non-blocking writer adds WriteWouldBlock.
type WriteError string

func (e WriteError) Error() string { return string(e) }

const WriteWouldBlock WriteError = "would_block"
