package sim

import (
	"mcucore/uart"
	"mcucore/x/ringbuf"
)

// UART is a fake serial port backed by two byte rings: rx (the direction a
// test or application reads from) and tx (the direction it writes to). The
// test-driving side feeds bytes into rx with Feed, standing in for an
// interrupt handler filling the receive buffer, and drains whatever was
// written with Drain, so a simulated application can be exercised without
// a real wire.
type UART struct {
	rx, tx *ringbuf.Ring

	readErr    error
	rxOverflow bool
}

// NewUART builds a fake UART with ringSize-byte buffers in each direction;
// ringSize must be a power of two >= 2.
func NewUART(ringSize int) *UART {
	return &UART{rx: ringbuf.New(ringSize), tx: ringbuf.New(ringSize)}
}

// Feed enqueues data as if received from the wire, for the application to
// read via Rx. If the rx ring is full, the overflow is latched
// and surfaces as uart.Overrun on the next read.
func (u *UART) Feed(data []byte) {
	n := u.rx.TryWriteFrom(data)
	if n < len(data) {
		u.rxOverflow = true
	}
}

// Drain returns and removes everything the application has written via
// Tx so far.
func (u *UART) Drain() []byte {
	out := make([]byte, 0, u.tx.Available())
	var buf [64]byte
	for {
		n := u.tx.TryReadInto(buf[:])
		if n == 0 {
			break
		}
		out = append(out, buf[:n]...)
	}
	return out
}

// InjectReadError latches err so the next read surfaces it, mirroring a
// chip-detected line error arriving between bytes.
func (u *UART) InjectReadError(err error) { u.readErr = err }

// Rx implements uart.Rx.
func (u *UART) Rx() (byte, error) {
	if u.readErr != nil {
		err := u.readErr
		u.readErr = nil
		return 0, err
	}
	if u.rxOverflow {
		u.rxOverflow = false
		return 0, uart.Overrun
	}
	var b [1]byte
	if u.rx.TryReadInto(b[:]) == 0 {
		return 0, uart.WouldBlock
	}
	return b[0], nil
}

// Tx implements uart.Tx without blocking: when the tx ring is full it
// returns uart.WriteWouldBlock instead of waiting for room.
func (u *UART) Tx(b byte) error {
	if u.tx.TryWriteFrom([]byte{b}) == 0 {
		return uart.WriteWouldBlock
	}
	return nil
}

// CanRead implements uart.ReadAvailabilityChecker.
func (u *UART) CanRead() bool {
	return u.readErr != nil || u.rxOverflow || u.rx.Available() > 0
}

// CanWrite implements uart.WriteAvailabilityChecker.
func (u *UART) CanWrite() bool { return u.tx.Space() > 0 }

// GetRxBytesAvailable implements uart.RxBytesAvailable.
func (u *UART) GetRxBytesAvailable() int { return u.rx.Available() }

// GetTxBytesAvailable implements uart.TxBytesAvailable.
func (u *UART) GetTxBytesAvailable() int { return u.tx.Space() }
