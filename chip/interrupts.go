// Package chip describes the interfaces a chip-specific support package
// must implement for the core to drive it. Nothing in this package talks
// to hardware; it exists so chip packages and the core agree on a shape
// without the core importing any particular chip.
package chip

// Interrupts configures interrupt sources identified by a chip-defined
// kind enum K (typically a small integer type with named constants).
type Interrupts[K comparable] interface {
	SetEnabled(kind K, enabled bool)
	SetPriority(kind K, priority uint8)
}

// Pender is the optional software-triggering extension to Interrupts.
type Pender[K comparable] interface {
	SetPending(kind K)
	IsPending(kind K) bool
}

// WaitForInterrupter is the optional low-power-wait extension.
type WaitForInterrupter interface {
	WaitForInterrupt()
}
