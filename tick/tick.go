// Package tick implements the monotonic time value types of spec.md §3.4:
// Tick (32-bit, driven by a periodic interrupt) and Microtick (64-bit,
// typically a free-running hardware counter). Both compare by the sign of
// their wrapping difference and support adding a compile-time-shaped
// Duration scaled by a tick frequency.
package tick

// Tick is a 32-bit monotonic counter. At typical tick frequencies
// (1 kHz-1 MHz) comparisons are reliable for ticks separated by up to
// roughly half the 32-bit range — callers should not compare ticks more
// than about 15 minutes apart (spec.md §3.4).
type Tick int32

// Sub returns the wrapping difference t-u. Go's signed integer arithmetic
// is defined to wrap on overflow, which is exactly the semantics the
// ordering relations below depend on.
func (t Tick) Sub(u Tick) int32 { return int32(t - u) }

// IsAfter reports whether t occurred after u, defined as (t-u) > 0 under
// wrapping subtraction.
func (t Tick) IsAfter(u Tick) bool { return t.Sub(u) > 0 }

// IsBefore reports whether t occurred before u.
func (t Tick) IsBefore(u Tick) bool { return t.Sub(u) < 0 }

// Equal reports whether t and u are the same tick value.
func (t Tick) Equal(u Tick) bool { return t == u }

// Plus returns t advanced by d, resolved against freqHz ticks per second.
func (t Tick) Plus(d Duration, freqHz uint64) Tick {
	return t + Tick(d.ticks(freqHz))
}

// Microtick is a 64-bit monotonic counter, typically driven by a
// free-running hardware counter rather than an interrupt.
type Microtick int64

// Sub returns the wrapping difference t-u.
func (t Microtick) Sub(u Microtick) int64 { return int64(t - u) }

// IsAfter reports whether t occurred after u.
func (t Microtick) IsAfter(u Microtick) bool { return t.Sub(u) > 0 }

// IsBefore reports whether t occurred before u.
func (t Microtick) IsBefore(u Microtick) bool { return t.Sub(u) < 0 }

// Equal reports whether t and u are the same microtick value.
func (t Microtick) Equal(u Microtick) bool { return t == u }

// Plus returns t advanced by d, resolved against freqHz microticks per second.
func (t Microtick) Plus(d Duration, freqHz uint64) Microtick {
	return t + Microtick(d.ticks(freqHz))
}
