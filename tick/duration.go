package tick

import "mcucore/internal/mathx"

// Duration is a compile-time-shaped description of a wait, folded to a tick
// count by ticks(freqHz). Unlike the source this is distilled from, Go has
// no record-literal field validation step — an unrecognised field is
// naturally a compile error because Go rejects unknown struct-literal field
// names, which is exactly the diagnostic spec.md §4.6 asks for.
//
// Field names follow the uniform set decided in SPEC_FULL.md §4 (4): one
// field per unit, shared verbatim between Tick and Microtick.
type Duration struct {
	Minutes      int64
	Seconds      int64
	Milliseconds int64
	Microseconds int64
	Ticks        int64
}

// ticks folds d to a tick count at freqHz ticks per second. Each field
// contributes value × secs-per-unit × freq, rounded half-up for sub-second
// units; the total is clamped to at least 1 — a zero-length wait is
// meaningless (spec.md §3.4).
func (d Duration) ticks(freqHz uint64) int64 {
	var total int64
	total += d.Minutes * 60 * int64(freqHz)
	total += d.Seconds * int64(freqHz)
	total += roundHalfUp(d.Milliseconds*int64(freqHz), 1_000)
	total += roundHalfUp(d.Microseconds*int64(freqHz), 1_000_000)
	total += d.Ticks
	if total < 1 {
		total = 1
	}
	return total
}

// Ticks exposes the same computation for callers that want a raw tick
// count without going through Tick.Plus/Microtick.Plus (e.g. to size a
// timeout window before sampling the current tick).
func (d Duration) Ticks(freqHz uint64) int64 { return d.ticks(freqHz) }

func roundHalfUp(numerator, divisor int64) int64 {
	if numerator == 0 {
		return 0
	}
	neg := numerator < 0
	if neg {
		numerator = -numerator
	}
	r := mathx.RoundDiv(numerator, divisor)
	if neg {
		return -r
	}
	return r
}
