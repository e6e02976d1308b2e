// Package fault raises the fatal-panic tier described in spec.md §7:
// programmer-error invariant violations (double-reservation of a pad or DMA
// channel, release by a non-owner, main returning an error) that stop the
// program rather than propagate as a recoverable error.
package fault

import "mcucore/logfmt"

// Hook is the user-supplied panic sink (spec.md §6.2's optional "panic").
// A bound Hook is expected not to return on a real target — it logs and
// then spins forever behind a memory barrier so the instruction cannot be
// optimised away. Because that can't be expressed in portable Go, Raise
// still calls panic after invoking the hook so hosted builds (and tests)
// unwind normally if a hook does return.
type Hook func(msg string, withTrace bool)

var hook Hook

// Bind installs the application's panic hook. Call once during boot.
func Bind(h Hook) { hook = h }

// Raise reports a fatal invariant violation. If a hook is bound it runs
// first; either way Raise then panics with msg so `recover` in tests, or
// the runtime's default crash handler on a hosted build, can observe it.
func Raise(format string, args ...any) {
	msg := logfmt.Sprintf(format, args...)
	if hook != nil {
		hook(msg, true)
	}
	panic(msg)
}
