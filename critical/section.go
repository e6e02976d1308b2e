// Package critical implements scoped global-interrupt-disable sections.
//
// A critical section makes a sequence of register or ledger operations
// atomic with respect to interrupt handlers running on the same core. It
// does nothing about other cores — this core targets single-core MCUs only
// (spec.md §1).
package critical

// Controller is the chip hook a critical section needs: the ability to read
// and flip the global interrupt-enable flag. Any chip.Interrupts
// implementation that provides these two methods satisfies Controller
// without an explicit import of package chip.
type Controller interface {
	AreGloballyEnabled() bool
	SetGloballyEnabled(enabled bool)
}

var ctrl Controller

// Bind installs the chip's interrupt controller. It must be called once
// during chip init, before any Enter.
func Bind(c Controller) { ctrl = c }

// Guard represents an open critical section. Leave must be called exactly
// once, and guards must be released in LIFO order if nested — nesting is
// legal (the inner guard's sampled state is simply "disabled"), but a guard
// leaked or released out of order will re-enable interrupts prematurely.
type Guard struct {
	prev    bool
	entered bool
}

// Enter disables global interrupts and returns a guard that will restore
// whatever the enabled state was at the moment of the call. Do not hold a
// guard across a long or blocking operation.
func Enter() *Guard {
	if ctrl == nil {
		panic("critical: Enter called before Bind")
	}
	prev := ctrl.AreGloballyEnabled()
	ctrl.SetGloballyEnabled(false)
	return &Guard{prev: prev, entered: true}
}

// Leave restores the interrupt-enable state sampled by Enter. Calling Leave
// more than once on the same guard is a no-op.
func (g *Guard) Leave() {
	if g == nil || !g.entered {
		return
	}
	ctrl.SetGloballyEnabled(g.prev)
	g.entered = false
}

// Do runs fn with global interrupts disabled and restores the prior state
// afterwards, including when fn panics.
func Do(fn func()) {
	g := Enter()
	defer g.Leave()
	fn()
}
