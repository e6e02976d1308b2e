package jtag

import (
	"mcucore/chip"
	"mcucore/clock"
	"mcucore/critical"
	"mcucore/internal/mathx"
	"mcucore/pad"
	"mcucore/tick"
)

// Clocks is the timing surface the adapter needs: a coarse tick for
// idleUntil deadlines and a free-running microtick for clock-pulse
// half-periods.
type Clocks interface {
	CurrentTick() tick.Tick
	CurrentMicrotick() tick.Microtick
}

// Adapter owns the four JTAG pads of a bit-banged TAP controller. P and W
// are the chip's GPIO port identifier and register-width types.
type Adapter[P comparable, W chip.PortDataType] struct {
	gpio   chip.GPIO[P, W]
	clocks Clocks
	owner  string

	tck, tms, tdi, tdo pad.ID

	state State

	maxFrequencyHz       clock.Hz
	halfPeriodMicroticks int64

	// chain[i] is the instruction-register width of TAP i in the scan
	// chain; len(chain) is the number of TAPs.
	chain []int
}

// New builds an adapter over the four named pads. microtickFreqHz is the
// frequency of the counter clocks.CurrentMicrotick() reports against;
// halfPeriodMicroticks is derived from it and maxFrequencyHz once, at
// construction, the way the source computes it at compile time.
func New[P comparable, W chip.PortDataType](
	g chip.GPIO[P, W],
	c Clocks,
	owner string,
	tck, tms, tdi, tdo pad.ID,
	maxFrequencyHz clock.Hz,
	microtickFreqHz clock.Hz,
	chain []int,
) *Adapter[P, W] {
	half := mathx.CeilDiv(uint64(microtickFreqHz), 2*uint64(maxFrequencyHz))
	if half < 1 {
		half = 1
	}
	return &Adapter[P, W]{
		gpio:                 g,
		clocks:               c,
		owner:                owner,
		tck:                  tck,
		tms:                  tms,
		tdi:                  tdi,
		tdo:                  tdo,
		maxFrequencyHz:       maxFrequencyHz,
		halfPeriodMicroticks: int64(half),
		chain:                append([]int(nil), chain...),
		state:                Unknown1,
	}
}

// State reports the adapter's current TAP state.
func (a *Adapter[P, W]) State() State { return a.state }

// Init reserves the four pads and configures them: TCK/TMS/TDI as
// push-pull outputs with slow slew, TDO as input. The adapter starts in
// Unknown1; callers normally follow Init with ChangeState(Reset) to walk
// the TAP into a known state (spec's startup synchronisation).
func (a *Adapter[P, W]) Init() {
	critical.Do(func() {
		pad.Reserve(a.owner, a.tck, a.tms, a.tdi, a.tdo)
		a.gpio.EnsurePortsEnabled(a.gpio.GetIOPorts([]pad.ID{a.tck, a.tms, a.tdi, a.tdo}))

		for _, p := range [...]pad.ID{a.tck, a.tms, a.tdi} {
			a.gpio.ConfigureAsOutput(p)
			a.gpio.ConfigureSlewRate(p, chip.SlewSlow)
			a.gpio.ConfigureDriveMode(p, chip.DrivePushPull)
		}
		a.gpio.ConfigureAsInput(a.tdo)
		a.state = Unknown1
	})
}

// Deinit releases the four pads.
func (a *Adapter[P, W]) Deinit() {
	critical.Do(func() {
		for _, p := range [...]pad.ID{a.tck, a.tms, a.tdi, a.tdo} {
			a.gpio.ConfigureAsUnused(p)
		}
		pad.Release(a.owner, a.tck, a.tms, a.tdi, a.tdo)
	})
}

// blockUntilMicrotick busy-waits until the current microtick is no longer
// before deadline — the adapter's only suspension primitive besides
// IdleUntil's tick deadline.
func (a *Adapter[P, W]) blockUntilMicrotick(deadline tick.Microtick) {
	for a.clocks.CurrentMicrotick().IsBefore(deadline) {
	}
}

func (a *Adapter[P, W]) halfPeriodDeadline() tick.Microtick {
	return a.clocks.CurrentMicrotick() + tick.Microtick(a.halfPeriodMicroticks)
}

// pulse drives TCK low, waits a half period, samples TDO, drives TCK
// high, waits another half period, and returns the sampled bit.
func (a *Adapter[P, W]) pulse(tmsBit int) bool {
	a.gpio.WriteOutput(a.tms, tmsBit != 0)
	a.gpio.WriteOutput(a.tck, false)
	a.blockUntilMicrotick(a.halfPeriodDeadline())
	sampled := a.gpio.ReadInput(a.tdo)
	a.gpio.WriteOutput(a.tck, true)
	a.blockUntilMicrotick(a.halfPeriodDeadline())
	return sampled
}

// ChangeState drives TMS and strobes TCK until the adapter reaches
// target. Between the 16 standard states this takes at most eight
// transitions (e.g. DR_pause to IR_exit2); from Unknown1 it takes up to
// twelve.
func (a *Adapter[P, W]) ChangeState(target State) {
	for a.state != target {
		tmsBit, next := step(a.state, target)
		a.pulse(tmsBit)
		a.state = next
	}
}

// Reset walks the TAP back to Reset; callers whose adapter started in
// Unknown1 (fresh Init) use this to synchronise regardless of the real
// TAP's power-on state.
func (a *Adapter[P, W]) Reset() { a.ChangeState(Reset) }

// Idle strobes TCK n times while remaining in the Idle state.
func (a *Adapter[P, W]) Idle(n int) {
	a.ChangeState(Idle)
	for i := 0; i < n; i++ {
		a.pulse(0)
	}
}

// IdleUntil strobes TCK in Idle until deadline has passed, then continues
// until at least minClocks pulses have been emitted in total (the
// corrected semantics: the counter advances once per pulse, not twice).
func (a *Adapter[P, W]) IdleUntil(deadline tick.Tick, minClocks int) {
	a.ChangeState(Idle)
	clocks := 0
	for !a.clocks.CurrentTick().IsAfter(deadline) {
		a.pulse(0)
		clocks++
	}
	for clocks < minClocks {
		a.pulse(0)
		clocks++
	}
}

// Shift moves to shiftState, holds TMS low while shifting the low n bits
// of value out TDI (LSB first), raising TMS on the final bit to land in
// exitState, and returns the captured TDO bits in the same LSB-first
// order. n == 0 is a no-op that returns 0 without touching the pins.
func (a *Adapter[P, W]) Shift(n int, value uint64, shiftState, exitState State) uint64 {
	if n == 0 {
		return 0
	}
	a.ChangeState(shiftState)

	var captured uint64
	for i := 0; i < n; i++ {
		tdiBit := value & 1
		value >>= 1
		a.gpio.WriteOutput(a.tdi, tdiBit != 0)

		last := i == n-1
		tmsBit := 0
		if last {
			tmsBit = 1
		}
		if tdo := a.pulse(tmsBit); tdo {
			captured |= uint64(1) << uint(i)
		}
	}
	a.state = exitState
	return captured
}

// ShiftIR is Shift into/out of IRShift, exiting to IRExit1.
func (a *Adapter[P, W]) ShiftIR(n int, value uint64) uint64 {
	return a.Shift(n, value, IRShift, IRExit1)
}

// ShiftDR is Shift into/out of DRShift, exiting to DRExit1.
func (a *Adapter[P, W]) ShiftDR(n int, value uint64) uint64 {
	return a.Shift(n, value, DRShift, DRExit1)
}
