// Package gpio composes logical multi-pin buses on top of a chip's raw
// GPIO primitives, projecting bit positions that may be scattered across
// several physical ports onto one contiguous state word.
package gpio

import (
	"mcucore/chip"
	"mcucore/critical"
	"mcucore/pad"
)

// Mode selects the electrical direction of every pad in a bus.
type Mode int

const (
	ModeInput Mode = iota
	ModeOutput
	ModeBidirectional
)

// Config is the compile-time-shaped configuration of a bus. Slew and
// Drive only matter for Mode values that drive an output; Termination
// applies regardless of direction.
type Config struct {
	Mode        Mode
	Slew        chip.SlewRate
	Drive       chip.DriveMode
	Termination chip.TerminationMode
}

// Bus is a fixed-order tuple of pads sharing one Config, addressed through
// a chip's GPIO surface (P = physical port identifier, W = port register
// width). Bit i of every state word this bus produces or accepts
// corresponds to pads[i], regardless of which physical port pads[i] lives
// on.
type Bus[P comparable, W chip.PortDataType] struct {
	chip  chip.GPIO[P, W]
	owner string
	cfg   Config
	pads  []pad.ID

	// Port grouping, resolved once at construction (the closest a
	// runtime value can get to the source's compile-time port mapping):
	// portOf[i] indexes distinctPorts for pads[i]; offsets[i] is the bit
	// offset of pads[i] within that port's register.
	distinctPorts []P
	portOf        []int
	offsets       []uint8

	// Scratch buffers reused across Read/Get/Modify calls to keep the
	// hot path allocation-free. Safe because the core has no scheduler:
	// a bus is never touched by more than one logical caller at a time
	// (spec's single-thread-plus-ISR model).
	portScratch  []W
	clearScratch []W
	portTouched  []bool
	initialized  bool
	direction    Mode
}

// New builds a bus over pads in the given order, querying c once per pad
// to resolve its physical port and bit offset. owner is the ledger
// descriptor recorded against every pad on Init.
func New[P comparable, W chip.PortDataType](c chip.GPIO[P, W], owner string, cfg Config, pads ...pad.ID) *Bus[P, W] {
	b := &Bus[P, W]{
		chip:      c,
		owner:     owner,
		cfg:       cfg,
		pads:      append([]pad.ID(nil), pads...),
		direction: cfg.Mode,
	}
	b.offsets = make([]uint8, len(pads))
	b.portOf = make([]int, len(pads))

	seen := make(map[P]int, len(pads))
	for i, p := range pads {
		port := c.GetIOPort(p)
		idx, ok := seen[port]
		if !ok {
			idx = len(b.distinctPorts)
			seen[port] = idx
			b.distinctPorts = append(b.distinctPorts, port)
		}
		b.portOf[i] = idx
		b.offsets[i] = c.GetOffset(p)
	}
	b.portScratch = make([]W, len(b.distinctPorts))
	b.clearScratch = make([]W, len(b.distinctPorts))
	b.portTouched = make([]bool, len(b.distinctPorts))
	return b
}

// Len reports the bus width (the number of pads, and so the number of
// significant bits in any state word).
func (b *Bus[P, W]) Len() int { return len(b.pads) }

func (b *Bus[P, W]) mask() uint64 {
	n := len(b.pads)
	if n >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << uint(n)) - 1
}

// Init reserves every pad, enables their ports, applies termination, then
// direction and (for outputs) slew/drive — all inside one critical
// section so no interrupt observes a partially configured bus.
func (b *Bus[P, W]) Init() {
	critical.Do(func() {
		pad.Reserve(b.owner, b.pads...)
		b.chip.EnsurePortsEnabled(b.distinctPorts)

		for _, p := range b.pads {
			b.chip.ConfigureTermination(p, b.cfg.Termination)
		}

		switch b.cfg.Mode {
		case ModeOutput:
			b.configureOutputs()
		case ModeBidirectional:
			b.configureInputs() // bidirectional starts as input
		default:
			b.configureInputs()
		}
		b.initialized = true
	})
}

func (b *Bus[P, W]) configureInputs() {
	for _, p := range b.pads {
		b.chip.ConfigureAsInput(p)
	}
	b.direction = ModeInput
}

func (b *Bus[P, W]) configureOutputs() {
	for _, p := range b.pads {
		b.chip.ConfigureAsOutput(p)
		b.chip.ConfigureSlewRate(p, b.cfg.Slew)
		b.chip.ConfigureDriveMode(p, b.cfg.Drive)
	}
	b.direction = ModeOutput
}

// Deinit restores termination to float, marks every pad unused, and
// releases them — the mirror image of Init, also critical-section-wrapped.
func (b *Bus[P, W]) Deinit() {
	critical.Do(func() {
		for _, p := range b.pads {
			b.chip.ConfigureTermination(p, chip.TerminationFloat)
			b.chip.ConfigureAsUnused(p)
		}
		pad.Release(b.owner, b.pads...)
		b.initialized = false
	})
}

// SetDirection reconfigures every pad of a bidirectional bus as input or
// output en masse. It panics if the bus was not declared bidirectional.
func (b *Bus[P, W]) SetDirection(output bool) {
	if b.cfg.Mode != ModeBidirectional {
		panic("gpio: SetDirection requires a bidirectional bus")
	}
	critical.Do(func() {
		if output {
			b.configureOutputs()
		} else {
			b.configureInputs()
		}
	})
}

// GetDirection reports the bus's current direction. Pad 0 is authoritative
// — every pad in the bus moves together, so any single pad's state
// suffices.
func (b *Bus[P, W]) GetDirection() Mode {
	if len(b.pads) == 0 {
		return b.direction
	}
	if b.chip.IsOutput(b.pads[0]) {
		return ModeOutput
	}
	return ModeInput
}

func (b *Bus[P, W]) resetScratch() {
	for i := range b.portTouched {
		b.portTouched[i] = false
	}
}

// readPorts samples read(port) once per distinct port (via fn) and
// assembles the logical state word in declaration order.
func (b *Bus[P, W]) readPorts(fn func(P) W) uint64 {
	b.resetScratch()
	var word uint64
	for i := range b.pads {
		pi := b.portOf[i]
		if !b.portTouched[pi] {
			b.portScratch[pi] = fn(b.distinctPorts[pi])
			b.portTouched[pi] = true
		}
		if (b.portScratch[pi]>>b.offsets[i])&1 != 0 {
			word |= uint64(1) << uint(i)
		}
	}
	return word
}

// Read samples the current input state word. Valid for Input and
// Bidirectional buses.
func (b *Bus[P, W]) Read() uint64 { return b.readPorts(b.chip.ReadInputPort) }

// Get returns the last-written output state word (read back from the
// output register). Valid for Output and Bidirectional buses.
func (b *Bus[P, W]) Get() uint64 { return b.readPorts(b.chip.ReadOutputPort) }

// modify computes, per distinct port, the clear/set masks implied by
// toSet/toClear and issues one ModifyOutputPort call per port.
func (b *Bus[P, W]) modify(toSet, toClear uint64) {
	for i := range b.portScratch {
		b.portScratch[i] = 0
		b.clearScratch[i] = 0
	}
	for i := range b.pads {
		pi := b.portOf[i]
		bit := W(1) << b.offsets[i]
		bitIdx := uint(i)
		if toSet&(uint64(1)<<bitIdx) != 0 {
			b.portScratch[pi] |= bit
		}
		if toClear&(uint64(1)<<bitIdx) != 0 {
			b.clearScratch[pi] |= bit
		}
	}
	for i, port := range b.distinctPorts {
		if b.portScratch[i] != 0 || b.clearScratch[i] != 0 {
			b.chip.ModifyOutputPort(port, b.clearScratch[i], b.portScratch[i])
		}
	}
}

// Modify writes state to the bus: bits set in state are driven high,
// bits clear in state are driven low. modify(S); Get() == S.
func (b *Bus[P, W]) Modify(state uint64) {
	m := b.mask()
	b.modify(state&m, (^state)&m)
}

// SetBits drives the given bits high, leaving the rest untouched.
// Equivalent to Modify(Get() | bits).
func (b *Bus[P, W]) SetBits(bits uint64) { b.modify(bits&b.mask(), 0) }

// ClearBits drives the given bits low, leaving the rest untouched.
// Equivalent to Modify(Get() &^ bits).
func (b *Bus[P, W]) ClearBits(bits uint64) { b.modify(0, bits&b.mask()) }

// ModifyInline, SetBitsInline and ClearBitsInline are identical to
// Modify/SetBits/ClearBits; their only purpose is to give latency-critical
// call sites (spec'd as inline variants) a name that signals "small, no
// allocation, safe to call from a tight loop" — Go's compiler already
// inlines bodies this small without an explicit directive.
func (b *Bus[P, W]) ModifyInline(state uint64)   { b.Modify(state) }
func (b *Bus[P, W]) SetBitsInline(bits uint64)   { b.SetBits(bits) }
func (b *Bus[P, W]) ClearBitsInline(bits uint64) { b.ClearBits(bits) }
