package jtag

import "mcucore/chip"

// TAP projects the adapter onto one device in a multi-TAP scan chain.
// Every other TAP is held in BYPASS (a one-bit data register), so
// addressing TAP i costs exactly i bypass bits before its own scan and
// len(chain)-i-1 after.
type TAP[P comparable, W chip.PortDataType] struct {
	a     *Adapter[P, W]
	index int
}

// TAP returns a projection onto the TAP at index in the adapter's scan
// chain.
func (a *Adapter[P, W]) TAP(index int) TAP[P, W] {
	if index < 0 || index >= len(a.chain) {
		panic("jtag: TAP index out of range")
	}
	return TAP[P, W]{a: a, index: index}
}

// allOnes returns an n-bit word of all ones — BYPASS's effective
// instruction, and this chain's byte when an unaddressed TAP is shifted
// through.
func allOnes(n int) uint64 {
	if n <= 0 {
		return 0
	}
	if n >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << uint(n)) - 1
}

// Instruction shifts insn through this TAP's instruction register while
// every other TAP in the chain is held in BYPASS (all-ones), then moves
// to end.
func (t TAP[P, W]) Instruction(insn uint64, end State) {
	total := 0
	for i, width := range t.a.chain {
		if i == t.index {
			continue
		}
		total += irWidth(width)
	}
	total += irWidth(t.a.chain[t.index])

	// Build the composite IR word: bypass TAPs before the target
	// contribute their low bits first (scan order is TDI-first, so the
	// first TAP shifted is adjacent to TDI).
	var composite uint64
	shift := 0
	for i, width := range t.a.chain {
		w := irWidth(width)
		v := allOnes(w)
		if i == t.index {
			w = irWidth(t.a.chain[t.index])
			v = insn & allOnes(w)
		}
		composite |= v << uint(shift)
		shift += w
	}
	t.a.ShiftIR(total, composite)
	t.a.ChangeState(end)
}

// irWidth treats a non-positive chain entry as a 1-bit BYPASS register —
// every TAP has at least that much IR, addressed or not.
func irWidth(width int) int {
	if width <= 0 {
		return 1
	}
	return width
}

// Data prepends index bypass zero bits and appends len(chain)-index-1
// bypass zero bits around value, shifts the result through DR, and moves
// to end. Returns this TAP's own captured bits, stripped of the bypass
// padding.
func (t TAP[P, W]) Data(n int, value uint64, end State) uint64 {
	before := t.index
	after := len(t.a.chain) - t.index - 1

	composite := value & allOnes(n)
	composite <<= uint(before)
	total := before + n + after

	captured := t.a.ShiftDR(total, composite)
	t.a.ChangeState(end)

	return (captured >> uint(before)) & allOnes(n)
}
