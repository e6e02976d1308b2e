// Package pad defines the pad (GPIO pin) identifier type and the
// process-wide pad ownership ledger described in spec.md §3.1-§3.2.
package pad

import "mcucore/ledger"

// ID names a single physical I/O pin. Chip packages construct IDs with New
// and typically expose them as package-level values (e.g. pad.New("PA0")).
//
// Two IDs are equal iff their tags are equal: comparison is by name, not by
// identity, so chip-family generic code can test a pad against a set that
// includes tags that don't exist on every package variant of the family
// (spec.md §9, "string-equality on enum tags").
type ID struct {
	tag string
}

// New constructs a pad identifier from its chip-defined tag name.
func New(tag string) ID { return ID{tag: tag} }

// String returns the pad's tag name.
func (p ID) String() string { return p.tag }

// Valid reports whether p was constructed with a non-empty tag.
func (p ID) Valid() bool { return p.tag != "" }

// In reports whether p's tag matches any member of set, by name — the
// equality spec.md §9 calls out as deliberate, so this also covers pads
// compared by value (==) against a set drawn from a different chip package.
func (p ID) In(set ...ID) bool {
	for _, s := range set {
		if s.tag == p.tag {
			return true
		}
	}
	return false
}

// Ledger is the process-wide pad ownership registry. Its lifecycle is the
// program's lifetime (spec.md §4.1).
var Ledger = ledger.New[ID]("pad")

// Reserve marks pads as owned by owner, fatally if any is already owned.
func Reserve(owner string, pads ...ID) { Ledger.Reserve(owner, pads...) }

// Release clears ownership of pads, fatally if owner does not hold all of them.
func Release(owner string, pads ...ID) { Ledger.Release(owner, pads...) }

// IsReserved reports whether p currently has an owner.
func IsReserved(p ID) bool { return Ledger.IsReserved(p) }
