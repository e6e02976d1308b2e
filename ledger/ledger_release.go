//go:build ledger_release

package ledger

import (
	"mcucore/critical"
	"mcucore/fault"
)

// Ledger tracks ownership of a finite set of chip-supplied keys (pad IDs,
// DMA channels). The release build stores only the reserved set, not owner
// names, to save the string storage on flash-constrained targets.
type Ledger[K comparable] struct {
	name     string
	reserved map[K]struct{}
}

// New creates an empty ledger. name identifies the ledger in fatal
// diagnostics (e.g. "pad", "dma").
func New[K comparable](name string) *Ledger[K] {
	return &Ledger[K]{name: name, reserved: make(map[K]struct{})}
}

// Reserve marks every key in keys as reserved. If any key is already
// reserved, nothing is mutated and Reserve raises a fatal fault. The
// release build does not know or report the prior owner's name.
func (l *Ledger[K]) Reserve(owner string, keys ...K) {
	critical.Do(func() {
		for _, k := range keys {
			if _, ok := l.reserved[k]; ok {
				fault.Raise("ledger(%s): %v already reserved, cannot reserve for %q", l.name, k, owner)
			}
		}
		for _, k := range keys {
			l.reserved[k] = struct{}{}
		}
	})
}

// Release clears reservation of every key in keys. Releasing a key that is
// not currently reserved is a fatal fault. The release build cannot check
// that owner matches the original reserver — it only tracks membership —
// so this is a weaker check than the debug build's.
func (l *Ledger[K]) Release(owner string, keys ...K) {
	critical.Do(func() {
		for _, k := range keys {
			if _, ok := l.reserved[k]; !ok {
				fault.Raise("ledger(%s): %v is not reserved, cannot release for %q", l.name, k, owner)
			}
		}
		for _, k := range keys {
			delete(l.reserved, k)
		}
	})
}

// IsReserved reports whether k currently has an owner.
func (l *Ledger[K]) IsReserved(k K) bool {
	_, ok := l.reserved[k]
	return ok
}

// OwnerOf always returns ("", false) in the release build: owner names are
// not retained.
func (l *Ledger[K]) OwnerOf(k K) (string, bool) { return "", false }
