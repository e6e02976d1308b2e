//go:build !ledger_release

// Package ledger implements the process-wide ownership registries behind
// spec.md §3.2 (pad ledger) and §3.3 (DMA channel ledger): a mapping from a
// chip-supplied key type to an owner descriptor, with reservation of an
// already-owned key and release by a non-owner treated as fatal programmer
// errors (spec.md §7).
//
// This file is the debug build: it records owner names so a conflict can
// report both the prior and the attempting owner. Build with -tags
// ledger_release for the release variant, which tracks only membership.
package ledger

import (
	"mcucore/critical"
	"mcucore/fault"

	"github.com/davecgh/go-spew/spew"
)

// Ledger tracks ownership of a finite set of chip-supplied keys (pad IDs,
// DMA channels). The zero value is not usable; construct with New.
type Ledger[K comparable] struct {
	name   string
	owners map[K]string
}

// New creates an empty ledger. name identifies the ledger in fatal
// diagnostics (e.g. "pad", "dma").
func New[K comparable](name string) *Ledger[K] {
	return &Ledger[K]{name: name, owners: make(map[K]string)}
}

// Reserve marks every key in keys as owned by owner. If any key is already
// owned, nothing is mutated and Reserve raises a fatal fault naming both
// the conflicting key and its current owner.
func (l *Ledger[K]) Reserve(owner string, keys ...K) {
	critical.Do(func() {
		for _, k := range keys {
			if prior, ok := l.owners[k]; ok {
				fault.Raise("ledger(%s): %v already reserved by %q, cannot reserve for %q\nowners: %s",
					l.name, k, prior, owner, spew.Sdump(l.owners))
			}
		}
		for _, k := range keys {
			l.owners[k] = owner
		}
	})
}

// Release clears ownership of every key in keys. Releasing a key not
// currently owned by owner is a fatal fault.
func (l *Ledger[K]) Release(owner string, keys ...K) {
	critical.Do(func() {
		for _, k := range keys {
			if prior, ok := l.owners[k]; !ok || prior != owner {
				fault.Raise("ledger(%s): %v is not owned by %q (owner: %q)", l.name, k, owner, prior)
			}
		}
		for _, k := range keys {
			delete(l.owners, k)
		}
	})
}

// IsReserved reports whether k currently has an owner.
func (l *Ledger[K]) IsReserved(k K) bool {
	_, ok := l.owners[k]
	return ok
}

// OwnerOf returns the owner descriptor for k, if any. Owner names are
// recorded only in the debug build; the release build's OwnerOf always
// returns ("", false).
func (l *Ledger[K]) OwnerOf(k K) (string, bool) {
	owner, ok := l.owners[k]
	return owner, ok
}
