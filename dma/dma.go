// Package dma defines the DMA channel identifier type and the process-wide
// DMA channel ownership ledger described in spec.md §3.3. The shape is
// identical to package pad's ledger, keyed on Channel instead of pad.ID.
package dma

import "mcucore/ledger"

// Channel names a single DMA channel. Chip packages construct Channels and
// typically expose them as package-level values (e.g. dma.New("DMA0")).
type Channel struct {
	tag string
}

// New constructs a DMA channel identifier from its chip-defined tag name.
func New(tag string) Channel { return Channel{tag: tag} }

// String returns the channel's tag name.
func (c Channel) String() string { return c.tag }

// Valid reports whether c was constructed with a non-empty tag.
func (c Channel) Valid() bool { return c.tag != "" }

// Ledger is the process-wide DMA channel ownership registry.
var Ledger = ledger.New[Channel]("dma")

// Reserve marks channels as owned by owner, fatally if any is already owned.
func Reserve(owner string, channels ...Channel) { Ledger.Reserve(owner, channels...) }

// Release clears ownership of channels, fatally if owner does not hold all of them.
func Release(owner string, channels ...Channel) { Ledger.Release(owner, channels...) }

// IsReserved reports whether c currently has an owner.
func IsReserved(c Channel) bool { return Ledger.IsReserved(c) }
