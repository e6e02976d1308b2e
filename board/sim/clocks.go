package sim

import (
	"mcucore/chip"
	"mcucore/clock"
	"mcucore/tick"
)

// Clocks is a fake chip.Clocks/chip.MicrotickSource/chip.ConfigParser whose
// tick and microtick counters only move when the test or application
// driving the simulation advances them explicitly — there is no real-time
// wall clock underneath.
type Clocks struct {
	tick      tick.Tick
	microtick tick.Microtick
	freq      map[chip.Domain]clock.Hz
}

// NewClocks builds a fake clock tree starting at tick 0, microtick 0.
func NewClocks() *Clocks {
	return &Clocks{freq: map[chip.Domain]clock.Hz{}}
}

// SetFrequency fixes the frequency reported for domain.
func (c *Clocks) SetFrequency(domain chip.Domain, hz clock.Hz) { c.freq[domain] = hz }

// AdvanceTicks moves the coarse tick counter forward by n (may wrap, as on
// real hardware).
func (c *Clocks) AdvanceTicks(n int32) { c.tick += tick.Tick(n) }

// AdvanceMicroticks moves the free-running microtick counter forward by n.
func (c *Clocks) AdvanceMicroticks(n int64) { c.microtick += tick.Microtick(n) }

// CurrentTick implements chip.Clocks.
func (c *Clocks) CurrentTick() tick.Tick { return c.tick }

// GetFrequency implements chip.Clocks.
func (c *Clocks) GetFrequency(domain chip.Domain) clock.Hz { return c.freq[domain] }

// CurrentMicrotick implements chip.MicrotickSource.
func (c *Clocks) CurrentMicrotick() tick.Microtick { return c.microtick }

// ParseConfig implements chip.ConfigParser[map[chip.Domain]clock.Hz]: the
// fake chip's "user config" is already a ParsedConfig, so parsing is the
// identity — there is no real clock tree to validate against.
func (c *Clocks) ParseConfig(cfg map[chip.Domain]clock.Hz) (chip.ParsedConfig, error) {
	out := make(chip.ParsedConfig, len(cfg))
	for k, v := range cfg {
		out[k] = v
	}
	return out, nil
}
