package chip

import (
	"mcucore/clock"
	"mcucore/tick"
)

// Domain names a clock domain a chip's clock tree exposes frequencies for
// (e.g. "cpu", "apb1", "uart0"). Domains are chip-defined; the core only
// ever looks one up by name.
type Domain string

// Clocks is the read-only clock-tree query surface the core relies on for
// tick timing and peripheral baud/bit-rate computation.
type Clocks interface {
	CurrentTick() tick.Tick
	GetFrequency(domain Domain) clock.Hz
}

// MicrotickSource is the optional fine-grained counter extension to Clocks.
// Chips without a free-running counter simply don't implement it; callers
// that need microticks (the JTAG adapter) type-assert for it.
type MicrotickSource interface {
	CurrentMicrotick() tick.Microtick
}

// ParsedConfig carries one resolved frequency per clock domain after a
// chip validates a user-supplied clock configuration.
type ParsedConfig map[Domain]clock.Hz

// ConfigParser validates a user clock configuration (of chip-defined shape
// UserConfig) against the chip's PLL/divider constraints, returning the
// resulting per-domain frequencies or a configuration error.
type ConfigParser[UserConfig any] interface {
	ParseConfig(cfg UserConfig) (ParsedConfig, error)
}
