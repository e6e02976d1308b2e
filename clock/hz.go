// Package clock provides the frequency value type used by the chip clock
// contract and the JTAG adapter; the clock query contract itself is
// chip.Clocks.
package clock

import "mcucore/logfmt"

// Hz is a clock or tick frequency in hertz. chip.Clocks.GetFrequency
// returns one of these per domain.
type Hz uint64

// String renders hz as a human string in MHz/kHz/Hz, trimming trailing
// fractional zeros (and a bare trailing '.') the way an engineer would
// write it on a datasheet: up to six fractional digits in the MHz range,
// three in the kHz range, none below that.
func (hz Hz) String() string {
	switch {
	case hz >= 1_000_000:
		return scaled(uint64(hz), 1_000_000, 6) + " MHz"
	case hz >= 1_000:
		return scaled(uint64(hz), 1_000, 3) + " kHz"
	default:
		return logfmt.FormatUint(uint64(hz), 10) + " Hz"
	}
}

// MHz returns hz expressed as a whole number of megahertz, truncating any
// remainder.
func (hz Hz) MHz() uint64 { return uint64(hz) / 1_000_000 }

// KHz returns hz expressed as a whole number of kilohertz, truncating any
// remainder.
func (hz Hz) KHz() uint64 { return uint64(hz) / 1_000 }

// scaled formats v/scale as an integer part plus up to fracDigits of
// fractional part, zero-padded then trimmed of trailing zeros.
func scaled(v, scale uint64, fracDigits int) string {
	intPart := v / scale
	rem := v % scale

	out := logfmt.FormatUint(intPart, 10)
	if rem == 0 {
		return out
	}

	frac := make([]byte, fracDigits)
	for i := fracDigits - 1; i >= 0; i-- {
		frac[i] = byte('0' + rem%10)
		rem /= 10
	}
	end := len(frac)
	for end > 0 && frac[end-1] == '0' {
		end--
	}
	if end == 0 {
		return out
	}
	return out + "." + string(frac[:end])
}
