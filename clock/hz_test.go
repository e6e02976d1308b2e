package clock

import "testing"

func TestStringFormatsFrequencyScenarios(t *testing.T) {
	cases := []struct {
		hz   Hz
		want string
	}{
		{12_000_000, "12 MHz"},
		{12_345_000, "12.345 MHz"},
		{1_234, "1.234 kHz"},
		{999, "999 Hz"},
		{0, "0 Hz"},
	}
	for _, c := range cases {
		if got := c.hz.String(); got != c.want {
			t.Errorf("Hz(%d).String() = %q, want %q", uint64(c.hz), got, c.want)
		}
	}
}

func TestMHzAndKHzTruncate(t *testing.T) {
	if got := Hz(12_345_000).MHz(); got != 12 {
		t.Errorf("MHz() = %d, want 12", got)
	}
	if got := Hz(1_234).KHz(); got != 1 {
		t.Errorf("KHz() = %d, want 1", got)
	}
}
