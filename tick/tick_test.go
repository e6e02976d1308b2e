package tick

import "testing"

func TestIsAfterBeforeEqualExactlyOneHolds(t *testing.T) {
	cases := []struct{ a, b Tick }{
		{0, 0},
		{10, 3},
		{3, 10},
		{1<<31 - 1, -(1 << 31)}, // adjacent across the wrap, still < half range apart
	}
	for _, c := range cases {
		after := c.a.IsAfter(c.b)
		before := c.a.IsBefore(c.b)
		equal := c.a.Equal(c.b)
		n := 0
		for _, v := range []bool{after, before, equal} {
			if v {
				n++
			}
		}
		if n != 1 {
			t.Fatalf("a=%d b=%d: after=%v before=%v equal=%v (want exactly one true)", c.a, c.b, after, before, equal)
		}
	}
}

func TestIsAfterMatchesWrappingDifferenceSign(t *testing.T) {
	a, b := Tick(100), Tick(40)
	if !a.IsAfter(b) {
		t.Fatal("100 should be after 40")
	}
	if b.IsAfter(a) {
		t.Fatal("40 should not be after 100")
	}
}

func TestDurationRoundingAt1kHz(t *testing.T) {
	const freq = 1000

	if got := (Duration{Milliseconds: 7}).Ticks(freq); got != 7 {
		t.Fatalf("{ms:7}.Ticks(1kHz) = %d, want 7", got)
	}
	if got := (Duration{Microseconds: 499}).Ticks(freq); got != 1 {
		t.Fatalf("{us:499}.Ticks(1kHz) = %d, want 1 (clamped)", got)
	}
	if got := (Duration{Seconds: 1, Milliseconds: 500}).Ticks(freq); got != 1500 {
		t.Fatalf("{s:1,ms:500}.Ticks(1kHz) = %d, want 1500", got)
	}
}

func TestDurationIsNeverLessThanOneTick(t *testing.T) {
	if got := (Duration{}).Ticks(1000); got != 1 {
		t.Fatalf("zero-field duration = %d ticks, want 1", got)
	}
}

func TestTickPlus(t *testing.T) {
	start := Tick(0)
	got := start.Plus(Duration{Milliseconds: 7}, 1000)
	if got != 7 {
		t.Fatalf("Tick(0).Plus({ms:7}, 1kHz) = %d, want 7", got)
	}
}

func TestMicrotickPlusAndOrdering(t *testing.T) {
	start := Microtick(1_000_000)
	later := start.Plus(Duration{Seconds: 1}, 1_000_000)
	if !later.IsAfter(start) {
		t.Fatal("advancing a microtick by a positive duration must produce a later value")
	}
}
