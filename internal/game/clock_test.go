package game

import (
	"math"
	"testing"
)

func TestClockWholeSteps(t *testing.T) {
	c := NewClock(60)
	if n := c.Advance(0.05); n != 3 {
		t.Fatalf("expected 3 steps for 50ms, got %d", n)
	}
	if math.Abs(c.Remainder()) > 1e-9 {
		t.Fatalf("expected no remainder, got %g", c.Remainder())
	}
}

func TestClockCarriesJitter(t *testing.T) {
	c := NewClock(60)
	total := 0
	for _, dt := range []float64{0.010, 0.020, 0.007, 0.030, 0.016, 0.017} {
		total += c.Advance(dt)
	}
	// 0.1 s at 60 Hz is six steps.
	if total != 6 {
		t.Fatalf("expected 6 steps, got %d (remainder %g)", total, c.Remainder())
	}
	if math.Abs(c.Remainder()) > 1e-6 {
		t.Fatalf("unexpected remainder %g", c.Remainder())
	}
}

func TestClockSpreadsCatchUp(t *testing.T) {
	c := NewClock(60)
	// Half a second owes 30 steps, paid at most maxCatchUp per call.
	var got []int
	for i, elapsed := range []float64{0.5, 0, 0, 0} {
		got = append(got, c.Advance(elapsed))
		if i == 0 && math.Abs(c.Remainder()-(0.5-float64(maxCatchUp)/60)) > 1e-9 {
			t.Fatalf("backlog not kept, remainder=%g", c.Remainder())
		}
	}
	if got[0] != maxCatchUp || got[1] != maxCatchUp || got[2] != maxCatchUp || got[3] != 0 {
		t.Fatalf("expected 10,10,10,0 steps, got %v", got)
	}
	if c.Remainder() > 1e-9 {
		t.Fatalf("expected no remainder once caught up, got %g", c.Remainder())
	}
	if n := c.Advance(-1); n != 0 {
		t.Fatalf("negative delta produced %d steps", n)
	}
}

func TestNewClockDefaultsRate(t *testing.T) {
	if got := NewClock(0).Step(); math.Abs(got-1.0/60) > 1e-12 {
		t.Fatalf("expected 60 Hz default, got %g", got)
	}
}
