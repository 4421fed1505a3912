package sim

import (
	"math"
	"testing"
	"time"
)

func TestClockBanksPartialSteps(t *testing.T) {
	c := NewClock(0.0166666)

	if n := c.Advance(0.01); n != 0 {
		t.Fatalf("Advance(0.01) = %d, want 0", n)
	}
	if got := c.Accumulator(); math.Abs(got-0.01) > 1e-12 {
		t.Fatalf("accumulator = %v, want 0.01", got)
	}

	if n := c.Advance(0.01); n != 1 {
		t.Fatalf("second Advance(0.01) = %d, want 1", n)
	}
	if got := c.Accumulator(); math.Abs(got-(0.02-0.0166666)) > 1e-9 {
		t.Fatalf("accumulator = %v after one step", got)
	}
}

func TestClockAdvance(t *testing.T) {
	cases := []struct {
		name  string
		delta float64
		want  int
	}{
		{"zero", 0, 0},
		{"negative", -1, 0},
		{"one step", 0.25, 1},
		{"several", 1, 4},
		{"just short", 0.2499, 0},
		{"large", 100, 400},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			clock := NewClock(0.25)
			if got := clock.Advance(c.delta); got != c.want {
				t.Fatalf("Advance(%v) = %d, want %d", c.delta, got, c.want)
			}
			if clock.Accumulator() < 0 || clock.Accumulator() >= clock.Step() {
				t.Fatalf("accumulator %v outside [0,%v)", clock.Accumulator(), clock.Step())
			}
		})
	}
}

func TestClockTracksElapsedTime(t *testing.T) {
	c := NewClock(DefaultStep)
	deltas := []float64{0.001, 0.016, 0.017, 0.033, 0.0049, 0.1, 0.0166666, 0.02}

	elapsed := 0.0
	steps := 0
	for i := 0; i < 5000; i++ {
		d := deltas[i%len(deltas)]
		elapsed += d
		steps += c.Advance(d)

		consumed := float64(steps) * c.Step()
		if diff := elapsed - consumed; diff < -1e-6 || diff >= c.Step()+1e-6 {
			t.Fatalf("frame %d: elapsed %v consumed %v", i, elapsed, consumed)
		}
	}
}

func TestClockTick(t *testing.T) {
	c := NewClock(0.5)
	start := time.Unix(100, 0)

	if n := c.Tick(start); n != 0 {
		t.Fatalf("first Tick = %d, want 0", n)
	}
	if n := c.Tick(start.Add(1250 * time.Millisecond)); n != 2 {
		t.Fatalf("Tick after 1.25s = %d, want 2", n)
	}
	if n := c.Tick(start.Add(time.Second)); n != 0 {
		t.Fatalf("Tick going backwards = %d, want 0", n)
	}

	c.Reset()
	if c.Accumulator() != 0 {
		t.Fatalf("Reset kept %v banked", c.Accumulator())
	}
	if n := c.Tick(start.Add(time.Hour)); n != 0 {
		t.Fatalf("Tick after Reset = %d, want 0", n)
	}
}
