package frequency

import (
	"io"
	"math"
	"reactionarena/internal/spawner"
	"reactionarena/internal/targets"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

var quiet = log.New(io.Discard)

func TestNewController_Factor(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0.99, 0.99},
		{0.5, 0.5},
		{1, 1},
		{0, DefaultFactor},
		{-1, DefaultFactor},
		{1.5, DefaultFactor},
		{math.NaN(), DefaultFactor},
	}
	for _, tt := range tests {
		if got := NewController(tt.in, quiet).Factor(); got != tt.want {
			t.Errorf("NewController(%v).Factor() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestOnHit_ShrinksInterval(t *testing.T) {
	s := spawner.NewScheduler(2 * time.Second)
	c := NewController(DefaultFactor, quiet)

	adj := c.OnHit(targets.HitResult{Reaction: 300 * time.Millisecond}, s)

	if math.Abs(s.Timer().Seconds()-1.98) > 1e-12 {
		t.Errorf("interval = %v, want 1.98", s.Timer().Seconds())
	}
	if adj.Previous != 2*time.Second {
		t.Errorf("Previous = %v, want 2s", adj.Previous)
	}
	if adj.Reaction != 300*time.Millisecond {
		t.Errorf("Reaction = %v, want 300ms", adj.Reaction)
	}
	if !s.Timer().Repeating() {
		t.Error("rearmed timer should repeat")
	}
}

func TestOnHit_CompoundsOverHits(t *testing.T) {
	const d0 = 2.0
	s := spawner.NewScheduler(2 * time.Second)
	c := NewController(DefaultFactor, quiet)

	for n := 1; n <= 500; n++ {
		c.OnHit(targets.HitResult{}, s)
		want := d0 * math.Pow(DefaultFactor, float64(n))
		if got := s.Timer().Seconds(); math.Abs(got-want) > 1e-9*want {
			t.Fatalf("after %d hits interval = %v, want %v", n, got, want)
		}
	}
}

func TestOnHit_ResetsElapsed(t *testing.T) {
	for _, before := range []time.Duration{0, 500 * time.Millisecond, 1999 * time.Millisecond} {
		s := spawner.NewScheduler(2 * time.Second)
		s.Tick(before, true)
		NewController(DefaultFactor, quiet).OnHit(targets.HitResult{}, s)
		if s.Timer().Elapsed() != 0 {
			t.Errorf("elapsed before %v: after hit Elapsed() = %v, want 0", before, s.Timer().Elapsed())
		}
	}
}

func TestOnHit_IgnoresReactionMagnitude(t *testing.T) {
	fast := spawner.NewScheduler(2 * time.Second)
	slow := spawner.NewScheduler(2 * time.Second)
	c := NewController(DefaultFactor, quiet)

	c.OnHit(targets.HitResult{Reaction: 100 * time.Millisecond}, fast)
	c.OnHit(targets.HitResult{Reaction: 5 * time.Second}, slow)

	if fast.Timer().Seconds() != slow.Timer().Seconds() {
		t.Errorf("intervals differ: %v vs %v", fast.Timer().Seconds(), slow.Timer().Seconds())
	}
}
