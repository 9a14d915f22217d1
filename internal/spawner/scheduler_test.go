package spawner

import (
	"testing"
	"time"
)

func TestNewScheduler(t *testing.T) {
	s := NewScheduler(DefaultInterval)
	if s.Timer().Duration() != 2*time.Second {
		t.Errorf("Duration() = %v, want 2s", s.Timer().Duration())
	}
	if !s.Timer().Repeating() {
		t.Error("spawn timer should repeat")
	}
	if s.Timer().Elapsed() != 0 {
		t.Errorf("Elapsed() = %v, want 0", s.Timer().Elapsed())
	}
}

func TestScheduler_FiresOnExpiry(t *testing.T) {
	s := NewScheduler(2 * time.Second)

	if s.Tick(1500*time.Millisecond, true) {
		t.Fatal("should not fire before the interval")
	}
	if !s.Tick(500*time.Millisecond, true) {
		t.Fatal("should fire when elapsed reaches the interval")
	}
	if s.Timer().Elapsed() != 0 {
		t.Errorf("Elapsed() = %v, want 0 after firing", s.Timer().Elapsed())
	}
}

func TestScheduler_NoDoubleFire(t *testing.T) {
	s := NewScheduler(2 * time.Second)

	if !s.Tick(7*time.Second, true) {
		t.Fatal("a large dt should fire")
	}
	if s.Timer().Elapsed() != 0 {
		t.Errorf("Elapsed() = %v, want 0; overshoot must not carry", s.Timer().Elapsed())
	}
	if s.Tick(0, true) {
		t.Error("the next frame should not fire again")
	}
}

func TestScheduler_InactiveDoesNotTick(t *testing.T) {
	s := NewScheduler(2 * time.Second)

	for range 10 {
		if s.Tick(time.Second, false) {
			t.Fatal("inactive scheduler fired")
		}
	}
	if s.Timer().Elapsed() != 0 {
		t.Errorf("Elapsed() = %v, want 0 while inactive", s.Timer().Elapsed())
	}
}

func TestScheduler_NegativeDelta(t *testing.T) {
	s := NewScheduler(2 * time.Second)
	s.Tick(time.Second, true)
	s.Tick(-5*time.Second, true)
	if s.Timer().Elapsed() != time.Second {
		t.Errorf("Elapsed() = %v, want 1s", s.Timer().Elapsed())
	}
}

func TestScheduler_Rearm(t *testing.T) {
	s := NewScheduler(2 * time.Second)
	s.Tick(time.Second, true)

	s.Rearm(1.5)
	if s.Timer().Seconds() != 1.5 {
		t.Errorf("Seconds() = %v, want 1.5", s.Timer().Seconds())
	}
	if s.Timer().Elapsed() != 0 {
		t.Errorf("Elapsed() = %v, want 0", s.Timer().Elapsed())
	}

	s.Tick(time.Second, true)
	s.Rearm(0)
	if s.Timer().Seconds() != 1.5 {
		t.Errorf("Rearm(0) changed duration to %v", s.Timer().Seconds())
	}
	if s.Timer().Elapsed() != 0 {
		t.Errorf("Rearm(0) should still reset elapsed, got %v", s.Timer().Elapsed())
	}
}

func TestTimer_OneShot(t *testing.T) {
	tm := NewTimer(time.Second, false)
	if !tm.Tick(2 * time.Second) {
		t.Fatal("one-shot timer should fire")
	}
	if tm.Tick(2 * time.Second) {
		t.Error("one-shot timer fired twice")
	}
	tm.Reset()
	if !tm.Tick(time.Second) {
		t.Error("reset one-shot timer should fire again")
	}
}

func TestNewTimer_PanicsOnZero(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewTimer(0) should panic")
		}
	}()
	NewTimer(0, true)
}
