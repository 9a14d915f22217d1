// Package spawner owns the adaptive spawn timer and turns elapsed frame time
// into spawn requests.
package spawner

import "time"

// Scheduler emits one spawn request each time its timer expires.
type Scheduler struct {
	timer *Timer
}

func NewScheduler(interval time.Duration) *Scheduler {
	return &Scheduler{timer: NewTimer(interval, true)}
}

// Tick advances the timer by dt while active and reports whether a spawn is
// due this frame.
func (s *Scheduler) Tick(dt time.Duration, active bool) bool {
	if !active {
		return false
	}
	return s.timer.Tick(dt)
}

func (s *Scheduler) Timer() *Timer { return s.timer }

// Rearm replaces the timer with a fresh repeating one of the given length in
// seconds. Non-positive lengths are ignored so the interval stays valid.
func (s *Scheduler) Rearm(seconds float64) {
	if !(seconds > 0) {
		s.timer.Reset()
		return
	}
	s.timer = newTimerSeconds(seconds)
}
