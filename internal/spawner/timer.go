package spawner

import "time"

// DefaultInterval is the spawn interval a new game starts with.
const DefaultInterval = 2 * time.Second

// Timer is a countdown measured in seconds. A repeating timer rearms itself
// when it finishes.
type Timer struct {
	duration  float64
	elapsed   float64
	repeating bool
}

// NewTimer panics on a non-positive duration.
func NewTimer(d time.Duration, repeating bool) *Timer {
	if d <= 0 {
		panic("spawner: timer duration must be positive")
	}
	return &Timer{duration: d.Seconds(), repeating: repeating}
}

func newTimerSeconds(secs float64) *Timer {
	return &Timer{duration: secs, repeating: true}
}

func (t *Timer) Duration() time.Duration { return secondsToDuration(t.duration) }
func (t *Timer) Seconds() float64 { return t.duration }
func (t *Timer) Elapsed() time.Duration { return secondsToDuration(t.elapsed) }
func (t *Timer) Repeating() bool { return t.repeating }

func (t *Timer) Reset() { t.elapsed = 0 }

// Tick advances the timer and reports whether it finished on this call. It
// fires at most once per call no matter how far dt overshoots.
func (t *Timer) Tick(dt time.Duration) bool {
	if dt < 0 {
		dt = 0
	}
	if !t.repeating && t.elapsed >= t.duration {
		return false
	}
	t.elapsed += dt.Seconds()
	if t.elapsed < t.duration {
		return false
	}
	if t.repeating {
		t.elapsed = 0
	} else {
		t.elapsed = t.duration
	}
	return true
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
