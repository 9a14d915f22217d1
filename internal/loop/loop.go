// Package loop drives a frame-stepped update from wall-clock time for hosts
// that do not bring their own game loop.
package loop

import (
	"context"
	"errors"
	"time"
)

// ErrStop ends Run without reporting an error.
var ErrStop = errors.New("loop stopped")

const minDelay = time.Millisecond

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FrameClock hands out the current time and the time since the previous
// frame.
type FrameClock struct {
	clock Clock
	last  time.Time
}

func NewFrameClock(c Clock) *FrameClock {
	if c == nil {
		c = SystemClock{}
	}
	return &FrameClock{clock: c, last: c.Now()}
}

func (f *FrameClock) Next() (now time.Time, dt time.Duration) {
	now = f.clock.Now()
	dt = now.Sub(f.last)
	if dt < 0 {
		dt = 0
	}
	f.last = now
	return now, dt
}

// StepFunc runs one frame. Returning ErrStop ends the loop cleanly.
type StepFunc func(now time.Time, dt time.Duration) error

// Run calls step once per delay until ctx is cancelled or step fails. The
// delay acts as the frame limiter.
func Run(ctx context.Context, delay time.Duration, clock Clock, step StepFunc) error {
	if delay < minDelay {
		delay = minDelay
	}
	ticker := time.NewTicker(delay)
	defer ticker.Stop()

	fc := NewFrameClock(clock)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			now, dt := fc.Next()
			if err := step(now, dt); err != nil {
				if errors.Is(err, ErrStop) {
					return nil
				}
				return err
			}
		}
	}
}
