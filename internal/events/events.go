package events

import (
	"reactionarena/internal/activity"
	"reactionarena/internal/targets"
	"time"
)

type Kind string

const (
	KindSpawn      = Kind("spawn")
	KindHit        = Kind("hit")
	KindSuperseded = Kind("superseded")
	KindActivity   = Kind("activity")
)

// Event is something that happened during a frame. Only the fields that
// matter for its Kind are set.
type Event struct {
	Kind     Kind
	At       time.Time
	Target   targets.Target
	Reaction time.Duration  // hit
	Interval time.Duration  // hit: interval after adjustment
	State    activity.State // activity
}

const busSize = 64

type Bus struct {
	Events chan Event
}

func NewBus() *Bus {
	return &Bus{
		Events: make(chan Event, busSize),
	}
}

// Publish never blocks the frame; it reports false when the event was
// dropped because nobody is draining the bus.
func (b *Bus) Publish(ev Event) bool {
	select {
	case b.Events <- ev:
		return true
	default:
		return false
	}
}
