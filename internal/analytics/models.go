package analytics

import (
	"reactionarena/internal/events"
	"time"
)

// SessionStats summarises one play session. It lives in memory only and is
// discarded with the session.
type SessionStats struct {
	Hits         int
	Spawns       int
	Superseded   int
	BestReaction time.Duration
	AvgReaction  time.Duration
	LastReaction time.Duration
	Interval     time.Duration
	Badges       []Badge

	total time.Duration
}

// HitRate is the percentage of spawned targets that were hit.
func (s *SessionStats) HitRate() float64 {
	if s.Spawns == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.Spawns) * 100
}

// Record folds one game event into the stats.
func (s *SessionStats) Record(ev events.Event) {
	switch ev.Kind {
	case events.KindSpawn:
		s.Spawns++
	case events.KindSuperseded:
		s.Superseded++
	case events.KindHit:
		s.Hits++
		s.total += ev.Reaction
		s.AvgReaction = s.total / time.Duration(s.Hits)
		s.LastReaction = ev.Reaction
		if s.BestReaction == 0 || ev.Reaction < s.BestReaction {
			s.BestReaction = ev.Reaction
		}
		s.Interval = ev.Interval
		s.Badges = EvaluateSessionBadges(*s)
	}
}
