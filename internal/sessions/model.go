package sessions

import (
	"reactionarena/internal/analytics"
	"reactionarena/internal/events"
	"reactionarena/internal/gamedata"
	"sync"
	"time"
)

// Session is one player's game. Game is stepped by exactly one goroutine;
// everything else goes through the locked accessors.
type Session struct {
	ID        string
	Tag       string
	Game      *gamedata.Game
	Bus       *events.Bus
	CreatedAt time.Time

	mu       sync.Mutex
	stats    analytics.SessionStats
	lastSeen time.Time
}

func (s *Session) Record(ev events.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats.Record(ev)
	s.lastSeen = ev.At
}

// Stats returns a copy of the session's running stats.
func (s *Session) Stats() analytics.SessionStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	stats := s.stats
	stats.Badges = append([]analytics.Badge(nil), s.stats.Badges...)
	return stats
}

func (s *Session) Touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = now
}

func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}
