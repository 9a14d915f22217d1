// Package sessions keeps the live web play sessions, one game per
// connection, and sweeps the ones nobody has touched for a while.
package sessions

import (
	"context"
	"fmt"
	"reactionarena/internal/events"
	"reactionarena/internal/gamedata"
	"sync"
	"time"

	"github.com/google/uuid"
)

const sweepEvery = 5 * time.Minute

// GameFactory builds the game for a new session, publishing to bus.
type GameFactory func(bus *events.Bus) *gamedata.Game

type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	newGame  GameFactory
	ttl      time.Duration
}

func NewStore(newGame GameFactory, ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		newGame:  newGame,
		ttl:      ttl,
	}
}

func (s *Store) Create() (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Try up to 10 times to find an unused tag
	for range 10 {
		tag, err := NewTag()
		if err != nil {
			return nil, fmt.Errorf("generating session tag: %w", err)
		}
		if s.tagInUse(tag) {
			continue
		}

		bus := events.NewBus()
		now := time.Now()
		sess := &Session{
			ID:        uuid.NewString(),
			Tag:       tag,
			Game:      s.newGame(bus),
			Bus:       bus,
			CreatedAt: now,
			lastSeen:  now,
		}
		s.sessions[sess.ID] = sess
		return sess, nil
	}
	return nil, fmt.Errorf("failed to generate unique session tag after 10 attempts")
}

func (s *Store) tagInUse(tag string) bool {
	for _, sess := range s.sessions {
		if sess.Tag == tag {
			return true
		}
	}
	return false
}

// Get accepts only well-formed UUIDs.
func (s *Store) Get(id string) *Session {
	if _, err := uuid.Parse(id); err != nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[id]
}

func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

func (s *Store) List() []*Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := make([]*Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		list = append(list, sess)
	}
	return list
}

// Sweep drops sessions idle for longer than the TTL and reports how many
// went.
func (s *Store) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, sess := range s.sessions {
		if now.Sub(sess.LastSeen()) > s.ttl {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// RunSweeper sweeps periodically until ctx is done.
func (s *Store) RunSweeper(ctx context.Context) {
	ticker := time.NewTicker(sweepEvery)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.Sweep(now)
		}
	}
}
