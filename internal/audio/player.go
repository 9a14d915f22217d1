package audio

import (
	"context"
	"fmt"
	"reactionarena/internal/events"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Player mixes event cues onto the speaker. Until Initialize succeeds every
// call is a no-op, so hosts can keep one around with audio disabled.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	logger      *log.Logger
}

func NewPlayer(logger *log.Logger) *Player {
	if logger == nil {
		logger = log.Default()
	}
	return &Player{
		mixer:  &beep.Mixer{},
		logger: logger.WithPrefix("audio"),
	}
}

// Initialize opens the speaker.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("initializing speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues the cue for ev, if it has one.
func (p *Player) Play(ev events.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s := Sound(sampleRate, ev)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Run plays cues for events from bus until ctx is done.
func (p *Player) Run(ctx context.Context, bus <-chan events.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-bus:
			p.Play(ev)
		}
	}
}

// Close silences anything still playing.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
	p.logger.Debug("speaker closed")
}
