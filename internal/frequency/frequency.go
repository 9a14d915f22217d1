// Package frequency tightens the spawn interval after every hit.
package frequency

import (
	"reactionarena/internal/spawner"
	"reactionarena/internal/targets"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultFactor shrinks the interval by 1% per hit.
const DefaultFactor = 0.99

// Adjustment records what a hit did to the spawn interval.
type Adjustment struct {
	Reaction time.Duration
	Previous time.Duration
	Next     time.Duration
}

type Controller struct {
	factor float64
	logger *log.Logger
}

// NewController falls back to DefaultFactor when factor is outside (0, 1].
func NewController(factor float64, logger *log.Logger) *Controller {
	if !(factor > 0 && factor <= 1) {
		factor = DefaultFactor
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Controller{factor: factor, logger: logger.WithPrefix("frequency")}
}

func (c *Controller) Factor() float64 { return c.factor }

// OnHit restarts the scheduler's interval from zero and compounds the
// shrink factor onto its duration. The reaction time does not influence the
// new interval.
func (c *Controller) OnHit(hit targets.HitResult, s *spawner.Scheduler) Adjustment {
	s.Timer().Reset()

	prev := s.Timer().Seconds()
	s.Rearm(prev * c.factor)

	adj := Adjustment{
		Reaction: hit.Reaction,
		Previous: time.Duration(prev * float64(time.Second)),
		Next:     s.Timer().Duration(),
	}
	c.logger.Info("target hit",
		"reaction", hit.Reaction.Seconds(),
		"interval", s.Timer().Seconds(),
	)
	return adj
}
