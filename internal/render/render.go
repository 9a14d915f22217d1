// Package render turns game state into what a host draws: the target's box
// in screen space and the HUD lines. It does no drawing itself.
package render

import (
	"fmt"
	"math"
	"reactionarena/internal/events"
	"reactionarena/internal/gamedata"
	"reactionarena/internal/geom"
	"reactionarena/internal/targets"
	"time"
)

// Box is an axis-aligned screen rectangle, X/Y at its top-left corner.
type Box struct {
	X, Y, W, H float64
}

// TargetBox places t on screen. ok is false when the camera or viewport
// cannot map world space.
func TargetBox(t targets.Target, cam *geom.Camera, vp geom.Viewport, origin geom.Origin) (box Box, ok bool) {
	b := t.Bounds()
	a, err := cam.WorldToScreen(b.Min(), origin, vp)
	if err != nil {
		return Box{}, false
	}
	c, err := cam.WorldToScreen(b.Max(), origin, vp)
	if err != nil {
		return Box{}, false
	}
	return Box{
		X: math.Min(a.X, c.X),
		Y: math.Min(a.Y, c.Y),
		W: math.Abs(c.X - a.X),
		H: math.Abs(c.Y - a.Y),
	}, true
}

// Status is the running summary a HUD shows.
type Status struct {
	Active   bool
	Interval time.Duration
	Last     time.Duration
	Hits     int
	Missed   int
}

// Update folds a frame's result into the status.
func (s *Status) Update(g *gamedata.Game, res gamedata.Result) {
	s.Active = g.Active()
	s.Interval = g.Interval()
	if hit, ok := res.Hit(); ok {
		s.Last = hit.Reaction
		s.Hits++
	}
	s.Missed += res.Count(events.KindSuperseded)
}

func (s Status) Lines() []string {
	lines := make([]string, 0, 3)
	if s.Active {
		lines = append(lines, "ESC to stop")
	} else {
		lines = append(lines, "SPACE to start")
	}
	lines = append(lines, fmt.Sprintf("interval %s  hits %d  missed %d", s.Interval.Round(time.Millisecond), s.Hits, s.Missed))
	if s.Last > 0 {
		lines = append(lines, fmt.Sprintf("reaction %dms", s.Last.Milliseconds()))
	}
	return lines
}
