// Package targets owns the single live target: spawning it at a random spot
// inside the play area and hit-testing clicks against it.
package targets

import (
	"reactionarena/internal/geom"
	"time"

	"github.com/charmbracelet/log"
)

// RandSource is the subset of *math/rand.Rand the arena samples from.
type RandSource interface {
	Float64() float64
}

// ColorFunc picks a cosmetic colour for a new target. May be nil.
type ColorFunc func() string

type Arena struct {
	size   float64
	rng    RandSource
	color  ColorFunc
	logger *log.Logger

	live   *Target
	nextID int
}

func NewArena(size float64, rng RandSource, color ColorFunc, logger *log.Logger) *Arena {
	if size <= 0 {
		size = DefaultSize
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Arena{
		size:   size,
		rng:    rng,
		color:  color,
		logger: logger.WithPrefix("arena"),
		nextID: 1,
	}
}

// Target returns a copy of the live target, if any.
func (a *Arena) Target() (Target, bool) {
	if a.live == nil {
		return Target{}, false
	}
	return *a.live, true
}

func (a *Arena) Size() float64 { return a.size }

// Spawn places a new target inside area, replacing the live one. The
// replaced target is returned so callers can report it; it is not credited
// as a hit.
func (a *Arena) Spawn(now time.Time, area geom.Rect) (spawned Target, superseded *Target) {
	if a.live != nil {
		prev := *a.live
		superseded = &prev
		a.live = nil
		a.logger.Debug("target superseded", "id", prev.ID)
	}

	inner := area.Shrink(a.size / 2)
	t := &Target{
		ID: a.nextID,
		Position: geom.Vec2{
			X: a.sample(inner.Center.X, inner.Half.X),
			Y: a.sample(inner.Center.Y, inner.Half.Y),
		},
		Size:      a.size,
		SpawnedAt: now,
	}
	if a.color != nil {
		t.Color = a.color()
	}
	a.nextID++
	a.live = t
	a.logger.Debug("target spawned", "id", t.ID, "x", t.Position.X, "y", t.Position.Y)
	return *t, superseded
}

// sample draws uniformly from [center-half, center+half], falling back to
// center when the range is empty.
func (a *Arena) sample(center, half float64) float64 {
	if !(half > 0) {
		return center
	}
	return center - half + a.rng.Float64()*2*half
}

// Click hit-tests a world-space point against the live target. A hit
// removes the target.
func (a *Arena) Click(p geom.Vec2, now time.Time) (HitResult, bool) {
	if a.live == nil {
		return HitResult{}, false
	}
	if !a.live.Bounds().Contains(p) {
		return HitResult{}, false
	}
	hit := HitResult{Target: *a.live, Reaction: now.Sub(a.live.SpawnedAt)}
	a.live = nil
	return hit, true
}

// Clear drops the live target without reporting it.
func (a *Arena) Clear() (cleared bool) {
	cleared = a.live != nil
	a.live = nil
	return cleared
}
