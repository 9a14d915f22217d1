package targets

import (
	"reactionarena/internal/geom"
	"time"
)

// DefaultSize is the edge length of a target's square hit box in world units.
const DefaultSize = 50.0

type Target struct {
	ID        int
	Position  geom.Vec2 // centre, world space
	Size      float64
	Color     string
	SpawnedAt time.Time
}

// Bounds is the target's hit box.
func (t Target) Bounds() geom.Rect {
	return geom.RectAround(t.Position, t.Size)
}

// HitResult is produced when a click lands on the live target.
type HitResult struct {
	Target   Target
	Reaction time.Duration
}
