// Package geom holds the 2D math shared by the core and the hosts: vectors,
// rectangles, affine transforms and the orthographic camera used to turn
// pointer pixels into world coordinates.
package geom

type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Mul scales both components by their counterpart in o.
func (v Vec2) Mul(o Vec2) Vec2 { return Vec2{v.X * o.X, v.Y * o.Y} }

func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Rect is an axis-aligned box described by its centre and half extents.
type Rect struct {
	Center Vec2
	Half   Vec2
}

// RectAround returns the square of edge size centred on c.
func RectAround(c Vec2, size float64) Rect {
	return Rect{Center: c, Half: Vec2{size / 2, size / 2}}
}

// Contains reports whether p lies inside r. Edges count as inside and are
// compared directly, so a point built as Center+Half is always contained.
func (r Rect) Contains(p Vec2) bool {
	lo, hi := r.Min(), r.Max()
	return p.X >= lo.X && p.X <= hi.X && p.Y >= lo.Y && p.Y <= hi.Y
}

// Shrink pulls every edge inward by d. Half extents may go negative, which
// callers treat as an empty range.
func (r Rect) Shrink(d float64) Rect {
	return Rect{Center: r.Center, Half: Vec2{r.Half.X - d, r.Half.Y - d}}
}

func (r Rect) Min() Vec2 { return r.Center.Sub(r.Half) }
func (r Rect) Max() Vec2 { return r.Center.Add(r.Half) }

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
