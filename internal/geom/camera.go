package geom

import "errors"

var (
	ErrSingular      = errors.New("transform is not invertible")
	ErrEmptyViewport = errors.New("viewport has no area")
)

// Affine is a 2D affine transform stored as the top two rows of a 3x3
// matrix:
//
//	| A C E |
//	| B D F |
//	| 0 0 1 |
type Affine struct {
	A, B, C, D, E, F float64
}

func Identity() Affine { return Affine{A: 1, D: 1} }

func Translate(t Vec2) Affine { return Affine{A: 1, D: 1, E: t.X, F: t.Y} }

func ScaleBy(s Vec2) Affine { return Affine{A: s.X, D: s.Y} }

// Mul returns m*n, i.e. n is applied first.
func (m Affine) Mul(n Affine) Affine {
	return Affine{
		A: m.A*n.A + m.C*n.B,
		B: m.B*n.A + m.D*n.B,
		C: m.A*n.C + m.C*n.D,
		D: m.B*n.C + m.D*n.D,
		E: m.A*n.E + m.C*n.F + m.E,
		F: m.B*n.E + m.D*n.F + m.F,
	}
}

func (m Affine) Apply(p Vec2) Vec2 {
	return Vec2{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

func (m Affine) Inverse() (Affine, error) {
	det := m.A*m.D - m.B*m.C
	if det == 0 {
		return Affine{}, ErrSingular
	}
	inv := 1 / det
	return Affine{
		A: m.D * inv,
		B: -m.B * inv,
		C: -m.C * inv,
		D: m.A * inv,
		E: (m.C*m.F - m.D*m.E) * inv,
		F: (m.B*m.E - m.A*m.F) * inv,
	}, nil
}

// Origin tells where a host puts pixel (0, 0).
type Origin int

const (
	OriginTopLeft Origin = iota
	OriginBottomLeft
)

// Viewport is the drawable area in pixels.
type Viewport struct {
	Width, Height float64
}

func (v Viewport) Empty() bool { return v.Width <= 0 || v.Height <= 0 }

// ToNDC maps a pixel position to normalized device coordinates in
// [-1, 1] with +Y pointing up.
func (v Viewport) ToNDC(screen Vec2, origin Origin) (Vec2, error) {
	if v.Empty() {
		return Vec2{}, ErrEmptyViewport
	}
	y := screen.Y
	if origin == OriginTopLeft {
		y = v.Height - y
	}
	return Vec2{
		X: screen.X/v.Width*2 - 1,
		Y: y/v.Height*2 - 1,
	}, nil
}

// FromNDC is the inverse of ToNDC.
func (v Viewport) FromNDC(ndc Vec2, origin Origin) Vec2 {
	x := (ndc.X + 1) / 2 * v.Width
	y := (ndc.Y + 1) / 2 * v.Height
	if origin == OriginTopLeft {
		y = v.Height - y
	}
	return Vec2{X: x, Y: y}
}

// Camera is a 2D orthographic camera. Position is the world point shown at
// the viewport centre; Scale is world units per pixel.
type Camera struct {
	Position Vec2
	Scale    Vec2
}

func NewCamera() *Camera {
	return &Camera{Scale: Vec2{1, 1}}
}

// View is the camera's world transform (camera space to world space).
func (c *Camera) View() Affine {
	return Translate(c.Position)
}

// Projection maps camera space into NDC for the given viewport.
func (c *Camera) Projection(vp Viewport) Affine {
	return ScaleBy(Vec2{
		X: 2 / (vp.Width * c.Scale.X),
		Y: 2 / (vp.Height * c.Scale.Y),
	})
}

// NDCToWorld composes the view with the inverse projection.
func (c *Camera) NDCToWorld(vp Viewport) (Affine, error) {
	if vp.Empty() {
		return Affine{}, ErrEmptyViewport
	}
	if c.Scale.X == 0 || c.Scale.Y == 0 {
		return Affine{}, ErrSingular
	}
	inv, err := c.Projection(vp).Inverse()
	if err != nil {
		return Affine{}, err
	}
	return c.View().Mul(inv), nil
}

// ScreenToWorld converts a pointer position in pixels to world space.
func (c *Camera) ScreenToWorld(screen Vec2, origin Origin, vp Viewport) (Vec2, error) {
	ndc, err := vp.ToNDC(screen, origin)
	if err != nil {
		return Vec2{}, err
	}
	m, err := c.NDCToWorld(vp)
	if err != nil {
		return Vec2{}, err
	}
	return m.Apply(ndc), nil
}

// WorldToScreen is used by render sinks to place world objects.
func (c *Camera) WorldToScreen(world Vec2, origin Origin, vp Viewport) (Vec2, error) {
	m, err := c.NDCToWorld(vp)
	if err != nil {
		return Vec2{}, err
	}
	inv, err := m.Inverse()
	if err != nil {
		return Vec2{}, err
	}
	return vp.FromNDC(inv.Apply(world), origin), nil
}

// Visible returns the world-space rectangle covered by the viewport.
func (c *Camera) Visible(vp Viewport) Rect {
	return Rect{
		Center: c.Position,
		Half:   Vec2{X: vp.Width * c.Scale.X / 2, Y: vp.Height * c.Scale.Y / 2},
	}
}
