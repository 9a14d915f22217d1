// Package activity gates per-frame work between the menu and a running game.
package activity

type State int

const (
	Inactive State = iota
	Active
)

func (s State) String() string {
	if s == Active {
		return "active"
	}
	return "inactive"
}

// Gate starts Inactive. The zero value is ready to use.
type Gate struct {
	state State
}

func (g *Gate) State() State { return g.state }

func (g *Gate) Active() bool { return g.state == Active }

// Activate reports whether the state changed.
func (g *Gate) Activate() bool {
	if g.state == Active {
		return false
	}
	g.state = Active
	return true
}

// Deactivate reports whether the state changed.
func (g *Gate) Deactivate() bool {
	if g.state == Inactive {
		return false
	}
	g.state = Inactive
	return true
}

// Apply feeds one frame's edge-triggered signals into the gate. Activate is
// handled before deactivate, so a frame carrying both ends Inactive.
// changed compares the state before and after the frame.
func (g *Gate) Apply(activate, deactivate bool) (changed bool) {
	if activate && g.Activate() {
		changed = true
	}
	if deactivate && g.Deactivate() {
		changed = !changed
	}
	return changed
}
