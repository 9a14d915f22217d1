package render

import (
	"io"
	"reactionarena/internal/events"
	"reactionarena/internal/gamedata"
	"reactionarena/internal/geom"
	"reactionarena/internal/targets"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestTargetBox_DefaultCamera(t *testing.T) {
	tgt := targets.Target{Position: geom.Vec2{X: 100, Y: 50}, Size: 50}
	vp := geom.Viewport{Width: 1024, Height: 512}

	box, ok := TargetBox(tgt, geom.NewCamera(), vp, geom.OriginTopLeft)
	if !ok {
		t.Fatal("TargetBox() not ok")
	}
	// centre lands at (512+100, 256-50), top-left corner 25 px up and left
	want := Box{X: 587, Y: 181, W: 50, H: 50}
	if box != want {
		t.Errorf("TargetBox() = %+v, want %+v", box, want)
	}
}

func TestTargetBox_TerminalCells(t *testing.T) {
	tgt := targets.Target{Position: geom.Vec2{}, Size: 50}
	cam := &geom.Camera{Scale: geom.Vec2{X: 1, Y: 2}}
	vp := geom.Viewport{Width: 128, Height: 64}

	box, ok := TargetBox(tgt, cam, vp, geom.OriginTopLeft)
	if !ok {
		t.Fatal("TargetBox() not ok")
	}
	if box.W != 50 || box.H != 25 {
		t.Errorf("box size = %vx%v cells, want 50x25", box.W, box.H)
	}
}

func TestTargetBox_EmptyViewport(t *testing.T) {
	if _, ok := TargetBox(targets.Target{Size: 50}, geom.NewCamera(), geom.Viewport{}, geom.OriginTopLeft); ok {
		t.Error("TargetBox() with empty viewport should not be ok")
	}
}

func TestStatus_UpdateAndLines(t *testing.T) {
	g := gamedata.NewGame(gamedata.DefaultConfig(), nil, nil, log.New(io.Discard))
	g.Step(gamedata.Frame{Now: time.Now(), Activate: true})

	var s Status
	s.Update(g, gamedata.Result{Events: []events.Event{
		{Kind: events.KindSuperseded},
		{Kind: events.KindHit, Reaction: 321 * time.Millisecond},
	}})

	if !s.Active || s.Hits != 1 || s.Missed != 1 || s.Last != 321*time.Millisecond {
		t.Fatalf("status = %+v", s)
	}
	if s.Interval != 2*time.Second {
		t.Errorf("Interval = %v, want 2s", s.Interval)
	}

	lines := s.Lines()
	if lines[0] != "ESC to stop" {
		t.Errorf("first line = %q", lines[0])
	}
	if !strings.Contains(strings.Join(lines, "\n"), "reaction 321ms") {
		t.Errorf("lines = %q, want reaction", lines)
	}
}

func TestStatus_LinesIdle(t *testing.T) {
	lines := Status{Interval: 2 * time.Second}.Lines()
	if len(lines) != 2 || lines[0] != "SPACE to start" {
		t.Errorf("Lines() = %q", lines)
	}
}
