package targets

import (
	"io"
	"math/rand"
	"reactionarena/internal/geom"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }

var (
	quiet = log.New(io.Discard)
	epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	play  = geom.Rect{Half: geom.Vec2{X: 800, Y: 450}}
)

func newTestArena(rng RandSource) *Arena {
	return NewArena(DefaultSize, rng, nil, quiet)
}

func TestNewArena_Empty(t *testing.T) {
	a := newTestArena(fixedRand(0.5))
	if _, ok := a.Target(); ok {
		t.Error("new arena should have no target")
	}
	if a.Size() != 50 {
		t.Errorf("Size() = %v, want 50", a.Size())
	}
}

func TestNewArena_NonPositiveSize(t *testing.T) {
	a := NewArena(0, fixedRand(0), nil, quiet)
	if a.Size() != DefaultSize {
		t.Errorf("Size() = %v, want %v", a.Size(), DefaultSize)
	}
}

func TestArena_SpawnReplaces(t *testing.T) {
	a := newTestArena(rand.New(rand.NewSource(7)))

	first, superseded := a.Spawn(epoch, play)
	if superseded != nil {
		t.Errorf("first spawn superseded %+v", superseded)
	}
	for i := range 20 {
		next, superseded := a.Spawn(epoch.Add(time.Duration(i)*time.Second), play)
		if superseded == nil {
			t.Fatal("spawn over a live target should report it")
		}
		if superseded.ID != first.ID {
			t.Errorf("superseded ID = %d, want %d", superseded.ID, first.ID)
		}
		live, ok := a.Target()
		if !ok {
			t.Fatal("a target should exist after spawn")
		}
		if live.ID != next.ID {
			t.Errorf("live ID = %d, want %d", live.ID, next.ID)
		}
		first = next
	}
}

func TestArena_SpawnIDsIncrement(t *testing.T) {
	a := newTestArena(fixedRand(0.5))
	t1, _ := a.Spawn(epoch, play)
	t2, _ := a.Spawn(epoch, play)
	t3, _ := a.Spawn(epoch, play)
	if t1.ID != 1 || t2.ID != 2 || t3.ID != 3 {
		t.Errorf("IDs = %d, %d, %d; want 1, 2, 3", t1.ID, t2.ID, t3.ID)
	}
}

func TestArena_SpawnStaysInsidePlayArea(t *testing.T) {
	a := newTestArena(rand.New(rand.NewSource(42)))

	for range 1000 {
		tg, _ := a.Spawn(epoch, play)
		b := tg.Bounds()
		if b.Min().X < -800 || b.Max().X > 800 || b.Min().Y < -450 || b.Max().Y > 450 {
			t.Fatalf("target bounds %v..%v leave the play area", b.Min(), b.Max())
		}
	}
}

func TestArena_SpawnSamplingRange(t *testing.T) {
	area := geom.Rect{Center: geom.Vec2{X: 100, Y: -100}, Half: geom.Vec2{X: 200, Y: 100}}

	low, _ := newTestArena(fixedRand(0)).Spawn(epoch, area)
	if low.Position != (geom.Vec2{X: -75, Y: -175}) {
		t.Errorf("low sample = %v, want {-75 -175}", low.Position)
	}

	mid, _ := newTestArena(fixedRand(0.5)).Spawn(epoch, area)
	if mid.Position != area.Center {
		t.Errorf("mid sample = %v, want %v", mid.Position, area.Center)
	}
}

func TestArena_SpawnDegenerateArea(t *testing.T) {
	a := newTestArena(fixedRand(0.9))
	area := geom.Rect{Center: geom.Vec2{X: 3, Y: 4}, Half: geom.Vec2{X: 10, Y: 500}}

	tg, _ := a.Spawn(epoch, area)
	if tg.Position.X != 3 {
		t.Errorf("X = %v, want clamp to centre 3", tg.Position.X)
	}
	if tg.Position.Y == 4 {
		t.Error("Y has room and should be sampled, not clamped")
	}
}

func TestArena_SpawnColor(t *testing.T) {
	a := NewArena(DefaultSize, fixedRand(0.5), func() string { return "#123456" }, quiet)
	tg, _ := a.Spawn(epoch, play)
	if tg.Color != "#123456" {
		t.Errorf("Color = %q, want %q", tg.Color, "#123456")
	}
}

func TestArena_ClickInclusiveBounds(t *testing.T) {
	edges := []geom.Vec2{
		{X: 25, Y: 25}, {X: -25, Y: 25}, {X: 25, Y: -25}, {X: -25, Y: -25},
		{X: 25, Y: 0}, {X: 0, Y: -25},
	}
	for _, p := range edges {
		a := newTestArena(fixedRand(0.5))
		a.Spawn(epoch, play)
		if _, ok := a.Click(p, epoch); !ok {
			t.Errorf("Click(%v) missed, want boundary hit", p)
		}
	}
}

func TestArena_ClickCornersAtRandomPositions(t *testing.T) {
	a := newTestArena(rand.New(rand.NewSource(42)))
	half := DefaultSize / 2
	corners := []geom.Vec2{{X: half, Y: half}, {X: -half, Y: half}, {X: half, Y: -half}, {X: -half, Y: -half}}

	misses := 0
	for i := range 10000 {
		tg, _ := a.Spawn(epoch, play)
		c := corners[i%len(corners)]
		p := geom.Vec2{X: tg.Position.X + c.X, Y: tg.Position.Y + c.Y}
		if _, ok := a.Click(p, epoch); !ok {
			if misses < 5 {
				t.Errorf("corner %v of target at %v missed", p, tg.Position)
			}
			misses++
		}
	}
	if misses > 0 {
		t.Errorf("%d of 10000 corner clicks missed, want 0", misses)
	}
}

func TestArena_ClickJustOutside(t *testing.T) {
	for _, eps := range []float64{1e-9, 0.001, 1} {
		a := newTestArena(fixedRand(0.5))
		a.Spawn(epoch, play)
		if _, ok := a.Click(geom.Vec2{X: 25 + eps}, epoch); ok {
			t.Errorf("Click at edge+%v registered a hit", eps)
		}
		if _, ok := a.Target(); !ok {
			t.Error("a miss must not remove the target")
		}
	}
}

func TestArena_ClickHit(t *testing.T) {
	a := newTestArena(fixedRand(0.5))
	spawned, _ := a.Spawn(epoch, play)

	hit, ok := a.Click(geom.Vec2{X: 3, Y: -4}, epoch.Add(420*time.Millisecond))
	if !ok {
		t.Fatal("click on the target should hit")
	}
	if hit.Reaction != 420*time.Millisecond {
		t.Errorf("Reaction = %v, want 420ms", hit.Reaction)
	}
	if hit.Target.ID != spawned.ID {
		t.Errorf("hit target ID = %d, want %d", hit.Target.ID, spawned.ID)
	}
	if _, ok := a.Target(); ok {
		t.Error("target should be removed after a hit")
	}
	if _, ok := a.Click(geom.Vec2{}, epoch); ok {
		t.Error("second click on the removed target should not hit")
	}
}

func TestArena_ClickWithoutTarget(t *testing.T) {
	a := newTestArena(fixedRand(0.5))
	if _, ok := a.Click(geom.Vec2{}, epoch); ok {
		t.Error("click with no target should be ignored")
	}
}

func TestArena_Clear(t *testing.T) {
	a := newTestArena(fixedRand(0.5))
	if a.Clear() {
		t.Error("Clear() on empty arena should report false")
	}
	a.Spawn(epoch, play)
	if !a.Clear() {
		t.Error("Clear() should report the dropped target")
	}
	if _, ok := a.Target(); ok {
		t.Error("target should be gone after Clear()")
	}
}
