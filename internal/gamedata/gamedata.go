// Package gamedata wires the activity gate, spawn scheduler, target arena and
// frequency controller into one per-frame update. A Game is owned by a single
// goroutine; hosts feed it one Frame per rendered frame.
package gamedata

import (
	"reactionarena/internal/activity"
	"reactionarena/internal/events"
	"reactionarena/internal/frequency"
	"reactionarena/internal/geom"
	"reactionarena/internal/spawner"
	"reactionarena/internal/targets"
	"time"

	"github.com/charmbracelet/log"
)

type Config struct {
	SpawnInterval     time.Duration
	ShrinkFactor      float64
	TargetSize        float64
	ClearOnDeactivate bool
	Colors            targets.ColorFunc
}

func DefaultConfig() Config {
	return Config{
		SpawnInterval:     spawner.DefaultInterval,
		ShrinkFactor:      frequency.DefaultFactor,
		TargetSize:        targets.DefaultSize,
		ClearOnDeactivate: true,
	}
}

// Click is a primary-button press in screen pixels.
type Click struct {
	Screen geom.Vec2
	Origin geom.Origin
}

// Frame is everything a host supplies for one update. Viewport and Camera
// are nil when the host cannot provide them this frame.
type Frame struct {
	Now        time.Time
	Delta      time.Duration
	Activate   bool
	Deactivate bool
	Click      *Click
	Viewport   *geom.Viewport
	Camera     *geom.Camera
}

// Result lists what happened during a Step, in order.
type Result struct {
	Events []events.Event
	// SpawnDeferred is set when a spawn was due but the frame had no
	// usable viewport.
	SpawnDeferred bool
}

// Hit returns the frame's hit event, if any.
func (r Result) Hit() (events.Event, bool) {
	for _, ev := range r.Events {
		if ev.Kind == events.KindHit {
			return ev, true
		}
	}
	return events.Event{}, false
}

func (r Result) Count(kind events.Kind) int {
	n := 0
	for _, ev := range r.Events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

type Game struct {
	Config    Config
	gate      activity.Gate
	scheduler *spawner.Scheduler
	arena     *targets.Arena
	frequency *frequency.Controller
	bus       *events.Bus
	logger    *log.Logger

	spawnPending bool
}

// NewGame builds a game in the Inactive state. bus and logger may be nil.
func NewGame(cfg Config, rng targets.RandSource, bus *events.Bus, logger *log.Logger) *Game {
	def := DefaultConfig()
	if cfg.SpawnInterval <= 0 {
		cfg.SpawnInterval = def.SpawnInterval
	}
	if cfg.TargetSize <= 0 {
		cfg.TargetSize = def.TargetSize
	}
	if logger == nil {
		logger = log.Default()
	}
	freq := frequency.NewController(cfg.ShrinkFactor, logger)
	cfg.ShrinkFactor = freq.Factor()

	return &Game{
		Config:    cfg,
		scheduler: spawner.NewScheduler(cfg.SpawnInterval),
		arena:     targets.NewArena(cfg.TargetSize, rng, cfg.Colors, logger),
		frequency: freq,
		bus:       bus,
		logger:    logger.WithPrefix("game"),
	}
}

func (g *Game) State() activity.State { return g.gate.State() }

func (g *Game) Active() bool { return g.gate.Active() }

// Target exposes the live target to render sinks.
func (g *Game) Target() (targets.Target, bool) { return g.arena.Target() }

func (g *Game) Interval() time.Duration { return g.scheduler.Timer().Duration() }

func (g *Game) Elapsed() time.Duration { return g.scheduler.Timer().Elapsed() }

// Step runs one frame: gate, scheduler, spawn, then click. A spawn due this
// frame is placed before the click is tested.
func (g *Game) Step(f Frame) Result {
	var res Result

	if g.gate.Apply(f.Activate, f.Deactivate) {
		g.emit(&res, events.Event{Kind: events.KindActivity, At: f.Now, State: g.gate.State()})
		if !g.gate.Active() {
			g.spawnPending = false
			if g.Config.ClearOnDeactivate && g.arena.Clear() {
				g.logger.Debug("cleared target on deactivate")
			}
		}
	}

	active := g.gate.Active()
	if g.scheduler.Tick(f.Delta, active) {
		g.spawnPending = true
	}
	if !active {
		return res
	}

	if g.spawnPending {
		g.spawn(f, &res)
	}
	if f.Click != nil {
		g.click(f, &res)
	}
	return res
}

func (g *Game) spawn(f Frame, res *Result) {
	if f.Viewport == nil || f.Viewport.Empty() {
		res.SpawnDeferred = true
		g.logger.Debug("spawn deferred, no viewport")
		return
	}
	cam := f.Camera
	if cam == nil {
		cam = geom.NewCamera()
	}
	g.spawnPending = false

	spawned, superseded := g.arena.Spawn(f.Now, cam.Visible(*f.Viewport))
	if superseded != nil {
		g.emit(res, events.Event{Kind: events.KindSuperseded, At: f.Now, Target: *superseded})
	}
	g.emit(res, events.Event{Kind: events.KindSpawn, At: f.Now, Target: spawned})
}

func (g *Game) click(f Frame, res *Result) {
	if _, ok := g.arena.Target(); !ok {
		return
	}
	if f.Camera == nil || f.Viewport == nil {
		g.logger.Debug("click skipped, no camera or viewport")
		return
	}
	world, err := f.Camera.ScreenToWorld(f.Click.Screen, f.Click.Origin, *f.Viewport)
	if err != nil {
		g.logger.Debug("click skipped", "err", err)
		return
	}
	hit, ok := g.arena.Click(world, f.Now)
	if !ok {
		return
	}
	adj := g.frequency.OnHit(hit, g.scheduler)
	g.emit(res, events.Event{
		Kind:     events.KindHit,
		At:       f.Now,
		Target:   hit.Target,
		Reaction: adj.Reaction,
		Interval: adj.Next,
	})
}

func (g *Game) emit(res *Result, ev events.Event) {
	res.Events = append(res.Events, ev)
	if g.bus != nil && !g.bus.Publish(ev) {
		g.logger.Warn("event bus full, dropping event", "kind", ev.Kind)
	}
}
