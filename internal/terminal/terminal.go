// Package terminal runs the game full-screen in a terminal with mouse
// support. One world unit is one cell column; a row covers two, which
// keeps targets roughly square in common fonts.
package terminal

import (
	"context"
	"fmt"
	"math"
	"reactionarena/internal/gamedata"
	"reactionarena/internal/geom"
	"reactionarena/internal/loop"
	"reactionarena/internal/render"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
)

const targetRune = '█'

var (
	hudStyle    = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	targetStyle = tcell.StyleDefault.Foreground(tcell.NewRGBColor(64, 64, 191))
)

// input collects one frame's worth of terminal events.
type input struct {
	activate   bool
	deactivate bool
	click      *geom.Vec2
	quit       bool
}

type Host struct {
	screen  tcell.Screen
	game    *gamedata.Game
	camera  *geom.Camera
	status  render.Status
	logger  *log.Logger
	buttons tcell.ButtonMask
}

// NewHost takes an initialised screen; the caller owns Fini.
func NewHost(screen tcell.Screen, game *gamedata.Game, logger *log.Logger) *Host {
	if logger == nil {
		logger = log.Default()
	}
	screen.EnableMouse()
	screen.HideCursor()
	return &Host{
		screen: screen,
		game:   game,
		camera: &geom.Camera{Scale: geom.Vec2{X: 1, Y: 2}},
		status: render.Status{Interval: game.Interval()},
		logger: logger.WithPrefix("terminal"),
	}
}

// handle maps one tcell event into in. Clicks fire on the press edge of the
// primary button only; later clicks in the same frame are dropped.
func (h *Host) handle(ev tcell.Event, in *input) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape:
			in.deactivate = true
		case ev.Key() == tcell.KeyCtrlC:
			in.quit = true
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'c' && ev.Modifiers()&tcell.ModCtrl != 0:
			in.quit = true
		case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
			in.activate = true
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			in.quit = true
		}
	case *tcell.EventMouse:
		pressed := ev.Buttons()&tcell.Button1 != 0 && h.buttons&tcell.Button1 == 0
		h.buttons = ev.Buttons()
		if pressed && in.click == nil {
			x, y := ev.Position()
			in.click = &geom.Vec2{X: float64(x) + 0.5, Y: float64(y) + 0.5}
		}
	case *tcell.EventResize:
		h.screen.Sync()
	}
}

func (h *Host) viewport() geom.Viewport {
	w, ht := h.screen.Size()
	return geom.Viewport{Width: float64(w), Height: float64(ht)}
}

// step advances the game by one frame and redraws.
func (h *Host) step(now time.Time, dt time.Duration, in input) {
	vp := h.viewport()
	f := gamedata.Frame{
		Now:        now,
		Delta:      dt,
		Activate:   in.activate,
		Deactivate: in.deactivate,
		Viewport:   &vp,
		Camera:     h.camera,
	}
	if in.click != nil {
		f.Click = &gamedata.Click{Screen: *in.click, Origin: geom.OriginTopLeft}
	}
	res := h.game.Step(f)
	h.status.Update(h.game, res)
	h.draw(vp)
}

func (h *Host) draw(vp geom.Viewport) {
	h.screen.Clear()

	if t, ok := h.game.Target(); ok {
		if box, ok := render.TargetBox(t, h.camera, vp, geom.OriginTopLeft); ok {
			style := targetStyle
			if c := tcell.GetColor(t.Color); t.Color != "" && c != tcell.ColorDefault {
				style = tcell.StyleDefault.Foreground(c)
			}
			x0, y0 := int(math.Floor(box.X)), int(math.Floor(box.Y))
			x1, y1 := int(math.Ceil(box.X+box.W)), int(math.Ceil(box.Y+box.H))
			for y := y0; y < y1; y++ {
				for x := x0; x < x1; x++ {
					h.screen.SetContent(x, y, targetRune, nil, style)
				}
			}
		}
	}

	for row, line := range h.status.Lines() {
		for col, r := range line {
			h.screen.SetContent(col, row, r, nil, hudStyle)
		}
	}
	h.screen.Show()
}

// Run plays until q or Ctrl-C is pressed or ctx is cancelled.
func (h *Host) Run(ctx context.Context, frameDelay time.Duration) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	evCh := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case evCh <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	err := loop.Run(ctx, frameDelay, loop.SystemClock{}, func(now time.Time, dt time.Duration) error {
		var in input
	drain:
		for {
			select {
			case ev := <-evCh:
				h.handle(ev, &in)
			default:
				break drain
			}
		}
		if in.quit {
			return loop.ErrStop
		}
		h.step(now, dt, in)
		return nil
	})
	if err != nil {
		return fmt.Errorf("running terminal host: %w", err)
	}
	h.logger.Debug("terminal host stopped")
	return nil
}
