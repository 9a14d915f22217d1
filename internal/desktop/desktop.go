// Package desktop runs the game in an ebiten window.
package desktop

import (
	"fmt"
	"image/color"
	"reactionarena/internal/gamedata"
	"reactionarena/internal/geom"
	"reactionarena/internal/render"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	backgroundColor = color.RGBA{R: 26, G: 26, B: 26, A: 255}
	targetColor     = color.RGBA{R: 64, G: 64, B: 191, A: 255}
	hudColor        = color.RGBA{R: 220, G: 220, B: 220, A: 255}
)

const (
	hudX          = 10
	hudY          = 20
	hudLineHeight = 16
)

// App adapts a Game to ebiten's Update/Draw/Layout cycle.
type App struct {
	game   *gamedata.Game
	camera *geom.Camera
	width  int
	height int
	status render.Status
	logger *log.Logger

	lastUpdate time.Time
}

func NewApp(game *gamedata.Game, width, height int, logger *log.Logger) *App {
	if logger == nil {
		logger = log.Default()
	}
	return &App{
		game:       game,
		camera:     geom.NewCamera(),
		width:      width,
		height:     height,
		logger:     logger.WithPrefix("desktop"),
		lastUpdate: time.Now(),
		status:     render.Status{Interval: game.Interval()},
	}
}

func (a *App) viewport() geom.Viewport {
	return geom.Viewport{Width: float64(a.width), Height: float64(a.height)}
}

func (a *App) Update() error {
	now := time.Now()
	dt := now.Sub(a.lastUpdate)
	a.lastUpdate = now

	vp := a.viewport()
	f := gamedata.Frame{
		Now:        now,
		Delta:      dt,
		Activate:   inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Deactivate: inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Viewport:   &vp,
		Camera:     a.camera,
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		f.Click = &gamedata.Click{
			Screen: geom.Vec2{X: float64(x), Y: float64(y)},
			Origin: geom.OriginTopLeft,
		}
	}

	res := a.game.Step(f)
	a.status.Update(a.game, res)
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	if t, ok := a.game.Target(); ok {
		if box, ok := render.TargetBox(t, a.camera, a.viewport(), geom.OriginTopLeft); ok {
			vector.DrawFilledRect(screen, float32(box.X), float32(box.Y), float32(box.W), float32(box.H), targetColor, false)
		}
	}

	for i, line := range a.status.Lines() {
		text.Draw(screen, line, basicfont.Face7x13, hudX, hudY+i*hudLineHeight, hudColor)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

// Run opens the window and blocks until it is closed.
func Run(game *gamedata.Game, width, height int, logger *log.Logger) error {
	app := NewApp(game, width, height, logger)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Reaction Arena")
	if err := ebiten.RunGame(app); err != nil {
		return fmt.Errorf("running desktop host: %w", err)
	}
	return nil
}
