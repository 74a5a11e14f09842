package window

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/galaxy-monkey/engine"
	"github.com/lixenwraith/galaxy-monkey/loop"
	"github.com/lixenwraith/galaxy-monkey/render"
)

// frameRunner is the part of loop.Driver the window needs
type frameRunner interface {
	Frame() ([]render.Command, error)
	Timing(elapsed uint32)
	Clock() engine.Clock
}

// Game adapts a driver to ebiten.Game, one driver frame per tick
type Game struct {
	driver   frameRunner
	renderer *Renderer
	cmds     []render.Command
}

func NewGame(d *loop.Driver, r *Renderer) *Game {
	return &Game{driver: d, renderer: r}
}

func (g *Game) Update() error {
	start := g.driver.Clock().Ticks()

	cmds, err := g.driver.Frame()
	if errors.Is(err, loop.ErrQuit) {
		return ebiten.Termination
	}
	if err != nil {
		return err
	}
	// Frame reuses its buffer, Draw may run after the next Update
	g.cmds = append(g.cmds[:0], cmds...)

	g.driver.Timing(engine.Elapsed(g.driver.Clock().Ticks(), start))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.SetTarget(screen)
	// Command kinds come from the render pass, Draw cannot fail on them
	_ = g.renderer.Draw(g.cmds)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return engine.ScreenWidth, engine.ScreenHeight
}
