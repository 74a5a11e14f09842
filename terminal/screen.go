// Package terminal renders the game into a tcell screen and reads its keyboard and mouse
package terminal

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/galaxy-monkey/engine"
	"github.com/lixenwraith/galaxy-monkey/render"
)

const (
	blockRune = '█'
	pointRune = '•'
)

// Screen maps the logical 1280x720 space onto the terminal cell grid
type Screen struct {
	screen     tcell.Screen
	cols, rows int
	cellW      float64 // Logical pixels per column
	cellH      float64 // Logical pixels per row
	bg         tcell.Color
	texts      *render.TextCache
}

// Open creates and initializes the real terminal screen
func Open() (*Screen, error) {
	scr, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := scr.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	scr.EnableMouse()
	scr.HideCursor()
	return New(scr), nil
}

// New wraps an initialized tcell screen
func New(scr tcell.Screen) *Screen {
	s := &Screen{screen: scr, bg: tcell.ColorBlack}
	s.texts = render.NewTextCache(s)
	s.Resize()
	return s
}

// Fini restores the terminal
func (s *Screen) Fini() {
	s.screen.Fini()
}

// Texts returns the text cache backed by this screen, purged on resize
func (s *Screen) Texts() *render.TextCache {
	return s.texts
}

// Resize recomputes the cell scale from the current terminal size
func (s *Screen) Resize() {
	cols, rows := s.screen.Size()
	if cols == s.cols && rows == s.rows {
		return
	}
	s.cols, s.rows = max(cols, 1), max(rows, 1)
	s.cellW = float64(engine.ScreenWidth) / float64(s.cols)
	s.cellH = float64(engine.ScreenHeight) / float64(s.rows)
	s.texts.Purge()
}

// Size returns the grid size in cells
func (s *Screen) Size() (cols, rows int) {
	return s.cols, s.rows
}

// Cell converts a logical pixel position to a cell
func (s *Screen) Cell(x, y int32) (col, row int) {
	return int(math.Floor(float64(x) / s.cellW)), int(math.Floor(float64(y) / s.cellH))
}

// Draw replays a command list onto the back buffer
func (s *Screen) Draw(cmds []render.Command) error {
	for i := range cmds {
		c := &cmds[i]
		switch c.Kind {
		case render.CmdClear:
			s.bg = rgb(c.Color)
			s.screen.Fill(' ', tcell.StyleDefault.Background(s.bg))
		case render.CmdFillRect:
			s.fillRect(c.Rect, rgb(c.Color))
		case render.CmdPoint:
			col, row := s.Cell(c.Rect.X, c.Rect.Y)
			s.set(col, row, pointRune, rgb(c.Color))
		case render.CmdText:
			s.drawText(c)
		default:
			return fmt.Errorf("unknown draw command %d", c.Kind)
		}
	}
	return nil
}

// Present flushes the back buffer to the terminal
func (s *Screen) Present() error {
	s.screen.Show()
	return nil
}

// Rasterize sizes text in logical pixels from its cell width
func (s *Screen) Rasterize(text string, font render.Font, c color.RGBA) (render.TextHandle, error) {
	width := runewidth.StringWidth(text)
	return render.TextHandle{
		Text:   text,
		Font:   font,
		Color:  c,
		Width:  int32(math.Ceil(float64(width) * s.cellW)),
		Height: int32(math.Ceil(s.cellH)),
	}, nil
}

// fillRect covers every cell the rectangle touches, at least one
func (s *Screen) fillRect(r render.Rect, fg tcell.Color) {
	col0, row0 := s.Cell(r.X, r.Y)
	col1 := int(math.Ceil(float64(r.X+r.W) / s.cellW))
	row1 := int(math.Ceil(float64(r.Y+r.H) / s.cellH))
	col1, row1 = max(col1, col0+1), max(row1, row0+1)

	col0, row0 = max(col0, 0), max(row0, 0)
	col1, row1 = min(col1, s.cols), min(row1, s.rows)

	for row := row0; row < row1; row++ {
		for col := col0; col < col1; col++ {
			s.set(col, row, blockRune, fg)
		}
	}
}

func (s *Screen) drawText(c *render.Command) {
	col, row := s.Cell(c.Rect.X, c.Rect.Y)
	fg := rgb(c.Text.Color)
	for _, r := range c.Text.Text {
		s.set(col, row, r, fg)
		col += runewidth.RuneWidth(r)
	}
}

func (s *Screen) set(col, row int, r rune, fg tcell.Color) {
	if col < 0 || row < 0 || col >= s.cols || row >= s.rows {
		return
	}
	s.screen.SetContent(col, row, r, nil, tcell.StyleDefault.Foreground(fg).Background(s.bg))
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
