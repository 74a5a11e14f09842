// Package window runs the game in an ebiten window with gamepad and keyboard input
package window

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v3"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/galaxy-monkey/render"
)

var fontFace = text.NewGoXFace(bitmapfont.Face)

// fontScale enlarges the bitmap face per logical font
func fontScale(f render.Font) float64 {
	switch f {
	case render.FontTitle:
		return 5
	case render.FontBody:
		return 3
	default:
		return 1
	}
}

// Renderer replays command lists onto the ebiten screen image
type Renderer struct {
	target *ebiten.Image
}

// SetTarget selects the image the next Draw paints
func (r *Renderer) SetTarget(img *ebiten.Image) {
	r.target = img
}

func (r *Renderer) Draw(cmds []render.Command) error {
	if r.target == nil {
		return fmt.Errorf("no render target")
	}
	for i := range cmds {
		c := &cmds[i]
		switch c.Kind {
		case render.CmdClear:
			r.target.Fill(c.Color)
		case render.CmdFillRect:
			vector.DrawFilledRect(r.target, float32(c.Rect.X), float32(c.Rect.Y), float32(c.Rect.W), float32(c.Rect.H), c.Color, false)
		case render.CmdPoint:
			r.target.Set(int(c.Rect.X), int(c.Rect.Y), c.Color)
		case render.CmdText:
			s := fontScale(c.Text.Font)
			op := &text.DrawOptions{}
			op.GeoM.Scale(s, s)
			op.GeoM.Translate(float64(c.Rect.X), float64(c.Rect.Y))
			op.ColorScale.ScaleWithColor(c.Text.Color)
			text.Draw(r.target, c.Text.Text, fontFace, op)
		default:
			return fmt.Errorf("unknown draw command %d", c.Kind)
		}
	}
	return nil
}

// Present is a no-op, ebiten flips the screen after Draw returns
func (r *Renderer) Present() error { return nil }

// Rasterize measures text in the scaled bitmap face
func (r *Renderer) Rasterize(s string, font render.Font, c color.RGBA) (render.TextHandle, error) {
	w, h := text.Measure(s, fontFace, 0)
	scale := fontScale(font)
	return render.TextHandle{
		Text:   s,
		Font:   font,
		Color:  c,
		Width:  int32(w * scale),
		Height: int32(h * scale),
	}, nil
}
