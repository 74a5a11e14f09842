package render

import "image/color"

// CommandKind selects the primitive a Command draws
type CommandKind uint8

const (
	CmdClear CommandKind = iota
	CmdFillRect
	CmdPoint
	CmdText
)

// Rect is an axis-aligned rectangle in logical screen pixels
type Rect struct {
	X, Y, W, H int32
}

// Command is one draw primitive, only the fields relevant to Kind are set
// CmdClear: Color; CmdFillRect: Rect, Color; CmdPoint: Rect.X/Y, Color;
// CmdText: Text drawn into Rect
type Command struct {
	Kind  CommandKind
	Color color.RGBA
	Rect  Rect
	Text  TextHandle
}

// Renderer consumes a frame's command list in order and presents it
type Renderer interface {
	Draw(cmds []Command) error
	Present() error
}

func clearCmd(c color.RGBA) Command {
	return Command{Kind: CmdClear, Color: c}
}

func fillRect(x, y, w, h int32, c color.RGBA) Command {
	return Command{Kind: CmdFillRect, Color: c, Rect: Rect{X: x, Y: y, W: w, H: h}}
}

func point(x, y int32, c color.RGBA) Command {
	return Command{Kind: CmdPoint, Color: c, Rect: Rect{X: x, Y: y, W: 1, H: 1}}
}

func textAt(h TextHandle, x, y int32) Command {
	return Command{Kind: CmdText, Text: h, Rect: Rect{X: x, Y: y, W: h.Width, H: h.Height}}
}
