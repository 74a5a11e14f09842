package terminal

import (
	"log"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/galaxy-monkey/core"
	"github.com/lixenwraith/galaxy-monkey/input"
)

const eventBuffer = 100

// Input translates tcell events into raw game events
// Terminals report key presses but not releases, so a stick direction counts
// as held for the hold window after its last press
type Input struct {
	screen *Screen
	keys   *input.KeyMap
	hold   time.Duration
	now    func() time.Time

	events  chan tcell.Event
	pressed [2][4]time.Time
	synth   input.StickSynth
}

// NewInput creates an input source for s, call Start to begin reading
func NewInput(s *Screen, keys *input.KeyMap, hold time.Duration) *Input {
	return &Input{
		screen: s,
		keys:   keys,
		hold:   hold,
		now:    time.Now,
		events: make(chan tcell.Event, eventBuffer),
	}
}

// Start reads terminal events on a background goroutine until the screen is finalized
func (in *Input) Start() {
	core.Go(func() {
		for {
			ev := in.screen.screen.PollEvent()
			if ev == nil {
				close(in.events)
				return
			}
			in.events <- ev
		}
	})
}

// Poll drains pending terminal events without blocking
func (in *Input) Poll(dst []input.Event) []input.Event {
	for {
		select {
		case ev, ok := <-in.events:
			if !ok {
				// Screen gone, nothing more will arrive
				return append(dst, input.QuitEvent())
			}
			dst = in.handle(dst, ev)
		default:
			return in.sync(dst)
		}
	}
}

func (in *Input) handle(dst []input.Event, ev tcell.Event) []input.Event {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		key := keyName(ev)
		if key == "" {
			return dst
		}
		b := in.keys.Lookup(key)
		if b == input.BindQuit {
			return append(dst, input.QuitEvent())
		}
		if stick, dir, ok := b.Stick(); ok {
			in.press(stick, dir)
		}
		return append(dst, input.KeyEvent(key))

	case *tcell.EventMouse:
		btn := ev.Buttons()
		if btn&tcell.WheelUp != 0 {
			dst = append(dst, input.WheelEvent(1))
		}
		if btn&tcell.WheelDown != 0 {
			dst = append(dst, input.WheelEvent(-1))
		}

	case *tcell.EventResize:
		in.screen.Resize()
		cols, rows := in.screen.Size()
		log.Printf("terminal resized to %dx%d", cols, rows)
	}
	return dst
}

// press marks a direction held and releases its opposite, a terminal cannot hold both
func (in *Input) press(stick input.StickID, dir input.Direction) {
	in.pressed[stick][dir] = in.now()
	in.pressed[stick][opposite(dir)] = time.Time{}
}

// sync expires stale presses and emits axis changes
func (in *Input) sync(dst []input.Event) []input.Event {
	now := in.now()
	var held input.Held
	for stick := range in.pressed {
		for dir, at := range in.pressed[stick] {
			if !at.IsZero() && now.Sub(at) < in.hold {
				held.Set(input.StickID(stick), input.Direction(dir))
			}
		}
	}
	return in.synth.Sync(dst, held)
}

func opposite(d input.Direction) input.Direction {
	switch d {
	case input.DirUp:
		return input.DirDown
	case input.DirDown:
		return input.DirUp
	case input.DirLeft:
		return input.DirRight
	default:
		return input.DirLeft
	}
}

// keyName maps a tcell key to the names used in key bindings
// Keys with no binding name (F-keys, Home, PgUp) fall back to tcell's lowercased name
func keyName(ev *tcell.EventKey) input.Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyTab:
		return "tab"
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return "backspace"
	case tcell.KeyCtrlC:
		return "ctrl+c"
	case tcell.KeyRune:
		r := ev.Rune()
		if r == ' ' {
			return "space"
		}
		return input.Key(strings.ToLower(string(r)))
	}
	return input.Key(strings.ToLower(ev.Name()))
}
