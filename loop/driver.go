// Package loop drives the game: poll input, step the simulation, render, present, pace.
package loop

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/galaxy-monkey/engine"
	"github.com/lixenwraith/galaxy-monkey/input"
	"github.com/lixenwraith/galaxy-monkey/render"
	"github.com/lixenwraith/galaxy-monkey/status"
)

// ErrQuit is returned by Frame when a quit or back request was polled
var ErrQuit = errors.New("quit requested")

// EventSource supplies the raw input events pending since the last poll
// Poll must not block
type EventSource interface {
	Poll(dst []input.Event) []input.Event
}

// DeviceOpener is implemented by sources that bind controllers on device-added
type DeviceOpener interface {
	OpenDevice(index int) error
}

// Handler observes gameplay events after each frame's simulation
type Handler interface {
	HandleEvent(ev engine.Event)
}

// Config wires a Driver to its collaborators
type Config struct {
	Tuning   engine.Tuning
	Source   EventSource
	Renderer render.Renderer // Only Run needs it
	Texts    render.TextProvider
	Clock    engine.Clock
	Metrics  *status.Registry // nil disables metrics and overlay
	Overlay  bool

	// Sleep blocks for the pacing remainder, time.Sleep when nil
	Sleep func(time.Duration)
}

// Driver owns the game state and runs frames over it
type Driver struct {
	state    *engine.GameState
	tuning   engine.Tuning
	mapper   input.Mapper
	source   EventSource
	renderer render.Renderer
	texts    render.TextProvider
	pass     *render.Pass
	clock    engine.Clock
	sleep    func(time.Duration)
	handlers []Handler

	overlay bool
	metrics *status.Registry
	stats   frameStats

	// Per-frame scratch, reused
	rawBuf []input.Event
	evBuf  []engine.Event
	cmdBuf []render.Command
}

// New creates a driver with a fresh game state anchored at the clock's current tick
func New(cfg Config) *Driver {
	sleep := cfg.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	d := &Driver{
		state:    engine.NewGameState(cfg.Clock.Ticks()),
		tuning:   cfg.Tuning,
		mapper:   input.NewMapper(cfg.Tuning.Deadzone),
		source:   cfg.Source,
		renderer: cfg.Renderer,
		texts:    cfg.Texts,
		pass:     render.NewPass(cfg.Texts, cfg.Tuning.PromptBlink),
		clock:    cfg.Clock,
		sleep:    sleep,
		overlay:  cfg.Overlay && cfg.Metrics != nil,
		metrics:  cfg.Metrics,
		rawBuf:   make([]input.Event, 0, 32),
		evBuf:    make([]engine.Event, 0, 16),
		cmdBuf:   make([]render.Command, 0, 512),
	}
	if cfg.Metrics != nil {
		d.stats = newFrameStats(cfg.Metrics)
	}
	return d
}

// State exposes the owned state for inspection
func (d *Driver) State() *engine.GameState {
	return d.state
}

// AddHandler registers h for gameplay events, handlers run in registration order
func (d *Driver) AddHandler(h Handler) {
	d.handlers = append(d.handlers, h)
}

// Frame runs input, simulation and the render pass for one frame
// The returned commands are valid until the next call
// Returns ErrQuit as soon as a quit request is polled, skipping the rest of the frame
func (d *Driver) Frame() ([]render.Command, error) {
	now := d.clock.Ticks()
	d.evBuf = d.evBuf[:0]

	d.rawBuf = d.source.Poll(d.rawBuf[:0])
	for _, ev := range d.rawBuf {
		switch d.mapper.Apply(&d.state.Sticks, ev) {
		case input.ActionQuit:
			return nil, ErrQuit
		case input.ActionConfirm:
			d.evBuf = d.state.Confirm(now, d.evBuf)
		case input.ActionDeviceAdded:
			d.openDevice(ev.Device)
		}
		if ev.Type == input.EventMouseWheel {
			log.Printf("mouse wheel %d", ev.Wheel)
		}
	}

	d.evBuf = engine.Step(d.state, d.tuning, now, d.evBuf)
	for _, ev := range d.evBuf {
		for _, h := range d.handlers {
			h.HandleEvent(ev)
		}
	}

	cmds, err := d.pass.Frame(d.cmdBuf[:0], d.state, now)
	if err != nil {
		return nil, fmt.Errorf("render pass: %w", err)
	}
	if d.overlay {
		if cmds, err = render.Overlay(cmds, d.texts, d.metrics.Lines()); err != nil {
			return nil, fmt.Errorf("overlay: %w", err)
		}
	}
	d.cmdBuf = cmds

	if d.metrics != nil {
		d.stats.observe(d.state)
	}
	return cmds, nil
}

// Run loops frames until quit, drawing and presenting each one and sleeping out
// the rest of the frame budget
// A quit request returns nil; render failures are returned wrapped
func (d *Driver) Run() error {
	budget := engine.Millis(d.tuning.FrameBudget)

	for {
		start := d.clock.Ticks()

		cmds, err := d.Frame()
		if errors.Is(err, ErrQuit) {
			return nil
		}
		if err != nil {
			return err
		}

		if err := d.renderer.Draw(cmds); err != nil {
			return fmt.Errorf("draw: %w", err)
		}
		if err := d.renderer.Present(); err != nil {
			return fmt.Errorf("present: %w", err)
		}

		elapsed := engine.Elapsed(d.clock.Ticks(), start)
		d.Timing(elapsed)
		if elapsed < budget {
			d.sleep(time.Duration(budget-elapsed) * time.Millisecond)
		}
	}
}

// Timing records a frame's measured work time in ms against the frame budget
// Backends that pace frames themselves call it after each frame
func (d *Driver) Timing(elapsed uint32) {
	if d.metrics != nil {
		d.stats.timing(elapsed, engine.Millis(d.tuning.FrameBudget))
	}
}

// Clock returns the tick source frames are stamped with
func (d *Driver) Clock() engine.Clock {
	return d.clock
}

func (d *Driver) openDevice(index int) {
	opener, ok := d.source.(DeviceOpener)
	if !ok {
		return
	}
	if err := opener.OpenDevice(index); err != nil {
		log.Printf("Unable to open controller %d: %v", index, err)
		return
	}
	log.Printf("Successfully opened controller %d", index)
}
