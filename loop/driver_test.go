package loop

import (
	"errors"
	"image/color"
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/galaxy-monkey/engine"
	"github.com/lixenwraith/galaxy-monkey/input"
	"github.com/lixenwraith/galaxy-monkey/render"
	"github.com/lixenwraith/galaxy-monkey/status"
)

// scriptSource returns one batch of events per poll, then nothing
type scriptSource struct {
	batches [][]input.Event
	opened  []int
	openErr error
}

func (s *scriptSource) Poll(dst []input.Event) []input.Event {
	if len(s.batches) == 0 {
		return dst
	}
	dst = append(dst, s.batches[0]...)
	s.batches = s.batches[1:]
	return dst
}

func (s *scriptSource) OpenDevice(index int) error {
	s.opened = append(s.opened, index)
	return s.openErr
}

// recordRenderer counts frames and optionally burns clock time while drawing
type recordRenderer struct {
	clock    *engine.MockClock
	work     time.Duration
	draws    int
	presents int
	last     []render.Command
	drawErr  error
}

func (r *recordRenderer) Draw(cmds []render.Command) error {
	r.draws++
	r.last = append(r.last[:0], cmds...)
	if r.clock != nil {
		r.clock.Advance(r.work)
	}
	return r.drawErr
}

func (r *recordRenderer) Present() error {
	r.presents++
	return nil
}

type sizeRasterizer struct{}

func (sizeRasterizer) Rasterize(text string, font render.Font, c color.RGBA) (render.TextHandle, error) {
	return render.TextHandle{Text: text, Font: font, Color: c, Width: int32(8 * len(text)), Height: 16}, nil
}

func newDriver(src EventSource, clock *engine.MockClock, r render.Renderer) *Driver {
	return New(Config{
		Tuning:   engine.DefaultTuning(),
		Source:   src,
		Renderer: r,
		Texts:    render.NewTextCache(sizeRasterizer{}),
		Clock:    clock,
	})
}

func TestFrameStartScenario(t *testing.T) {
	clock := engine.NewMockClock(0)
	src := &scriptSource{batches: [][]input.Event{
		nil,
		{input.KeyEvent("space")},
	}}
	d := newDriver(src, clock, nil)

	var seen []engine.EventType
	d.AddHandler(HandlerFunc(func(ev engine.Event) { seen = append(seen, ev.Type) }))

	if _, err := d.Frame(); err != nil {
		t.Fatal(err)
	}
	if d.State().State != engine.StateStartMenu {
		t.Fatal("should stay in start menu without input")
	}

	clock.Set(1000)
	if _, err := d.Frame(); err != nil {
		t.Fatal(err)
	}
	gs := d.State()
	if gs.State != engine.StatePlaying || gs.RoundNumber != 1 {
		t.Fatalf("state=%v round=%d, want playing round 1", gs.State, gs.RoundNumber)
	}
	if len(seen) != 2 || seen[0] != engine.EventGameStarted || seen[1] != engine.EventRoundStarted {
		t.Errorf("handler saw %v", seen)
	}

	clock.Set(3499)
	d.Frame()
	if !gs.Enemies.Empty() {
		t.Fatal("enemy spawned before dwell elapsed")
	}

	clock.Set(3500)
	cmds, err := d.Frame()
	if err != nil {
		t.Fatal(err)
	}
	if gs.Enemies.Len() != 1 {
		t.Fatalf("enemies = %d, want 1", gs.Enemies.Len())
	}

	var enemyRects int
	for _, c := range cmds {
		if c.Kind == render.CmdFillRect && c.Color == render.RgbEnemy {
			enemyRects++
			if c.Rect.Y != 30 {
				t.Errorf("enemy rect = %+v", c.Rect)
			}
		}
	}
	if enemyRects != 1 {
		t.Errorf("enemy rects = %d, want 1", enemyRects)
	}
}

func TestFrameAxisThenFire(t *testing.T) {
	clock := engine.NewMockClock(0)
	src := &scriptSource{batches: [][]input.Event{
		{input.ButtonEvent(input.ButtonStart)},
		{input.AxisEvent(input.AxisRightX, -math.MaxInt16)},
	}}
	d := newDriver(src, clock, nil)

	d.Frame()
	d.Frame()

	if d.State().Projectiles.Len() != 1 {
		t.Errorf("projectiles = %d, want 1", d.State().Projectiles.Len())
	}
}

func TestFrameQuitStopsImmediately(t *testing.T) {
	clock := engine.NewMockClock(0)
	src := &scriptSource{batches: [][]input.Event{
		{input.QuitEvent(), input.KeyEvent("x")},
	}}
	d := newDriver(src, clock, nil)

	if _, err := d.Frame(); !errors.Is(err, ErrQuit) {
		t.Fatalf("err = %v, want ErrQuit", err)
	}
	if d.State().State != engine.StateStartMenu {
		t.Error("events after quit must not be processed")
	}
}

func TestFrameBackButtonQuits(t *testing.T) {
	src := &scriptSource{batches: [][]input.Event{{input.ButtonEvent(input.ButtonBack)}}}
	d := newDriver(src, engine.NewMockClock(0), nil)

	if _, err := d.Frame(); !errors.Is(err, ErrQuit) {
		t.Errorf("err = %v, want ErrQuit", err)
	}
}

func TestDeviceAddedOpensController(t *testing.T) {
	src := &scriptSource{
		batches: [][]input.Event{{input.DeviceAddedEvent(2)}, {input.DeviceAddedEvent(3)}},
		openErr: nil,
	}
	d := newDriver(src, engine.NewMockClock(0), nil)
	d.Frame()

	src.openErr = errors.New("busy")
	if _, err := d.Frame(); err != nil {
		t.Fatalf("open failure must not be fatal: %v", err)
	}
	if len(src.opened) != 2 || src.opened[0] != 2 || src.opened[1] != 3 {
		t.Errorf("opened = %v", src.opened)
	}
}

func TestRunPacesAndQuits(t *testing.T) {
	clock := engine.NewMockClock(0)
	src := &scriptSource{batches: [][]input.Event{nil, nil, {input.QuitEvent()}}}
	r := &recordRenderer{clock: clock, work: 3 * time.Millisecond}

	var sleeps []time.Duration
	d := New(Config{
		Tuning:   engine.DefaultTuning(),
		Source:   src,
		Renderer: r,
		Texts:    render.NewTextCache(sizeRasterizer{}),
		Clock:    clock,
		Metrics:  status.NewRegistry(),
		Sleep: func(dur time.Duration) {
			sleeps = append(sleeps, dur)
			clock.Advance(dur)
		},
	})

	if err := d.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if r.draws != 2 || r.presents != 2 {
		t.Errorf("draws/presents = %d/%d, want 2/2", r.draws, r.presents)
	}
	if len(sleeps) != 2 || sleeps[0] != 5*time.Millisecond {
		t.Errorf("sleeps = %v, want two of 5ms", sleeps)
	}
	if clock.Ticks() != 16 {
		t.Errorf("clock = %d, want 16 after two 8ms frames", clock.Ticks())
	}
}

func TestRunSkipsSleepOnOverrun(t *testing.T) {
	clock := engine.NewMockClock(0)
	src := &scriptSource{batches: [][]input.Event{nil, {input.QuitEvent()}}}
	r := &recordRenderer{clock: clock, work: 12 * time.Millisecond}
	reg := status.NewRegistry()

	slept := false
	d := New(Config{
		Tuning:   engine.DefaultTuning(),
		Source:   src,
		Renderer: r,
		Texts:    render.NewTextCache(sizeRasterizer{}),
		Clock:    clock,
		Metrics:  reg,
		Sleep:    func(time.Duration) { slept = true },
	})

	if err := d.Run(); err != nil {
		t.Fatal(err)
	}
	if slept {
		t.Error("overrun frame should not sleep")
	}
	if got := reg.Ints.Get(status.KeyOverruns).Load(); got != 1 {
		t.Errorf("overruns = %d, want 1", got)
	}
}

func TestRunReturnsDrawError(t *testing.T) {
	src := &scriptSource{}
	r := &recordRenderer{drawErr: errors.New("gone")}
	d := newDriver(src, engine.NewMockClock(0), r)

	if err := d.Run(); err == nil {
		t.Error("expected draw error")
	}
}

func TestOverlayAppendsMetrics(t *testing.T) {
	reg := status.NewRegistry()
	d := New(Config{
		Tuning:  engine.DefaultTuning(),
		Source:  &scriptSource{},
		Texts:   render.NewTextCache(sizeRasterizer{}),
		Clock:   engine.NewMockClock(0),
		Metrics: reg,
		Overlay: true,
	})

	d.Frame()
	cmds, err := d.Frame()
	if err != nil {
		t.Fatal(err)
	}

	var overlay int
	for _, c := range cmds {
		if c.Kind == render.CmdText && c.Text.Font == render.FontSmall {
			overlay++
		}
	}
	if overlay == 0 {
		t.Error("expected overlay text commands")
	}
	if got := reg.Ints.Get(status.KeyFrames).Load(); got != 2 {
		t.Errorf("frames = %d, want 2", got)
	}
}
