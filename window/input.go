package window

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/galaxy-monkey/input"
)

var ErrNoStandardLayout = errors.New("gamepad has no standard layout")

// padAxes lists standard stick axes in input.Axis order
var padAxes = [4]ebiten.StandardGamepadAxis{
	input.AxisLeftX:  ebiten.StandardGamepadAxisLeftStickHorizontal,
	input.AxisLeftY:  ebiten.StandardGamepadAxisLeftStickVertical,
	input.AxisRightX: ebiten.StandardGamepadAxisRightStickHorizontal,
	input.AxisRightY: ebiten.StandardGamepadAxisRightStickVertical,
}

// padButtons maps standard buttons to controller buttons the mapper understands
var padButtons = []struct {
	pad ebiten.StandardGamepadButton
	btn input.Button
}{
	{ebiten.StandardGamepadButtonCenterRight, input.ButtonStart},
	{ebiten.StandardGamepadButtonCenterLeft, input.ButtonBack},
	{ebiten.StandardGamepadButtonRightBottom, input.ButtonA},
	{ebiten.StandardGamepadButtonRightRight, input.ButtonB},
	{ebiten.StandardGamepadButtonRightLeft, input.ButtonX},
	{ebiten.StandardGamepadButtonRightTop, input.ButtonY},
	{ebiten.StandardGamepadButtonFrontTopLeft, input.ButtonLeftShoulder},
	{ebiten.StandardGamepadButtonFrontTopRight, input.ButtonRightShoulder},
	{ebiten.StandardGamepadButtonCenterCenter, input.ButtonGuide},
}

// Input polls ebiten's per-tick input state into raw game events
// Must be polled from ebiten's Update
type Input struct {
	keys *input.KeyMap

	pad     ebiten.GamepadID
	hasPad  bool
	padAxis [4]int16
	synth   input.StickSynth
	padBuf  []ebiten.GamepadID
	keyBuf  []ebiten.Key
	heldBuf []ebiten.Key
}

func NewInput(keys *input.KeyMap) *Input {
	return &Input{keys: keys}
}

// OpenDevice binds the gamepad reported by a device-added event
func (in *Input) OpenDevice(index int) error {
	id := ebiten.GamepadID(index)
	if !ebiten.IsStandardGamepadLayoutAvailable(id) {
		return fmt.Errorf("%w: %s", ErrNoStandardLayout, ebiten.GamepadName(id))
	}
	in.pad, in.hasPad = id, true
	in.padAxis = [4]int16{}
	return nil
}

func (in *Input) Poll(dst []input.Event) []input.Event {
	in.padBuf = inpututil.AppendJustConnectedGamepadIDs(in.padBuf[:0])
	for _, id := range in.padBuf {
		dst = append(dst, input.DeviceAddedEvent(int(id)))
	}

	dst = in.pollPad(dst)
	dst = in.pollKeys(dst)

	if _, dy := ebiten.Wheel(); dy != 0 {
		dst = append(dst, input.WheelEvent(int32(math.Copysign(1, dy))))
	}
	return dst
}

func (in *Input) pollPad(dst []input.Event) []input.Event {
	if !in.hasPad {
		return dst
	}
	if inpututil.IsGamepadJustDisconnected(in.pad) {
		in.hasPad = false
		// Center the sticks so nothing keeps moving or firing
		for axis, v := range in.padAxis {
			if v != 0 {
				dst = append(dst, input.AxisEvent(input.Axis(axis), 0))
			}
		}
		in.padAxis = [4]int16{}
		return dst
	}

	for axis, std := range padAxes {
		v := axisRaw(ebiten.StandardGamepadAxisValue(in.pad, std))
		if v != in.padAxis[axis] {
			in.padAxis[axis] = v
			dst = append(dst, input.AxisEvent(input.Axis(axis), v))
		}
	}
	for _, b := range padButtons {
		if inpututil.IsStandardGamepadButtonJustPressed(in.pad, b.pad) {
			dst = append(dst, input.ButtonEvent(b.btn))
		}
	}
	return dst
}

func (in *Input) pollKeys(dst []input.Event) []input.Event {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)

	in.keyBuf = inpututil.AppendJustPressedKeys(in.keyBuf[:0])
	for _, k := range in.keyBuf {
		name, ok := keyName(k, ctrl)
		if !ok {
			continue
		}
		if in.keys.Lookup(name) == input.BindQuit {
			return append(dst, input.QuitEvent())
		}
		dst = append(dst, input.KeyEvent(name))
	}

	var held input.Held
	in.heldBuf = inpututil.AppendPressedKeys(in.heldBuf[:0])
	for _, k := range in.heldBuf {
		name, ok := keyName(k, false)
		if !ok {
			continue
		}
		if stick, dir, ok := in.keys.Lookup(name).Stick(); ok {
			held.Set(stick, dir)
		}
	}
	return in.synth.Sync(dst, held)
}

// keyName maps an ebiten key to a binding key name
func keyName(k ebiten.Key, ctrl bool) (input.Key, bool) {
	if ctrl && k == ebiten.KeyC {
		return "ctrl+c", true
	}
	raw := strings.TrimPrefix(strings.ToLower(k.String()), "digit")
	if name, err := input.ParseKeyName(raw); err == nil {
		return name, true
	}
	// Unbindable keys still confirm
	return input.Key(raw), raw != ""
}

// axisRaw converts a standard axis reading to the controller's int16 range
func axisRaw(v float64) int16 {
	v = max(-1, min(1, v))
	return int16(math.Round(v * math.MaxInt16))
}
