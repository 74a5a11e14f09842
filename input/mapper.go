package input

import (
	"math"

	"github.com/lixenwraith/galaxy-monkey/vmath"
)

// DefaultDeadzone is the per-component threshold under which a whole stick reads as neutral
const DefaultDeadzone float32 = 0.20

// Action is the request a single event makes of the loop beyond stick updates
type Action uint8

const (
	ActionNone Action = iota
	ActionConfirm
	ActionQuit
	ActionDeviceAdded
)

// Sticks is the normalized joystick pair, components in [-1, 1]
// Left and Right are the deadzone-filtered values the simulation reads
type Sticks struct {
	Left  vmath.Vector2[float32]
	Right vmath.Vector2[float32]

	// Latest unfiltered readings; every axis event refilters both sticks from these
	rawLeft  vmath.Vector2[float32]
	rawRight vmath.Vector2[float32]
}

// Mapper converts raw events into stick updates and loop actions
type Mapper struct {
	Deadzone float32
}

// NewMapper creates a mapper with the given deadzone
func NewMapper(deadzone float32) Mapper {
	return Mapper{Deadzone: deadzone}
}

// Apply folds ev into st and reports what else the event asks for
// Axis events update one component then deadzone-filter both sticks
func (m Mapper) Apply(st *Sticks, ev Event) Action {
	switch ev.Type {
	case EventQuit:
		return ActionQuit

	case EventDeviceAdded:
		return ActionDeviceAdded

	case EventAxisMotion:
		v := NormalizeAxis(ev.Value)
		switch ev.Axis {
		case AxisLeftX:
			st.rawLeft.X = v
		case AxisLeftY:
			st.rawLeft.Y = v
		case AxisRightX:
			st.rawRight.X = v
		case AxisRightY:
			st.rawRight.Y = v
		}
		st.Left = ApplyDeadzone(st.rawLeft, m.Deadzone)
		st.Right = ApplyDeadzone(st.rawRight, m.Deadzone)

	case EventButtonDown:
		switch ev.Button {
		case ButtonStart:
			return ActionConfirm
		case ButtonBack:
			return ActionQuit
		}

	case EventKeyDown:
		// Any key confirms, bindings have already been resolved by the backend
		return ActionConfirm
	}

	return ActionNone
}

// NormalizeAxis maps a signed 16-bit axis value onto [-1, 1]
// -32768 would land just below -1 and is clamped
func NormalizeAxis(v int16) float32 {
	f := float32(v) / math.MaxInt16
	return vmath.Clamp(f, -1, 1)
}

// ApplyDeadzone zeroes the whole vector when both components lie strictly inside (-dz, dz)
// Otherwise the vector is returned unmodified
func ApplyDeadzone(v vmath.Vector2[float32], dz float32) vmath.Vector2[float32] {
	if v.X > -dz && v.X < dz && v.Y > -dz && v.Y < dz {
		return vmath.Vector2[float32]{}
	}
	return v
}
