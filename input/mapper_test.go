package input

import (
	"math"
	"testing"

	"github.com/lixenwraith/galaxy-monkey/vmath"
)

func raw(f float32) int16 {
	return int16(f * math.MaxInt16)
}

func TestNormalizeAxis(t *testing.T) {
	tests := []struct {
		in   int16
		want float32
	}{
		{0, 0},
		{math.MaxInt16, 1},
		{-math.MaxInt16, -1},
		{math.MinInt16, -1},
	}
	for _, tt := range tests {
		if got := NormalizeAxis(tt.in); got != tt.want {
			t.Errorf("NormalizeAxis(%d) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestApplyDeadzone(t *testing.T) {
	dz := DefaultDeadzone

	tests := []struct {
		name string
		in   vmath.Vector2[float32]
		want vmath.Vector2[float32]
	}{
		{"Both inside", vmath.Vec2[float32](0.19, -0.19), vmath.Vector2[float32]{}},
		{"Tiny", vmath.Vec2[float32](0.01, 0.02), vmath.Vector2[float32]{}},
		{"X on boundary", vmath.Vec2[float32](0.20, 0.1), vmath.Vec2[float32](0.20, 0.1)},
		{"Negative Y on boundary", vmath.Vec2[float32](0.05, -0.20), vmath.Vec2[float32](0.05, -0.20)},
		{"One axis outside keeps other", vmath.Vec2[float32](0.9, 0.05), vmath.Vec2[float32](0.9, 0.05)},
		{"Both outside", vmath.Vec2[float32](-0.5, 0.5), vmath.Vec2[float32](-0.5, 0.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ApplyDeadzone(tt.in, dz); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMapperAxisUpdatesMatchingComponent(t *testing.T) {
	m := NewMapper(DefaultDeadzone)
	var st Sticks

	m.Apply(&st, AxisEvent(AxisLeftX, math.MaxInt16))
	m.Apply(&st, AxisEvent(AxisRightY, -math.MaxInt16))

	if st.Left != vmath.Vec2[float32](1, 0) {
		t.Errorf("Left = %v, want {1 0}", st.Left)
	}
	if st.Right != vmath.Vec2[float32](0, -1) {
		t.Errorf("Right = %v, want {0 -1}", st.Right)
	}
}

func TestMapperDeadzoneWholeVector(t *testing.T) {
	m := NewMapper(DefaultDeadzone)
	var st Sticks

	// Sub-deadzone reading on one axis reads neutral
	m.Apply(&st, AxisEvent(AxisLeftX, raw(0.1)))
	if !st.Left.IsZero() {
		t.Fatalf("Left = %v, want zero inside deadzone", st.Left)
	}

	// Pushing the other axis out reveals the stored reading unmodified
	m.Apply(&st, AxisEvent(AxisLeftY, raw(0.5)))
	if st.Left.X != NormalizeAxis(raw(0.1)) || st.Left.Y != NormalizeAxis(raw(0.5)) {
		t.Errorf("Left = %v, want raw reading {%v %v}", st.Left, NormalizeAxis(raw(0.1)), NormalizeAxis(raw(0.5)))
	}

	// Returning inside zeroes both components together
	m.Apply(&st, AxisEvent(AxisLeftY, raw(0.05)))
	if st.Left.X != 0 || st.Left.Y != 0 {
		t.Errorf("Left = %v, want exact zero", st.Left)
	}
}

func TestMapperAxisEventFiltersBothSticks(t *testing.T) {
	m := NewMapper(DefaultDeadzone)
	st := Sticks{Right: vmath.Vec2[float32](0.1, 0.1)}

	// Any axis event re-filters both sticks
	m.Apply(&st, AxisEvent(AxisLeftX, 0))
	if !st.Right.IsZero() {
		t.Errorf("Right = %v, want zero after filtering", st.Right)
	}
}

func TestMapperActions(t *testing.T) {
	m := NewMapper(DefaultDeadzone)

	tests := []struct {
		name string
		ev   Event
		want Action
	}{
		{"Quit", QuitEvent(), ActionQuit},
		{"Device added", DeviceAddedEvent(0), ActionDeviceAdded},
		{"Start button", ButtonEvent(ButtonStart), ActionConfirm},
		{"Back button", ButtonEvent(ButtonBack), ActionQuit},
		{"Other button", ButtonEvent(ButtonA), ActionNone},
		{"Any key", KeyEvent("x"), ActionConfirm},
		{"Wheel", WheelEvent(1), ActionNone},
		{"Axis", AxisEvent(AxisLeftX, 100), ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var st Sticks
			if got := m.Apply(&st, tt.ev); got != tt.want {
				t.Errorf("Apply = %v, want %v", got, tt.want)
			}
		})
	}
}
