package input

import "math"

// StickID selects the left (movement) or right (fire) stick
type StickID uint8

const (
	StickLeft StickID = iota
	StickRight
)

// Direction is one of the four digital directions of a stick
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Held is the set of digital directions currently held per stick
type Held [2][4]bool

// Set marks a direction held
func (h *Held) Set(stick StickID, dir Direction) {
	h[stick][dir] = true
}

// StickSynth turns held digital directions into axis motion events so keyboard
// input travels the same normalization and deadzone path as a gamepad
type StickSynth struct {
	last [4]int16 // Last emitted raw value per Axis
}

// Sync appends an axis event for every axis whose synthesized value changed
func (s *StickSynth) Sync(dst []Event, held Held) []Event {
	values := [4]int16{
		AxisLeftX:  axisValue(held[StickLeft][DirLeft], held[StickLeft][DirRight]),
		AxisLeftY:  axisValue(held[StickLeft][DirUp], held[StickLeft][DirDown]),
		AxisRightX: axisValue(held[StickRight][DirLeft], held[StickRight][DirRight]),
		AxisRightY: axisValue(held[StickRight][DirUp], held[StickRight][DirDown]),
	}

	for axis, v := range values {
		if v != s.last[axis] {
			s.last[axis] = v
			dst = append(dst, AxisEvent(Axis(axis), v))
		}
	}
	return dst
}

// axisValue resolves an opposing pair, both or neither held reads as neutral
func axisValue(neg, pos bool) int16 {
	switch {
	case neg && !pos:
		return -math.MaxInt16
	case pos && !neg:
		return math.MaxInt16
	}
	return 0
}
