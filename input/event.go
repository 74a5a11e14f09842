package input

// EventType identifies a raw input event delivered by a backend
type EventType uint8

const (
	EventNone EventType = iota
	EventQuit
	EventDeviceAdded
	EventAxisMotion
	EventButtonDown
	EventKeyDown
	EventMouseWheel
)

// Axis identifies a controller stick axis
type Axis uint8

const (
	AxisLeftX Axis = iota
	AxisLeftY
	AxisRightX
	AxisRightY
)

// Button identifies a controller button
type Button uint8

const (
	ButtonA Button = iota
	ButtonB
	ButtonX
	ButtonY
	ButtonBack
	ButtonGuide
	ButtonStart
	ButtonLeftShoulder
	ButtonRightShoulder
)

// Key is a normalized key name, see ParseKeyName
type Key string

// Event is one discrete raw input event
// Only the fields relevant to Type are meaningful
type Event struct {
	Type   EventType
	Device int    // EventDeviceAdded
	Axis   Axis   // EventAxisMotion
	Value  int16  // EventAxisMotion, signed 16-bit raw axis value
	Button Button // EventButtonDown
	Key    Key    // EventKeyDown
	Wheel  int32  // EventMouseWheel, positive away from the user
}

// Constructors keep backend conversion code terse

func QuitEvent() Event { return Event{Type: EventQuit} }

func DeviceAddedEvent(index int) Event {
	return Event{Type: EventDeviceAdded, Device: index}
}

func AxisEvent(axis Axis, value int16) Event {
	return Event{Type: EventAxisMotion, Axis: axis, Value: value}
}

func ButtonEvent(b Button) Event { return Event{Type: EventButtonDown, Button: b} }

func KeyEvent(k Key) Event { return Event{Type: EventKeyDown, Key: k} }

func WheelEvent(delta int32) Event { return Event{Type: EventMouseWheel, Wheel: delta} }
