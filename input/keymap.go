package input

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

var (
	ErrUnknownKey    = errors.New("unknown key name")
	ErrUnknownAction = errors.New("unknown action")
	ErrDuplicateKey  = errors.New("key bound to more than one action")
)

// Binding is what a key does when pressed
type Binding uint8

const (
	BindNone Binding = iota
	BindQuit
	BindMoveUp
	BindMoveDown
	BindMoveLeft
	BindMoveRight
	BindFireUp
	BindFireDown
	BindFireLeft
	BindFireRight
)

// actionNames maps config action names to bindings
// There is no confirm action, every key that does not quit confirms
var actionNames = map[string]Binding{
	"quit":       BindQuit,
	"move_up":    BindMoveUp,
	"move_down":  BindMoveDown,
	"move_left":  BindMoveLeft,
	"move_right": BindMoveRight,
	"fire_up":    BindFireUp,
	"fire_down":  BindFireDown,
	"fire_left":  BindFireLeft,
	"fire_right": BindFireRight,
}

// Named keys accepted besides single characters
// Aliases collapse onto the canonical name on the right
var keyAliases = map[string]Key{
	"up":         "up",
	"arrowup":    "up",
	"down":       "down",
	"arrowdown":  "down",
	"left":       "left",
	"arrowleft":  "left",
	"right":      "right",
	"arrowright": "right",
	"esc":        "esc",
	"escape":     "esc",
	"enter":      "enter",
	"return":     "enter",
	"space":      "space",
	" ":          "space",
	"tab":        "tab",
	"backspace":  "backspace",
	"ctrl+c":     "ctrl+c",
	"ctrl-c":     "ctrl+c",
}

// ParseKeyName normalizes a user-facing key name
// Single characters are lowercased, named keys resolve through aliases
func ParseKeyName(s string) (Key, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" && s != "" {
		name = " "
	}
	if k, ok := keyAliases[name]; ok {
		return k, nil
	}
	if utf8.RuneCountInString(name) == 1 {
		return Key(name), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKey, s)
}

// Stick reports which stick and direction a movement or fire binding drives
func (b Binding) Stick() (stick StickID, dir Direction, ok bool) {
	switch b {
	case BindMoveUp:
		return StickLeft, DirUp, true
	case BindMoveDown:
		return StickLeft, DirDown, true
	case BindMoveLeft:
		return StickLeft, DirLeft, true
	case BindMoveRight:
		return StickLeft, DirRight, true
	case BindFireUp:
		return StickRight, DirUp, true
	case BindFireDown:
		return StickRight, DirDown, true
	case BindFireLeft:
		return StickRight, DirLeft, true
	case BindFireRight:
		return StickRight, DirRight, true
	}
	return 0, 0, false
}

// KeyMap resolves normalized keys to bindings
type KeyMap struct {
	keys map[Key]Binding
}

// DefaultBindings is the stock layout, action name to key names
func DefaultBindings() map[string][]string {
	return map[string][]string{
		"quit":       {"esc", "ctrl+c"},
		"move_up":    {"w"},
		"move_down":  {"s"},
		"move_left":  {"a"},
		"move_right": {"d"},
		"fire_up":    {"up", "i"},
		"fire_down":  {"down", "k"},
		"fire_left":  {"left", "j"},
		"fire_right": {"right", "l"},
	}
}

// NormalizeAction folds an action name the way NewKeyMap matches it
func NormalizeAction(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NewKeyMap builds a KeyMap from action name to key names
// A key may appear under one action only
func NewKeyMap(bindings map[string][]string) (*KeyMap, error) {
	km := &KeyMap{keys: make(map[Key]Binding)}

	actions := make([]string, 0, len(bindings))
	for a := range bindings {
		actions = append(actions, a)
	}
	sort.Strings(actions)

	for _, action := range actions {
		b, ok := actionNames[NormalizeAction(action)]
		if !ok {
			return nil, fmt.Errorf("[keys] %w: %q", ErrUnknownAction, action)
		}
		for _, name := range bindings[action] {
			k, err := ParseKeyName(name)
			if err != nil {
				return nil, fmt.Errorf("[keys] %s: %w", action, err)
			}
			if prev, ok := km.keys[k]; ok && prev != b {
				return nil, fmt.Errorf("[keys] %w: %q", ErrDuplicateKey, k)
			}
			km.keys[k] = b
		}
	}

	return km, nil
}

// Lookup returns the binding for k, BindNone if unbound
func (km *KeyMap) Lookup(k Key) Binding {
	if km == nil {
		return BindNone
	}
	return km.keys[k]
}
