package engine

import (
	"github.com/lixenwraith/galaxy-monkey/component"
	"github.com/lixenwraith/galaxy-monkey/input"
	"github.com/lixenwraith/galaxy-monkey/slot"
)

// Tag is the top-level game state
type Tag uint8

const (
	StateStartMenu Tag = iota
	StatePlaying
)

func (t Tag) String() string {
	switch t {
	case StateStartMenu:
		return "start_menu"
	case StatePlaying:
		return "playing"
	}
	return "unknown"
}

// Transition returns the tag after a confirm request
// StartMenu advances to Playing; Playing has no exit besides quitting
func Transition(cur Tag, confirm bool) Tag {
	if cur == StateStartMenu && confirm {
		return StatePlaying
	}
	return cur
}

// GameState is the root aggregate, owned by the loop and mutated only by the
// input mapper, transitions, and Step
type GameState struct {
	Player component.Spaceship
	State  Tag
	Sticks input.Sticks

	Projectiles *slot.Slots[component.Projectile]
	Enemies     *slot.Slots[component.Spaceship]

	RoundNumber uint32
	Round       RoundTimer
	RoundText   string // Announcement shown while the round is transitioning

	// Independent anchor for the start prompt blink
	PromptAnchor uint32
}

// NewGameState creates the startup state: player centered, sticks neutral,
// no entities, round 0, at the start menu
func NewGameState(now uint32) *GameState {
	return &GameState{
		Player:       component.NewSpaceship((ScreenWidth-PlayerWidth)/2, (ScreenHeight-PlayerWidth)/2),
		State:        StateStartMenu,
		Projectiles:  slot.New[component.Projectile](256),
		Enemies:      slot.New[component.Spaceship](8),
		PromptAnchor: now,
	}
}

// Confirm applies a confirm request, appending EventGameStarted when it leaves the start menu
func (gs *GameState) Confirm(now uint32, dst []Event) []Event {
	next := Transition(gs.State, true)
	if next == gs.State {
		return dst
	}
	gs.State = next
	return append(dst, Event{Type: EventGameStarted, Tick: now})
}

// PromptVisible reports whether the blinking start prompt shows at now
func (gs *GameState) PromptVisible(now uint32, blinkMs uint32) bool {
	if blinkMs == 0 {
		return true
	}
	return (Elapsed(now, gs.PromptAnchor)/blinkMs)%2 == 0
}

// Announcing reports whether the round announcement is on screen
func (gs *GameState) Announcing() bool {
	return gs.State == StatePlaying && gs.Round.Phase == RoundTransitioning
}
