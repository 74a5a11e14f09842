package engine

import "github.com/lixenwraith/galaxy-monkey/vmath"

// EventType identifies a gameplay event emitted by a transition or Step
type EventType uint8

const (
	EventGameStarted EventType = iota
	EventRoundStarted
	EventEnemySpawned
	EventEnemyEscaped
	EventProjectileFired
)

var eventNames = [...]string{
	EventGameStarted:     "game_started",
	EventRoundStarted:    "round_started",
	EventEnemySpawned:    "enemy_spawned",
	EventEnemyEscaped:    "enemy_escaped",
	EventProjectileFired: "projectile_fired",
}

func (t EventType) String() string {
	if int(t) < len(eventNames) {
		return eventNames[t]
	}
	return "unknown"
}

// Event is a gameplay event, consumers are observers only
type Event struct {
	Type     EventType
	Tick     uint32
	Round    uint32                 // EventRoundStarted
	Position vmath.Vector2[float32] // Spawn or fire origin
}
