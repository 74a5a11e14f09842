package loop

import (
	"log"

	"github.com/lixenwraith/galaxy-monkey/engine"
)

// LogHandler writes round progression to the standard logger
type LogHandler struct{}

func (LogHandler) HandleEvent(ev engine.Event) {
	switch ev.Type {
	case engine.EventGameStarted:
		log.Printf("game started at tick %d", ev.Tick)
	case engine.EventRoundStarted:
		log.Printf("round %d started at tick %d", ev.Round, ev.Tick)
	case engine.EventEnemySpawned:
		log.Printf("round %d enemy spawned at (%.0f, %.0f)", ev.Round, ev.Position.X, ev.Position.Y)
	case engine.EventEnemyEscaped:
		log.Printf("round %d enemy escaped", ev.Round)
	}
}

// HandlerFunc adapts a function to Handler
type HandlerFunc func(ev engine.Event)

func (f HandlerFunc) HandleEvent(ev engine.Event) { f(ev) }
