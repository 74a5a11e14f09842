package engine

import "fmt"

// RoundPhase is the round-advance sub-state inside Playing
type RoundPhase uint8

const (
	RoundIdle RoundPhase = iota
	RoundTransitioning
)

// RoundTimer tracks the sub-state and the tick the current transition began
type RoundTimer struct {
	Phase  RoundPhase
	Anchor uint32
}

// RoundStep is the outcome of one round evaluation
type RoundStep struct {
	Next     RoundTimer
	Advanced bool // A new round began this frame
	Spawn    bool // The round's enemy spawns this frame
}

// Advance evaluates the round machine for one frame
// An empty enemy field starts a transition anchored at now; once dwellMs has
// elapsed from the anchor exactly one spawn is requested and the timer idles
func (r RoundTimer) Advance(enemiesEmpty bool, now, dwellMs uint32) RoundStep {
	switch r.Phase {
	case RoundIdle:
		if enemiesEmpty {
			return RoundStep{
				Next:     RoundTimer{Phase: RoundTransitioning, Anchor: now},
				Advanced: true,
			}
		}
	case RoundTransitioning:
		if Elapsed(now, r.Anchor) >= dwellMs {
			return RoundStep{Next: RoundTimer{Phase: RoundIdle}, Spawn: true}
		}
	}
	return RoundStep{Next: r}
}

// RoundAnnouncement is the text shown while round n is announced
func RoundAnnouncement(n uint32) string {
	return fmt.Sprintf("Round %d", n)
}
