package engine

import (
	"time"

	"github.com/lixenwraith/galaxy-monkey/vmath"
)

// Display parameters are fixed, every position is in this logical pixel space
const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	PlayerWidth  = 50
)

// Tuning holds the gameplay knobs, DefaultTuning matches the stock game
type Tuning struct {
	Deadzone        float32
	PlayerSpeed     float32 // Pixels per frame at full stick
	ProjectileSpeed float32 // Pixels per frame
	EnemySpeed      float32 // Pixels per frame along +X
	EnemySpawn      vmath.Vector2[float32]
	RoundDwell      time.Duration // Announcement time before a round's enemy spawns
	PromptBlink     time.Duration // Start prompt visibility toggle interval
	FrameBudget     time.Duration // Loop sleeps out the remainder of this budget
}

// DefaultTuning returns the stock values
func DefaultTuning() Tuning {
	return Tuning{
		Deadzone:        0.20,
		PlayerSpeed:     3.0,
		ProjectileSpeed: 10.0,
		EnemySpeed:      1.0,
		EnemySpawn:      vmath.Vec2[float32](0, 30),
		RoundDwell:      2500 * time.Millisecond,
		PromptBlink:     500 * time.Millisecond,
		FrameBudget:     8 * time.Millisecond,
	}
}

// Screen bounds as vectors
var (
	screenMin = vmath.Vector2[float32]{}
	screenMax = vmath.Vec2[float32](ScreenWidth, ScreenHeight)

	// Player top-left corner range keeping the whole square on screen
	playerMax = vmath.Vec2[float32](ScreenWidth-PlayerWidth, ScreenHeight-PlayerWidth)
)
