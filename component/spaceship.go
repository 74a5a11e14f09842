package component

import "github.com/lixenwraith/galaxy-monkey/vmath"

// Spaceship is a player or enemy ship
// Position is the top-left corner in screen pixels
type Spaceship struct {
	Position vmath.Vector2[float32]
}

// NewSpaceship places a ship at (x, y)
func NewSpaceship(x, y float32) Spaceship {
	return Spaceship{Position: vmath.Vec2(x, y)}
}
