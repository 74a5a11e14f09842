package component

import (
	"math"

	"github.com/lixenwraith/galaxy-monkey/vmath"
)

// Projectile is a linear-motion shot
type Projectile struct {
	Position vmath.Vector2[float32] // Screen pixels
	Velocity vmath.Vector2[float32] // Pixels per frame
}

// NewProjectile aims a projectile along dir at the given speed
// ok is false for a zero direction, which has no angle
func NewProjectile(origin, dir vmath.Vector2[float32], speed float32) (p Projectile, ok bool) {
	if dir.IsZero() {
		return Projectile{}, false
	}

	// Atan2 resolves the quadrant for x < 0 and is defined for x == 0
	angle := math.Atan2(float64(dir.Y), float64(dir.X))
	vel := vmath.Vec2(
		float32(math.Cos(angle))*speed,
		float32(math.Sin(angle))*speed,
	)

	return Projectile{Position: origin, Velocity: vel}, true
}

// Advance moves the projectile by one frame of velocity
func (p *Projectile) Advance() {
	p.Position = p.Position.Add(p.Velocity)
}
