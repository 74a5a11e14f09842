package engine

import (
	"github.com/lixenwraith/galaxy-monkey/component"
	"github.com/lixenwraith/galaxy-monkey/vmath"
)

// Step runs one simulation frame and appends the events it produced to dst
// Order: round machine, fire, player move, enemy move, projectile move;
// out-of-bounds entities are removed before Step returns so the render pass
// never sees them
func Step(gs *GameState, t Tuning, now uint32, dst []Event) []Event {
	if gs.State != StatePlaying {
		return dst
	}

	dst = stepRound(gs, t, now, dst)
	dst = stepFire(gs, t, now, dst)
	stepPlayer(gs, t)
	dst = stepEnemies(gs, t, now, dst)
	stepProjectiles(gs)

	return dst
}

func stepRound(gs *GameState, t Tuning, now uint32, dst []Event) []Event {
	res := gs.Round.Advance(gs.Enemies.Empty(), now, Millis(t.RoundDwell))
	gs.Round = res.Next

	if res.Advanced {
		gs.RoundNumber++
		gs.RoundText = RoundAnnouncement(gs.RoundNumber)
		dst = append(dst, Event{Type: EventRoundStarted, Tick: now, Round: gs.RoundNumber})
	}

	if res.Spawn {
		gs.Enemies.Insert(component.Spaceship{Position: t.EnemySpawn})
		dst = append(dst, Event{Type: EventEnemySpawned, Tick: now, Round: gs.RoundNumber, Position: t.EnemySpawn})
	}

	return dst
}

func stepFire(gs *GameState, t Tuning, now uint32, dst []Event) []Event {
	if gs.Sticks.Right.IsZero() {
		return dst
	}

	const half = PlayerWidth / 2
	origin := gs.Player.Position.Add(vmath.Vec2[float32](half, half))

	p, ok := component.NewProjectile(origin, gs.Sticks.Right, t.ProjectileSpeed)
	if !ok {
		return dst
	}
	gs.Projectiles.Insert(p)

	return append(dst, Event{Type: EventProjectileFired, Tick: now, Position: origin})
}

func stepPlayer(gs *GameState, t Tuning) {
	pos := gs.Player.Position.Add(gs.Sticks.Left.Scale(t.PlayerSpeed))
	gs.Player.Position = pos.Clamp(screenMin, playerMax)
}

func stepEnemies(gs *GameState, t Tuning, now uint32, dst []Event) []Event {
	gs.Enemies.Update(func(e *component.Spaceship) bool {
		e.Position.X += t.EnemySpeed
		if e.Position.X > ScreenWidth {
			dst = append(dst, Event{Type: EventEnemyEscaped, Tick: now, Round: gs.RoundNumber, Position: e.Position})
			return false
		}
		return true
	})
	return dst
}

func stepProjectiles(gs *GameState) {
	gs.Projectiles.Update(func(p *component.Projectile) bool {
		p.Advance()
		return p.Position.Within(screenMin, screenMax)
	})
}
