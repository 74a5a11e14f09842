package engine

import (
	"math"
	"testing"

	"github.com/lixenwraith/galaxy-monkey/component"
	"github.com/lixenwraith/galaxy-monkey/vmath"
)

func playingState(now uint32) *GameState {
	gs := NewGameState(now)
	gs.State = StatePlaying
	return gs
}

func countType(evs []Event, typ EventType) int {
	n := 0
	for _, ev := range evs {
		if ev.Type == typ {
			n++
		}
	}
	return n
}

func enemyPositions(gs *GameState) []vmath.Vector2[float32] {
	var out []vmath.Vector2[float32]
	gs.Enemies.Each(func(e *component.Spaceship) {
		out = append(out, e.Position)
	})
	return out
}

func TestStepIdleInStartMenu(t *testing.T) {
	gs := NewGameState(0)
	gs.Sticks.Left = vmath.Vec2[float32](1, 1)
	gs.Sticks.Right = vmath.Vec2[float32](1, 0)

	evs := Step(gs, DefaultTuning(), 5000, nil)

	if len(evs) != 0 {
		t.Errorf("start menu step emitted %v", evs)
	}
	if gs.RoundNumber != 0 || !gs.Projectiles.Empty() {
		t.Error("start menu step mutated gameplay state")
	}
	if gs.Player.Position != vmath.Vec2[float32](615, 335) {
		t.Errorf("player moved in start menu: %v", gs.Player.Position)
	}
}

func TestStartScenario(t *testing.T) {
	tun := DefaultTuning()
	clock := NewMockClock(0)
	gs := NewGameState(clock.Ticks())

	clock.Set(1000)
	evs := gs.Confirm(clock.Ticks(), nil)
	evs = Step(gs, tun, clock.Ticks(), evs)

	if gs.State != StatePlaying {
		t.Fatalf("State = %v, want playing", gs.State)
	}
	if gs.RoundNumber != 1 {
		t.Fatalf("RoundNumber = %d, want 1 immediately after confirm", gs.RoundNumber)
	}
	if !gs.Announcing() || gs.RoundText != "Round 1" {
		t.Errorf("expected announcement 'Round 1', got announcing=%v text=%q", gs.Announcing(), gs.RoundText)
	}
	if countType(evs, EventRoundStarted) != 1 {
		t.Errorf("events = %v, want one round_started", evs)
	}

	// Frames during the dwell spawn nothing and do not advance the round again
	for tick := uint32(1008); tick < 3500; tick += 8 {
		evs = Step(gs, tun, tick, evs[:0])
		if !gs.Enemies.Empty() {
			t.Fatalf("enemy spawned early at tick %d", tick)
		}
		if gs.RoundNumber != 1 {
			t.Fatalf("RoundNumber changed to %d during dwell", gs.RoundNumber)
		}
	}

	// First frame at anchor+2500 spawns exactly one enemy at the spawn point
	evs = Step(gs, tun, 3500, evs[:0])
	if gs.Enemies.Len() != 1 {
		t.Fatalf("enemies = %d, want 1", gs.Enemies.Len())
	}
	if countType(evs, EventEnemySpawned) != 1 {
		t.Errorf("events = %v, want one enemy_spawned", evs)
	}
	if gs.RoundNumber != 1 {
		t.Errorf("RoundNumber = %d at spawn, want 1", gs.RoundNumber)
	}
	if gs.Announcing() {
		t.Error("announcement should end with the spawn")
	}

	// Spawned at (0,30) then moved one step in the same frame
	pos := enemyPositions(gs)[0]
	if pos != vmath.Vec2[float32](1, 30) {
		t.Errorf("enemy at %v, want {1 30} after its first move", pos)
	}
}

func TestLateFrameSpawnsOnce(t *testing.T) {
	tun := DefaultTuning()
	gs := playingState(0)

	Step(gs, tun, 0, nil)
	evs := Step(gs, tun, 10000, nil)

	if gs.Enemies.Len() != 1 || countType(evs, EventEnemySpawned) != 1 {
		t.Errorf("late frame spawned %d enemies", gs.Enemies.Len())
	}
}

func TestEnemyEscapeStartsNextRound(t *testing.T) {
	tun := DefaultTuning()
	gs := playingState(0)
	gs.RoundNumber = 1
	gs.Enemies.Insert(component.NewSpaceship(ScreenWidth, 30))

	evs := Step(gs, tun, 100, nil)
	if !gs.Enemies.Empty() {
		t.Fatal("enemy past the right edge should be removed in the same frame")
	}
	if countType(evs, EventEnemyEscaped) != 1 {
		t.Errorf("events = %v, want one enemy_escaped", evs)
	}
	if gs.RoundNumber != 1 {
		t.Error("round must not advance in the frame the field empties")
	}

	Step(gs, tun, 108, nil)
	if gs.RoundNumber != 2 || gs.RoundText != "Round 2" {
		t.Errorf("next frame RoundNumber = %d text %q, want 2", gs.RoundNumber, gs.RoundText)
	}
	if gs.Round.Anchor != 108 {
		t.Errorf("anchor = %d, want 108", gs.Round.Anchor)
	}
}

func TestEnemyAtEdgeSurvives(t *testing.T) {
	gs := playingState(0)
	gs.Enemies.Insert(component.NewSpaceship(ScreenWidth-1, 30))

	Step(gs, DefaultTuning(), 0, nil)
	if gs.Enemies.Len() != 1 {
		t.Error("enemy at exactly the screen width should survive")
	}
}

func TestFireDirection(t *testing.T) {
	tests := []struct {
		name  string
		right vmath.Vector2[float32]
		want  vmath.Vector2[float32]
	}{
		{"Right", vmath.Vec2[float32](1, 0), vmath.Vec2[float32](10, 0)},
		{"Left", vmath.Vec2[float32](-1, 0), vmath.Vec2[float32](-10, 0)},
		{"Down", vmath.Vec2[float32](0, 1), vmath.Vec2[float32](0, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := playingState(0)
			gs.Enemies.Insert(component.NewSpaceship(0, 30)) // Hold the round machine idle
			gs.Sticks.Right = tt.right

			evs := Step(gs, DefaultTuning(), 0, nil)
			if countType(evs, EventProjectileFired) != 1 {
				t.Fatalf("events = %v, want one projectile_fired", evs)
			}

			var got component.Projectile
			gs.Projectiles.Each(func(p *component.Projectile) { got = *p })

			if math.Abs(float64(got.Velocity.X-tt.want.X)) > 1e-4 || math.Abs(float64(got.Velocity.Y-tt.want.Y)) > 1e-4 {
				t.Errorf("velocity = %v, want %v", got.Velocity, tt.want)
			}

			// Spawned at the player center, then advanced once
			origin := vmath.Vec2[float32](615+25, 335+25)
			wantPos := origin.Add(got.Velocity)
			if got.Position != wantPos {
				t.Errorf("position = %v, want %v", got.Position, wantPos)
			}
		})
	}
}

func TestNoFireWithNeutralStick(t *testing.T) {
	gs := playingState(0)
	gs.Enemies.Insert(component.NewSpaceship(0, 30))

	evs := Step(gs, DefaultTuning(), 0, nil)
	if !gs.Projectiles.Empty() || countType(evs, EventProjectileFired) != 0 {
		t.Error("neutral right stick should not fire")
	}
}

func TestProjectileDespawn(t *testing.T) {
	tests := []struct {
		name string
		p    component.Projectile
		keep bool
	}{
		{"Leaves left", component.Projectile{Position: vmath.Vec2[float32](5, 100), Velocity: vmath.Vec2[float32](-10, 0)}, false},
		{"Leaves right", component.Projectile{Position: vmath.Vec2[float32](1275, 100), Velocity: vmath.Vec2[float32](10, 0)}, false},
		{"Leaves top", component.Projectile{Position: vmath.Vec2[float32](100, 3), Velocity: vmath.Vec2[float32](0, -10)}, false},
		{"Leaves bottom", component.Projectile{Position: vmath.Vec2[float32](100, 715), Velocity: vmath.Vec2[float32](0, 10)}, false},
		{"Lands on edge", component.Projectile{Position: vmath.Vec2[float32](1270, 100), Velocity: vmath.Vec2[float32](10, 0)}, true},
		{"Inside", component.Projectile{Position: vmath.Vec2[float32](640, 360), Velocity: vmath.Vec2[float32](10, 10)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := playingState(0)
			gs.Enemies.Insert(component.NewSpaceship(0, 30))
			gs.Projectiles.Insert(tt.p)

			Step(gs, DefaultTuning(), 0, nil)

			if got := gs.Projectiles.Len() == 1; got != tt.keep {
				t.Errorf("kept = %v, want %v", got, tt.keep)
			}
		})
	}
}

func TestPlayerClamp(t *testing.T) {
	tun := DefaultTuning()
	tun.PlayerSpeed = 500 // Far beyond the screen in one frame

	sticks := []vmath.Vector2[float32]{
		vmath.Vec2[float32](1, 1),
		vmath.Vec2[float32](-1, -1),
		vmath.Vec2[float32](1, -1),
		vmath.Vec2[float32](-1, 1),
	}

	for _, s := range sticks {
		gs := playingState(0)
		gs.Enemies.Insert(component.NewSpaceship(0, 30))
		gs.Sticks.Left = s

		for i := 0; i < 5; i++ {
			Step(gs, tun, uint32(i*8), nil)
			p := gs.Player.Position
			if p.X < 0 || p.X > 1230 || p.Y < 0 || p.Y > 670 {
				t.Fatalf("stick %v: player at %v outside [0,1230]x[0,670]", s, p)
			}
		}
	}
}

func TestPlayerMovesBySpeed(t *testing.T) {
	gs := playingState(0)
	gs.Enemies.Insert(component.NewSpaceship(0, 30))
	gs.Sticks.Left = vmath.Vec2[float32](1, -0.5)

	Step(gs, DefaultTuning(), 0, nil)

	want := vmath.Vec2[float32](618, 333.5)
	if gs.Player.Position != want {
		t.Errorf("player at %v, want %v", gs.Player.Position, want)
	}
}
