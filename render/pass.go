package render

import (
	"time"

	"github.com/lixenwraith/galaxy-monkey/component"
	"github.com/lixenwraith/galaxy-monkey/engine"
)

// Fixed strings of the start menu
const (
	TitleText  = "Galaxy Monkey"
	PromptText = "Press Start"
)

// Pass translates game state into an ordered command list
// It reads state only; the prompt blink is derived from the state's anchor
type Pass struct {
	texts   TextProvider
	blinkMs uint32
}

// NewPass creates a render pass drawing text through texts
func NewPass(texts TextProvider, promptBlink time.Duration) *Pass {
	return &Pass{
		texts:   texts,
		blinkMs: engine.Millis(promptBlink),
	}
}

// Frame appends the commands for gs at tick now to dst
// Order: clear, player, enemies, projectiles, then text
func (p *Pass) Frame(dst []Command, gs *engine.GameState, now uint32) ([]Command, error) {
	dst = append(dst, clearCmd(RgbBackground))

	pos := gs.Player.Position
	dst = append(dst, fillRect(int32(pos.X), int32(pos.Y), engine.PlayerWidth, engine.PlayerWidth, RgbPlayer))

	gs.Enemies.Each(func(e *component.Spaceship) {
		dst = append(dst, fillRect(int32(e.Position.X), int32(e.Position.Y), engine.PlayerWidth, engine.PlayerWidth, RgbEnemy))
	})

	gs.Projectiles.Each(func(pr *component.Projectile) {
		dst = append(dst, point(int32(pr.Position.X), int32(pr.Position.Y), RgbProjectile))
	})

	var err error
	switch gs.State {
	case engine.StatePlaying:
		if gs.Announcing() {
			dst, err = p.centered(dst, gs.RoundText, FontTitle, engine.ScreenHeight/2)
		}

	case engine.StateStartMenu:
		dst, err = p.centered(dst, TitleText, FontTitle, engine.ScreenHeight/3)
		if err == nil && gs.PromptVisible(now, p.blinkMs) {
			dst, err = p.centered(dst, PromptText, FontBody, engine.ScreenHeight*2/3)
		}
	}

	return dst, err
}

// centered draws text centered horizontally on screen and vertically on cy
func (p *Pass) centered(dst []Command, text string, font Font, cy int32) ([]Command, error) {
	h, err := p.texts.Text(text, font, RgbText)
	if err != nil {
		return dst, err
	}
	x, y := Center(h, engine.ScreenWidth/2, cy)
	return append(dst, textAt(h, x, y)), nil
}

// Center returns the top-left corner placing h's box centered on (cx, cy)
func Center(h TextHandle, cx, cy int32) (x, y int32) {
	return cx - h.Width/2, cy - h.Height/2
}
