package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/galaxy-monkey/audio"
	"github.com/lixenwraith/galaxy-monkey/engine"
	"github.com/lixenwraith/galaxy-monkey/input"
	"github.com/lixenwraith/galaxy-monkey/vmath"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Config is the on-disk game configuration
type Config struct {
	Tuning TuningConfig        `toml:"tuning" json:"tuning" jsonschema:"description=Gameplay constants"`
	Audio  AudioConfig         `toml:"audio" json:"audio" jsonschema:"description=Sound effect mixer"`
	Keys   map[string][]string `toml:"keys" json:"keys,omitempty" jsonschema:"description=Action name (quit/move_up/move_down/move_left/move_right/fire_up/fire_down/fire_left/fire_right) to key names. Listed actions replace their stock keys and take the keys they name from other actions. Any key not bound to quit confirms the start menu"`
	Debug  DebugConfig         `toml:"debug" json:"debug"`

	// Source describes where values were loaded from, for logging
	Source string `toml:"-" json:"-"`
}

// TuningConfig mirrors engine.Tuning in file-friendly units
type TuningConfig struct {
	Deadzone        float64 `toml:"deadzone" json:"deadzone" jsonschema:"minimum=0,exclusiveMaximum=1,default=0.2"`
	PlayerSpeed     float64 `toml:"player_speed" json:"player_speed" jsonschema:"minimum=0,default=3"`
	ProjectileSpeed float64 `toml:"projectile_speed" json:"projectile_speed" jsonschema:"exclusiveMinimum=0,default=10"`
	EnemySpeed      float64 `toml:"enemy_speed" json:"enemy_speed" jsonschema:"exclusiveMinimum=0,default=1"`
	SpawnX          float64 `toml:"spawn_x" json:"spawn_x" jsonschema:"minimum=0,maximum=1280,default=0"`
	SpawnY          float64 `toml:"spawn_y" json:"spawn_y" jsonschema:"minimum=0,maximum=720,default=30"`
	RoundDwellMs    int     `toml:"round_dwell_ms" json:"round_dwell_ms" jsonschema:"minimum=0,default=2500"`
	PromptBlinkMs   int     `toml:"prompt_blink_ms" json:"prompt_blink_ms" jsonschema:"minimum=0,default=500"`
	FrameBudgetMs   int     `toml:"frame_budget_ms" json:"frame_budget_ms" jsonschema:"minimum=1,default=8"`
	KeyHoldMs       int     `toml:"key_hold_ms" json:"key_hold_ms" jsonschema:"minimum=1,default=300,description=Terminal only: how long a key press keeps its stick direction held"`
}

// AudioConfig holds mixer settings, volumes are 0.0-1.0
type AudioConfig struct {
	Enabled      bool               `toml:"enabled" json:"enabled" jsonschema:"default=true"`
	MasterVolume float64            `toml:"master_volume" json:"master_volume" jsonschema:"minimum=0,maximum=1,default=0.5"`
	Volumes      map[string]float64 `toml:"volumes" json:"volumes,omitempty" jsonschema:"description=Per effect volume keyed by shot/chime/whoosh/coin"`
	SampleRate   int                `toml:"sample_rate" json:"sample_rate" jsonschema:"minimum=8000,default=44100"`
}

type DebugConfig struct {
	Overlay bool `toml:"overlay" json:"overlay" jsonschema:"description=Draw frame metrics in the top-left corner"`
}

// Default returns the stock configuration
func Default() *Config {
	t := engine.DefaultTuning()
	a := audio.DefaultConfig()
	return &Config{
		Tuning: TuningConfig{
			Deadzone:        float64(t.Deadzone),
			PlayerSpeed:     float64(t.PlayerSpeed),
			ProjectileSpeed: float64(t.ProjectileSpeed),
			EnemySpeed:      float64(t.EnemySpeed),
			SpawnX:          float64(t.EnemySpawn.X),
			SpawnY:          float64(t.EnemySpawn.Y),
			RoundDwellMs:    int(t.RoundDwell / time.Millisecond),
			PromptBlinkMs:   int(t.PromptBlink / time.Millisecond),
			FrameBudgetMs:   int(t.FrameBudget / time.Millisecond),
			KeyHoldMs:       300,
		},
		Audio: AudioConfig{
			Enabled:      a.Enabled,
			MasterVolume: a.MasterVolume,
			SampleRate:   a.SampleRate,
		},
		Source: "defaults",
	}
}

// Validate checks ranges and key bindings
func (c *Config) Validate() error {
	t := &c.Tuning
	switch {
	case t.Deadzone < 0 || t.Deadzone >= 1:
		return fmt.Errorf("%w: tuning.deadzone %v out of [0, 1)", ErrInvalid, t.Deadzone)
	case t.PlayerSpeed < 0:
		return fmt.Errorf("%w: tuning.player_speed %v is negative", ErrInvalid, t.PlayerSpeed)
	case t.ProjectileSpeed <= 0:
		return fmt.Errorf("%w: tuning.projectile_speed must be positive", ErrInvalid)
	case t.EnemySpeed <= 0:
		return fmt.Errorf("%w: tuning.enemy_speed must be positive", ErrInvalid)
	case t.SpawnX < 0 || t.SpawnX > engine.ScreenWidth || t.SpawnY < 0 || t.SpawnY > engine.ScreenHeight:
		return fmt.Errorf("%w: tuning spawn point (%v, %v) off screen", ErrInvalid, t.SpawnX, t.SpawnY)
	case t.RoundDwellMs < 0 || t.PromptBlinkMs < 0:
		return fmt.Errorf("%w: tuning durations must not be negative", ErrInvalid)
	case t.FrameBudgetMs <= 0:
		return fmt.Errorf("%w: tuning.frame_budget_ms must be positive", ErrInvalid)
	case t.KeyHoldMs <= 0:
		return fmt.Errorf("%w: tuning.key_hold_ms must be positive", ErrInvalid)
	}

	a := &c.Audio
	if a.MasterVolume < 0 || a.MasterVolume > 1 {
		return fmt.Errorf("%w: audio.master_volume %v out of [0, 1]", ErrInvalid, a.MasterVolume)
	}
	if a.Enabled && a.SampleRate <= 0 {
		return fmt.Errorf("%w: audio.sample_rate must be positive", ErrInvalid)
	}
	for name, v := range a.Volumes {
		if _, ok := audio.SoundByName(name); !ok {
			return fmt.Errorf("%w: audio.volumes: unknown sound %q", ErrInvalid, name)
		}
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: audio.volumes.%s %v out of [0, 1]", ErrInvalid, name, v)
		}
	}

	if _, err := c.KeyMap(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// EngineTuning converts to simulation units
func (c *Config) EngineTuning() engine.Tuning {
	t := &c.Tuning
	return engine.Tuning{
		Deadzone:        float32(t.Deadzone),
		PlayerSpeed:     float32(t.PlayerSpeed),
		ProjectileSpeed: float32(t.ProjectileSpeed),
		EnemySpeed:      float32(t.EnemySpeed),
		EnemySpawn:      vmath.Vec2(float32(t.SpawnX), float32(t.SpawnY)),
		RoundDwell:      time.Duration(t.RoundDwellMs) * time.Millisecond,
		PromptBlink:     time.Duration(t.PromptBlinkMs) * time.Millisecond,
		FrameBudget:     time.Duration(t.FrameBudgetMs) * time.Millisecond,
	}
}

// KeyHold is the terminal backend's simulated key-down window
func (c *Config) KeyHold() time.Duration {
	return time.Duration(c.Tuning.KeyHoldMs) * time.Millisecond
}

// AudioSettings converts to mixer settings, unlisted effects keep stock volumes
func (c *Config) AudioSettings() audio.Config {
	ac := audio.DefaultConfig()
	ac.Enabled = c.Audio.Enabled
	ac.MasterVolume = c.Audio.MasterVolume
	ac.SampleRate = c.Audio.SampleRate
	for name, v := range c.Audio.Volumes {
		if st, ok := audio.SoundByName(name); ok {
			ac.Volumes[st] = v
		}
	}
	return ac
}

// Bindings merges configured keys over the stock layout
// A listed action replaces its stock keys, and keys it claims are taken away
// from the stock actions left in place
func (c *Config) Bindings() map[string][]string {
	listed := make(map[string][]string, len(c.Keys))
	claimed := make(map[input.Key]bool)
	for action, keys := range c.Keys {
		name := input.NormalizeAction(action)
		listed[name] = append(listed[name], keys...)
		for _, k := range keys {
			if key, err := input.ParseKeyName(k); err == nil {
				claimed[key] = true
			}
		}
	}

	b := input.DefaultBindings()
	for action, keys := range b {
		kept := keys[:0]
		for _, k := range keys {
			if key, err := input.ParseKeyName(k); err == nil && !claimed[key] {
				kept = append(kept, k)
			}
		}
		b[action] = kept
	}
	for action, keys := range listed {
		b[action] = keys
	}
	return b
}

// KeyMap builds the key lookup for both backends
func (c *Config) KeyMap() (*input.KeyMap, error) {
	return input.NewKeyMap(c.Bindings())
}
