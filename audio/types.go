package audio

import (
	"errors"
	"time"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundShot   SoundType = iota // Projectile fired
	SoundChime                   // Round announced
	SoundWhoosh                  // Enemy spawned
	SoundCoin                    // Game started
	soundTypeCount
)

var soundNames = [soundTypeCount]string{
	SoundShot:   "shot",
	SoundChime:  "chime",
	SoundWhoosh: "whoosh",
	SoundCoin:   "coin",
}

func (s SoundType) String() string {
	if s >= 0 && s < soundTypeCount {
		return soundNames[s]
	}
	return "unknown"
}

// SoundByName resolves a config name to a SoundType
func SoundByName(name string) (SoundType, bool) {
	for i, n := range soundNames {
		if n == name {
			return SoundType(i), true
		}
	}
	return 0, false
}

// Sentinel errors
var (
	ErrNotInitialized = errors.New("audio not initialized")
	ErrBadSampleRate  = errors.New("sample rate must be positive")
)

// Config holds mixer settings
type Config struct {
	Enabled      bool
	MasterVolume float64                 // 0.0-1.0
	Volumes      [soundTypeCount]float64 // Per effect, 0.0-1.0
	SampleRate   int
	MinGap       [soundTypeCount]time.Duration // Throttle between repeats of one effect
}

// DefaultConfig returns audio settings tuned for the stock game
func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		MasterVolume: 0.5,
		Volumes: [soundTypeCount]float64{
			SoundShot:   0.25,
			SoundChime:  0.8,
			SoundWhoosh: 0.6,
			SoundCoin:   0.7,
		},
		SampleRate: 44100,
		MinGap: [soundTypeCount]time.Duration{
			// Firing spawns a projectile every frame while the stick is held
			SoundShot: 60 * time.Millisecond,
		},
	}
}

// Volume returns the effective gain for st
func (c *Config) Volume(st SoundType) float64 {
	return c.Volumes[st] * c.MasterVolume
}
