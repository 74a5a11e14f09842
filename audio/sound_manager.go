package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/galaxy-monkey/engine"
)

// SoundManager plays effects in response to gameplay events
// Every method is a no-op until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	cfg         Config
	mixer       *beep.Mixer
	initialized bool
	lastPlay    [soundTypeCount]time.Time
	now         func() time.Time

	// sink receives streamers to play; set by Initialize, replaced in tests
	sink func(beep.Streamer)
}

// NewSoundManager creates a sound manager for cfg
func NewSoundManager(cfg Config) *SoundManager {
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		now:   time.Now,
	}
}

// Initialize opens the audio device and starts the mixer
// Disabled configs succeed without touching the device
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}
	if sm.cfg.SampleRate <= 0 {
		return ErrBadSampleRate
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(sm.mixer)

	sm.sink = func(s beep.Streamer) {
		speaker.Lock()
		sm.mixer.Add(s)
		speaker.Unlock()
	}
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the device
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()

	sm.sink = nil
	sm.initialized = false
}

// Ready reports ErrNotInitialized until effects can reach a device
func (sm *SoundManager) Ready() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.sink == nil {
		return ErrNotInitialized
	}
	return nil
}

// Play starts st unless it is throttled or audio is down
// Returns true if the effect was queued
func (sm *SoundManager) Play(st SoundType) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.sink == nil || st < 0 || st >= soundTypeCount {
		return false
	}

	now := sm.now()
	if gap := sm.cfg.MinGap[st]; gap > 0 && now.Sub(sm.lastPlay[st]) < gap {
		return false
	}

	s := GetSoundEffect(st, &sm.cfg)
	if s == nil {
		return false
	}
	sm.lastPlay[st] = now
	sm.sink(s)
	return true
}

// HandleEvent maps gameplay events to effects
func (sm *SoundManager) HandleEvent(ev engine.Event) {
	switch ev.Type {
	case engine.EventGameStarted:
		sm.Play(SoundCoin)
	case engine.EventRoundStarted:
		sm.Play(SoundChime)
	case engine.EventEnemySpawned:
		sm.Play(SoundWhoosh)
	case engine.EventProjectileFired:
		sm.Play(SoundShot)
	}
}
