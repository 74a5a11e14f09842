package loop

import (
	"sync/atomic"

	"github.com/lixenwraith/galaxy-monkey/engine"
	"github.com/lixenwraith/galaxy-monkey/status"
)

// frameStats caches metric pointers so per-frame updates skip the registry lock
type frameStats struct {
	frames      *atomic.Int64
	overruns    *atomic.Int64
	round       *atomic.Int64
	projectiles *atomic.Int64
	enemies     *atomic.Int64
	frameMs     *status.AtomicFloat
}

func newFrameStats(r *status.Registry) frameStats {
	return frameStats{
		frames:      r.Ints.Get(status.KeyFrames),
		overruns:    r.Ints.Get(status.KeyOverruns),
		round:       r.Ints.Get(status.KeyRound),
		projectiles: r.Ints.Get(status.KeyProjectiles),
		enemies:     r.Ints.Get(status.KeyEnemies),
		frameMs:     r.Floats.Get(status.KeyFrameMs),
	}
}

func (s frameStats) observe(gs *engine.GameState) {
	s.frames.Add(1)
	s.round.Store(int64(gs.RoundNumber))
	s.projectiles.Store(int64(gs.Projectiles.Len()))
	s.enemies.Store(int64(gs.Enemies.Len()))
}

func (s frameStats) timing(elapsed, budget uint32) {
	s.frameMs.Set(float64(elapsed))
	if elapsed > budget {
		s.overruns.Add(1)
	}
}
