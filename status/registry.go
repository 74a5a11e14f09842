package status

import (
	"fmt"
	"strconv"
	"sync/atomic"
)

// Metric keys written by the loop
const (
	KeyFrames      = "loop.frames"
	KeyOverruns    = "loop.overruns"
	KeyFrameMs     = "loop.frame_ms"
	KeyRound       = "engine.round"
	KeyProjectiles = "engine.projectiles"
	KeyEnemies     = "engine.enemies"
)

// Registry is the central metrics facade
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// TotalCount returns the number of metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count()
}

// Lines formats every metric as "key value", ints first, each group in key order
func (r *Registry) Lines() []string {
	lines := make([]string, 0, r.TotalCount())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		lines = append(lines, key+" "+strconv.FormatInt(v.Load(), 10))
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		lines = append(lines, fmt.Sprintf("%s %.2f", key, v.Get()))
	})
	return lines
}
