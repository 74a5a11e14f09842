package engine

import (
	"sync"
	"time"
)

// Clock supplies monotonically non-decreasing millisecond ticks since an arbitrary epoch
type Clock interface {
	Ticks() uint32
}

// SystemClock counts milliseconds from its creation using the monotonic clock
type SystemClock struct {
	start time.Time
}

// NewSystemClock creates a clock whose epoch is now
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Ticks returns milliseconds since the clock was created
func (c *SystemClock) Ticks() uint32 {
	return uint32(time.Since(c.start).Milliseconds())
}

// MockClock provides a controllable tick source for testing
type MockClock struct {
	mu    sync.RWMutex
	ticks uint32
}

// NewMockClock creates a mock clock reading start
func NewMockClock(start uint32) *MockClock {
	return &MockClock{ticks: start}
}

// Ticks returns the current mocked tick
func (m *MockClock) Ticks() uint32 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.ticks
}

// Set sets the current tick
func (m *MockClock) Set(ticks uint32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ticks = ticks
}

// Advance moves the clock forward by d, truncated to whole milliseconds
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ticks += uint32(d.Milliseconds())
}

// Elapsed returns now - anchor in milliseconds, correct across tick wraparound
func Elapsed(now, anchor uint32) uint32 {
	return now - anchor
}

// Millis converts a duration to ticks
func Millis(d time.Duration) uint32 {
	return uint32(d.Milliseconds())
}
