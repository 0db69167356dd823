package engine

import (
	"sync"
	"time"
)

// Virtual clock scale bounds
const (
	MinClockScale = 0.25
	MaxClockScale = 4.0
)

// VirtualClock converts real frame deltas into session time with pause and scale
// Pause freezes all session time, scale applies to the virtual channel only
type VirtualClock struct {
	mu     sync.RWMutex
	paused bool
	scale  float64
}

// NewVirtualClock creates a running clock at scale 1
func NewVirtualClock() *VirtualClock {
	return &VirtualClock{scale: 1}
}

// Advance returns the session delta and the virtual delta for one real frame
func (c *VirtualClock) Advance(real time.Duration) (delta, virtual time.Duration) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.paused || real <= 0 {
		return 0, 0
	}
	return real, time.Duration(float64(real) * c.scale)
}

// Pause stops time advancement
func (c *VirtualClock) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paused = true
}

// Resume continues time advancement
func (c *VirtualClock) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paused = false
}

// TogglePause flips the pause state and returns the new state
func (c *VirtualClock) TogglePause() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paused = !c.paused
	return c.paused
}

// IsPaused returns current pause state
func (c *VirtualClock) IsPaused() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.paused
}

// SetScale clamps and stores the virtual time multiplier
func (c *VirtualClock) SetScale(scale float64) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scale = min(max(scale, MinClockScale), MaxClockScale)
	return c.scale
}

// Scale returns the virtual time multiplier
func (c *VirtualClock) Scale() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.scale
}
