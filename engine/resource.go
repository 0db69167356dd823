package engine

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/plug-n-chug/core"
	"github.com/lixenwraith/plug-n-chug/event"
	"github.com/lixenwraith/plug-n-chug/input"
	"github.com/lixenwraith/plug-n-chug/level"
	"github.com/lixenwraith/plug-n-chug/order"
	"github.com/lixenwraith/plug-n-chug/status"
	"github.com/lixenwraith/plug-n-chug/tap"
)

// Resource holds singleton session state injected into every system
type Resource struct {
	Time   *TimeResource
	Clock  *VirtualClock
	Event  *event.EventQueue
	Rand   *rand.Rand
	Status *status.Registry

	Tap      *tap.State
	Controls *input.Controls
	Orders   *OrderResource
	Level    *LevelResource

	Audio *AudioResource
}

// TimeResource wraps time data for systems
// Updated by Game.Step at the start of a frame
type TimeResource struct {
	// DeltaTime is the frame duration, zero while the clock is paused
	DeltaTime time.Duration

	// VirtualDelta is DeltaTime scaled by the clock, drives dispensing and drop motion
	VirtualDelta time.Duration

	// Elapsed is accumulated DeltaTime since session start
	Elapsed time.Duration

	// FrameNumber is the current frame count
	FrameNumber int64
}

// Update modifies TimeResource fields in-place
func (tr *TimeResource) Update(delta, virtual time.Duration) {
	tr.DeltaTime = delta
	tr.VirtualDelta = virtual
	tr.Elapsed += delta
	tr.FrameNumber++
}

// OrderResource holds the recipe catalog and cup geometry
type OrderResource struct {
	Catalog *order.Catalog
	Recipes []*order.Recipe // Source list, used to rebuild the catalog on reset
	Cups    *order.CupConfig
}

// LevelResource holds the failure state of the session
type LevelResource struct {
	State level.State
}

// AudioPlayer defines the minimal audio interface used by game systems
type AudioPlayer interface {
	Play(core.SoundType) bool
	ToggleMute() bool
	IsMuted() bool
}

// AudioResource wraps the audio player interface, Player is nil when silent
type AudioResource struct {
	Player AudioPlayer
}
