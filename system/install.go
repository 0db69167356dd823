// Package system holds the per-frame game rules: controls, dispensing, orders, filling and failure tracking.
package system

import (
	"github.com/lixenwraith/plug-n-chug/engine"
	"github.com/lixenwraith/plug-n-chug/physics"
)

// Install registers every game system on g
func Install(g *engine.Game) {
	w := g.World
	for _, s := range []engine.System{
		NewControlsSystem(w),
		NewTapTimerSystem(w),
		NewDispenseSystem(w),
		NewOrderSpawnSystem(w),
		NewDifficultySystem(w),
		NewAssignmentSystem(w),
		physics.NewSimulation(w),
		NewFillSystem(w),
		NewOrderTimerSystem(w),
		NewDropCullSystem(w),
		NewLevelSystem(w),
		NewAudioSystem(w),
	} {
		g.AddSystem(s)
	}
}
