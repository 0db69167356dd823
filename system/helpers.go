package system

import (
	"github.com/lixenwraith/plug-n-chug/component"
	"github.com/lixenwraith/plug-n-chug/core"
	"github.com/lixenwraith/plug-n-chug/engine"
	"github.com/lixenwraith/plug-n-chug/event"
	"github.com/lixenwraith/plug-n-chug/parameter"
)

// despawnDrop destroys a drop and tells the simulator to forget its body
func despawnDrop(w *engine.World, drop core.Entity) {
	w.DestroyEntity(drop)
	w.PushEvent(event.EventDropDespawned, &event.EntityPayload{Entity: drop})
}

// removeCup destroys a cup tree including its active order
func removeCup(w *engine.World, cup core.Entity) {
	sensor := core.NoEntity
	if c, ok := w.Components.Cup.GetComponent(cup); ok {
		sensor = c.Sensor
	}
	w.DestroyRecursive(cup)
	w.PushEvent(event.EventCupRemoved, &event.CupRemovedPayload{Cup: cup, Sensor: sensor})
}

// reopenTap marks a tap idle behind the re-open cooldown
func reopenTap(w *engine.World, tapEntity core.Entity) {
	if !w.Components.Tap.HasEntity(tapEntity) {
		return
	}
	w.Components.OpenForOrder.SetComponent(tapEntity, component.OpenForOrderComponent{
		Cooldown: core.NewTimer(parameter.TapReopenCooldown, core.TimerOnce),
	})
}

// cupOfTap returns the cup currently standing under a tap
func cupOfTap(w *engine.World, tapEntity core.Entity) (core.Entity, bool) {
	for _, child := range w.Children(tapEntity) {
		if w.Components.Cup.HasEntity(child) {
			return child, true
		}
	}
	return core.NoEntity, false
}
