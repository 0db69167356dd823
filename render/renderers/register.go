package renderers

import (
	"github.com/lixenwraith/plug-n-chug/engine"
	"github.com/lixenwraith/plug-n-chug/render"
)

// Register adds every game layer to the orchestrator
func Register(o *render.RenderOrchestrator, world *engine.World, metrics bool) {
	o.Register(NewBarRenderer(), render.PriorityBar)
	o.Register(NewCupRenderer(), render.PriorityCups)
	o.Register(NewDropRenderer(), render.PriorityDrops)
	o.Register(NewHUDRenderer(metrics), render.PriorityUI)
	o.Register(NewGameOverRenderer(world), render.PriorityOverlay)
}
