package renderers

import (
	"github.com/lixenwraith/plug-n-chug/engine"
	"github.com/lixenwraith/plug-n-chug/render"
)

// DropRenderer draws falling drops
type DropRenderer struct{}

// NewDropRenderer creates the drop layer
func NewDropRenderer() *DropRenderer {
	return &DropRenderer{}
}

// Render draws one glyph per drop in its own color
func (r *DropRenderer) Render(ctx render.RenderContext, world *engine.World, buf *render.RenderBuffer) {
	for _, e := range world.Components.Drop.GetAllEntities() {
		d, ok := world.Components.Drop.GetComponent(e)
		if !ok {
			continue
		}
		wx, wy := world.WorldPosition(e)
		x, y, visible := ctx.WorldToScreen(wx, wy)
		if !visible {
			continue
		}
		buf.SetFgOnly(x, y, '●', render.FromColor(d.Color))
	}
}
