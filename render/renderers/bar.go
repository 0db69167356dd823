// Package renderers holds the layers that draw the bar, its cups and the HUD.
package renderers

import (
	"github.com/lixenwraith/plug-n-chug/engine"
	"github.com/lixenwraith/plug-n-chug/render"
	"github.com/lixenwraith/plug-n-chug/tap"
)

// BarRenderer draws the bar table and the tap nozzles
type BarRenderer struct{}

// NewBarRenderer creates the bar layer
func NewBarRenderer() *BarRenderer {
	return &BarRenderer{}
}

// Render draws the table surface then one nozzle per tap with its routed source beneath
func (r *BarRenderer) Render(ctx render.RenderContext, world *engine.World, buf *render.RenderBuffer) {
	for _, e := range world.Components.BarTable.GetAllEntities() {
		bt, ok := world.Components.BarTable.GetComponent(e)
		if !ok {
			continue
		}
		cx, cy := world.WorldPosition(e)
		x, y, w, h := ctx.RectToScreen(cx, cy, bt.HalfWidth*2, bt.HalfHeight*2)
		buf.FillRect(x, y, w, h, render.RgbBarTable)
		for col := x; col < x+w; col++ {
			buf.SetWithBg(col, y, '▀', render.RgbBarTableTop, render.RgbBarTable)
		}
	}

	state := world.Resources.Tap
	for _, e := range world.Components.Tap.GetAllEntities() {
		t, ok := world.Components.Tap.GetComponent(e)
		if !ok {
			continue
		}
		wx, wy := world.WorldPosition(e)
		sx, sy, _ := ctx.WorldToScreen(wx, wy)

		fg := render.RgbTapIdle
		if out := state.OutputFor(t.Input); out != nil {
			fg = render.RgbTap
			if c, ok := previewColor(out); ok {
				buf.SetFgOnly(sx, sy+1, '▾', render.FromColor(c))
			}
		}
		buf.SetFgOnly(sx, sy, '┳', fg)

		label := t.Input.String()
		if src, ok := state.SourceOf(t.Input); ok {
			label += "<" + src.String()
		}
		buf.SetStringFg(sx-len(label)/2, sy-1, label, fg)
	}
}

// routingLabel names the input an output feeds
func routingLabel(state *tap.State, o tap.DrinkOutput) string {
	in, ok := state.Connection(o)
	if !ok {
		return "-"
	}
	return in.String()
}
