package renderers

import (
	"github.com/lixenwraith/plug-n-chug/core"
	"github.com/lixenwraith/plug-n-chug/engine"
	"github.com/lixenwraith/plug-n-chug/render"
)

// CupRenderer draws every cup tree: body, fill, dividers, handle, timer and label
type CupRenderer struct{}

// NewCupRenderer creates the cup layer
func NewCupRenderer() *CupRenderer {
	return &CupRenderer{}
}

// Render draws cups bottom-up so fill segments sit above the cup body
func (r *CupRenderer) Render(ctx render.RenderContext, world *engine.World, buf *render.RenderBuffer) {
	for _, cup := range world.Components.Cup.GetAllEntities() {
		c, ok := world.Components.Cup.GetComponent(cup)
		if !ok {
			continue
		}
		l := c.Layout
		cx, cy := world.WorldPosition(cup)

		x, y, w, h := ctx.RectToScreen(cx, cy, l.Width, l.Height)
		buf.FillRect(x, y, w, h, render.RgbCupOutline)
		ix, iy, iw, _ := ctx.RectToScreen(cx, cy, l.InnerWidth, l.Height)
		bottomRows := ctx.HeightToCells(l.Bottom)
		buf.FillRect(ix, iy, iw, h-bottomRows, render.RgbCupInside)

		for _, child := range world.Children(cup) {
			r.renderChild(ctx, world, buf, child)
		}
	}
}

func (r *CupRenderer) renderChild(ctx render.RenderContext, world *engine.World, buf *render.RenderBuffer, e core.Entity) {
	wx, wy := world.WorldPosition(e)

	if seg, ok := world.Components.FillSegment.GetComponent(e); ok {
		x, y, w, h := ctx.RectToScreen(wx, wy, seg.Width, seg.Height)
		buf.FillRect(x, y, w, h, render.FromColor(seg.Color))
		return
	}

	if d, ok := world.Components.Divider.GetComponent(e); ok {
		x, y, _ := ctx.WorldToScreen(wx, wy)
		w := ctx.WidthToCells(d.Width)
		for col := x - w/2; col < x-w/2+w; col++ {
			buf.SetFgOnly(col, y, '─', render.FromColor(d.Color))
		}
		return
	}

	if hd, ok := world.Components.Handle.GetComponent(e); ok {
		x, y, _ := ctx.WorldToScreen(wx, wy)
		rows := ctx.HeightToCells(hd.Height)
		for row := y - rows/2; row < y-rows/2+rows; row++ {
			buf.SetFgOnly(x, row, '│', render.RgbCupOutline)
		}
		return
	}

	if sb, ok := world.Components.StatusBar.GetComponent(e); ok {
		x, y, _ := ctx.WorldToScreen(wx, wy)
		w := ctx.WidthToCells(sb.Width)
		left := x - w/2
		filled := int(sb.Percent*float64(w) + 0.5)
		buf.FillRect(left, y, w, 1, render.RgbTimerTrack)
		buf.FillRect(left, y, filled, 1, render.TimerColor(sb.Percent))
		return
	}

	if lb, ok := world.Components.Label.GetComponent(e); ok {
		x, y, _ := ctx.WorldToScreen(wx, wy)
		buf.SetStringFg(x-len([]rune(lb.Text))/2, y, lb.Text, render.RgbLabel)
	}
}
