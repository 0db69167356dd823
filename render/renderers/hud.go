package renderers

import (
	"fmt"

	"github.com/lixenwraith/plug-n-chug/engine"
	"github.com/lixenwraith/plug-n-chug/parameter"
	"github.com/lixenwraith/plug-n-chug/render"
	"github.com/lixenwraith/plug-n-chug/status"
	"github.com/lixenwraith/plug-n-chug/tap"
)

// HUDRenderer draws the routing table, selection, failures and session metrics
type HUDRenderer struct {
	showMetrics bool
}

// NewHUDRenderer creates the HUD, metrics adds the status summary line
func NewHUDRenderer(metrics bool) *HUDRenderer {
	return &HUDRenderer{showMetrics: metrics}
}

// Render draws two rows: outputs with their routes, then failures and clock
func (r *HUDRenderer) Render(ctx render.RenderContext, world *engine.World, buf *render.RenderBuffer) {
	res := world.Resources
	buf.FillRect(0, 0, ctx.ScreenWidth, render.HUDHeight, render.RgbStatusBg)

	selected, hasSelected := res.Controls.Selected()
	x := 0
	for i, o := range tap.Outputs {
		out := res.Tap.Output(o)
		text := fmt.Sprintf(" %d:%s>%s", i+1, o, routingLabel(res.Tap, o))
		if out.On {
			text += "*"
		}
		if o == tap.OutputMixer1 || o == tap.OutputMixer2 {
			text += fmt.Sprintf("(%d", out.Queued())
			if out.Mixer.BlendOn {
				text += "b"
			}
			text += ")"
		}
		text += " "

		bg := render.RgbStatusBg
		if hasSelected && o == selected {
			bg = render.RgbSelectedBg
		}
		start := x
		x = buf.SetString(x, 0, text, render.RgbStatusText, bg)
		if c, ok := previewColor(out); ok {
			buf.SetFgOnly(start, 0, '■', render.FromColor(c))
		}
	}

	// Failures
	x = buf.SetString(0, 1, " Failed ", render.RgbStatusText, render.RgbStatusBg)
	failures := res.Level.State.Failures()
	for i := 0; i < parameter.FailedOrderLimit; i++ {
		box, fg := "[ ]", render.RgbEmptyBox
		if i < failures {
			box, fg = "[x]", render.RgbFailedBox
		}
		x = buf.SetString(x, 1, box, fg, render.RgbStatusBg)
	}

	clock := fmt.Sprintf(" x%.2g ", ctx.Scale)
	bg := render.RgbStatusBg
	if ctx.IsPaused {
		clock = " PAUSED "
		bg = render.RgbPausedBg
	}
	x = buf.SetString(x+1, 1, clock, render.ContrastText(bg), bg)

	if r.showMetrics {
		summary := res.Status.Summary()
		if room := ctx.ScreenWidth - x - 1; room > 0 && len(summary) > room {
			summary = summary[:room]
		}
		buf.SetString(x+1, 1, summary, render.RgbStatusText, render.RgbStatusBg)
	}
}

// GameOverRenderer draws a centered banner once the session ends
type GameOverRenderer struct {
	world *engine.World
}

// NewGameOverRenderer creates the game over overlay
func NewGameOverRenderer(world *engine.World) *GameOverRenderer {
	return &GameOverRenderer{world: world}
}

// IsVisible reports whether the session has ended
func (r *GameOverRenderer) IsVisible() bool {
	return r.world.Resources.Level.State.IsGameOver()
}

// Render draws the banner with the served count
func (r *GameOverRenderer) Render(ctx render.RenderContext, world *engine.World, buf *render.RenderBuffer) {
	served := world.Resources.Status.Ints.Get(status.KeyOrdersServed).Load()
	lines := []string{
		"GAME OVER",
		fmt.Sprintf("orders served: %d", served),
		"r restart  q quit",
	}

	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	width += 4
	height := len(lines) + 2
	left := (ctx.ScreenWidth - width) / 2
	top := ctx.GameY + (ctx.GameHeight-height)/2

	buf.FillRect(left, top, width, height, render.RgbOverlayBg)
	for i, l := range lines {
		buf.SetString(left+(width-len(l))/2, top+1+i, l, render.RgbOverlayText, render.RgbOverlayBg)
	}
}
