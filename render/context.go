package render

import (
	"math"

	"github.com/lixenwraith/plug-n-chug/parameter"
)

// HUDHeight is the number of rows reserved above the bar
const HUDHeight = 2

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	// Screen dimensions (terminal size)
	ScreenWidth  int
	ScreenHeight int

	// Game area below the HUD
	GameY      int
	GameWidth  int
	GameHeight int

	// Clock state
	IsPaused bool
	Scale    float64
	Frame    int64
}

// NewRenderContext lays out the game area for a terminal size
func NewRenderContext(width, height int) RenderContext {
	gameHeight := max(height-HUDHeight, 1)
	return RenderContext{
		ScreenWidth:  width,
		ScreenHeight: height,
		GameY:        HUDHeight,
		GameWidth:    max(width, 1),
		GameHeight:   gameHeight,
		Scale:        1,
	}
}

// WorldToScreen maps world units (origin at center, y up) to a terminal cell
// Returns visible=false when the point falls outside the game area
func (rc *RenderContext) WorldToScreen(wx, wy float64) (int, int, bool) {
	fx := (wx + parameter.WindowWidth/2) / parameter.WindowWidth * float64(rc.GameWidth)
	fy := (parameter.WindowHeight/2 - wy) / parameter.WindowHeight * float64(rc.GameHeight)
	sx := int(math.Floor(fx))
	sy := int(math.Floor(fy))
	visible := sx >= 0 && sx < rc.GameWidth && sy >= 0 && sy < rc.GameHeight
	return sx, sy + rc.GameY, visible
}

// WidthToCells converts a world width to a column count, at least one
func (rc *RenderContext) WidthToCells(w float64) int {
	return max(int(math.Round(w/parameter.WindowWidth*float64(rc.GameWidth))), 1)
}

// HeightToCells converts a world height to a row count, at least one
func (rc *RenderContext) HeightToCells(h float64) int {
	return max(int(math.Round(h/parameter.WindowHeight*float64(rc.GameHeight))), 1)
}

// RectToScreen maps a world box given by center and size to a top-left cell and cell extents
func (rc *RenderContext) RectToScreen(cx, cy, w, h float64) (x, y, cw, ch int) {
	cw = rc.WidthToCells(w)
	ch = rc.HeightToCells(h)
	x, y, _ = rc.WorldToScreen(cx, cy)
	return x - cw/2, y - ch/2, cw, ch
}
