package render

import (
	"testing"

	"github.com/lixenwraith/plug-n-chug/parameter"
)

func TestWorldToScreenMapsCorners(t *testing.T) {
	ctx := NewRenderContext(80, 42) // 40 game rows

	tests := []struct {
		name    string
		wx, wy  float64
		sx, sy  int
		visible bool
	}{
		{"center", 0, 0, 40, HUDHeight + 20, true},
		{"top left", -parameter.WindowWidth / 2, parameter.WindowHeight / 2, 0, HUDHeight, true},
		{"right edge", parameter.WindowWidth / 2, 0, 80, HUDHeight + 20, false},
		{"below", 0, -parameter.WindowHeight, 40, HUDHeight + 60, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sx, sy, visible := ctx.WorldToScreen(tt.wx, tt.wy)
			if sx != tt.sx || sy != tt.sy || visible != tt.visible {
				t.Errorf("got (%d,%d,%v), want (%d,%d,%v)", sx, sy, visible, tt.sx, tt.sy, tt.visible)
			}
		})
	}
}

func TestSizesNeverCollapse(t *testing.T) {
	ctx := NewRenderContext(80, 42)
	if ctx.WidthToCells(1) != 1 || ctx.HeightToCells(0.1) != 1 {
		t.Error("tiny sizes collapsed to zero")
	}
	if w := ctx.WidthToCells(parameter.WindowWidth / 2); w != 40 {
		t.Errorf("half width %d cells", w)
	}
	x, y, w, h := ctx.RectToScreen(0, 0, 100, 100)
	if w != 10 || h != 10 || x != 35 || y != HUDHeight+15 {
		t.Errorf("rect (%d,%d %dx%d)", x, y, w, h)
	}
}
