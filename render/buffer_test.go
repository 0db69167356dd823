package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestBufferClipsAndTracksTouch(t *testing.T) {
	b := NewRenderBuffer(4, 3)
	b.SetWithBg(-1, 0, 'x', RgbWhite, RgbBlack)
	b.SetWithBg(4, 0, 'x', RgbWhite, RgbBlack)
	b.SetWithBg(1, 1, 'a', RgbWhite, RgbBlack)

	if !b.Touched(1, 1) || b.Touched(0, 0) {
		t.Error("touch tracking wrong")
	}
	if c := b.Get(1, 1); c.Rune != 'a' || c.Bg != RgbBlack {
		t.Errorf("cell %+v", c)
	}

	b.SetFgOnly(1, 1, 'b', RgbTap)
	if c := b.Get(1, 1); c.Rune != 'b' || c.Bg != RgbBlack || c.Fg != RgbTap {
		t.Errorf("fg-only lost background: %+v", c)
	}

	b.Clear()
	if b.Touched(1, 1) || b.Get(1, 1).Bg != RgbBackground {
		t.Error("clear left state behind")
	}
}

func TestBufferResizeReusesCapacity(t *testing.T) {
	b := NewRenderBuffer(10, 10)
	b.Resize(3, 2)
	if w, h := b.Bounds(); w != 3 || h != 2 {
		t.Errorf("bounds %dx%d", w, h)
	}
	b.FillRect(0, 0, 10, 10, RgbBarTable)
	if b.Get(2, 1).Bg != RgbBarTable {
		t.Error("fill did not reach the corner")
	}
}

func TestSetStringReturnsNextColumn(t *testing.T) {
	b := NewRenderBuffer(10, 1)
	if x := b.SetString(2, 0, "héllo", RgbWhite, RgbBlack); x != 7 {
		t.Errorf("next column %d, want 7", x)
	}
	if b.Get(3, 0).Rune != 'é' {
		t.Errorf("rune %q", b.Get(3, 0).Rune)
	}
}

func TestFlushToSimulationScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	screen.SetSize(4, 2)

	b := NewRenderBuffer(4, 2)
	b.SetWithBg(2, 1, 'Z', RgbWhite, RgbBarTable)
	b.FlushToScreen(screen)

	r, _, style, _ := screen.GetContent(2, 1)
	if r != 'Z' {
		t.Fatalf("rune %q", r)
	}
	_, bg, _ := style.Decompose()
	if bg != ToTcell(RgbBarTable) {
		t.Errorf("background %v", bg)
	}
}

func TestBlendEndpoints(t *testing.T) {
	a, b := RGB{0, 0, 0}, RGB{200, 100, 50}
	if Blend(a, b, 0) != a || Blend(a, b, 1) != b {
		t.Error("blend endpoints wrong")
	}
	if m := Blend(a, b, 0.5); m != (RGB{100, 50, 25}) {
		t.Errorf("midpoint %v", m)
	}
	if ContrastText(RgbWhite) != RgbBlack || ContrastText(RgbBlack) != RgbWhite {
		t.Error("contrast text wrong")
	}
}
