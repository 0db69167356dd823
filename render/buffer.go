package render

import "github.com/gdamore/tcell/v2"

// Cell is one terminal character with its colors
type Cell struct {
	Rune rune
	Fg   RGB
	Bg   RGB
}

// RenderBuffer is a compositor backed by a cell array with touch tracking
type RenderBuffer struct {
	cells   []Cell
	touched []bool
	width   int
	height  int
}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
		b.touched = make([]bool, size)
	} else {
		b.cells = b.cells[:size]
		b.touched = b.touched[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to empty using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: ' ', Fg: RgbWhite, Bg: RgbBackground}
	b.touched[0] = false
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
	for filled := 1; filled < len(b.touched); filled *= 2 {
		copy(b.touched[filled:], b.touched[:filled])
	}
}

// Bounds returns buffer dimensions
func (b *RenderBuffer) Bounds() (int, int) {
	return b.width, b.height
}

// inBounds returns true if in screen bounds
func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at x,y, zero cell when out of bounds
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// Touched reports whether anything painted the cell this frame
func (b *RenderBuffer) Touched(x, y int) bool {
	return b.inBounds(x, y) && b.touched[y*b.width+x]
}

// SetWithBg writes a cell with explicit fg and bg colors (opaque replace)
func (b *RenderBuffer) SetWithBg(x, y int, r rune, fg, bg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx] = Cell{Rune: r, Fg: fg, Bg: bg}
	b.touched[idx] = true
}

// SetFgOnly writes rune and foreground while preserving existing background
func (b *RenderBuffer) SetFgOnly(x, y int, r rune, fg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx].Rune = r
	b.cells[idx].Fg = fg
	b.touched[idx] = true
}

// SetBgOnly updates the background color while preserving existing rune/foreground
func (b *RenderBuffer) SetBgOnly(x, y int, bg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx].Bg = bg
	b.touched[idx] = true
}

// BlendBg alpha-blends bg over the existing background
func (b *RenderBuffer) BlendBg(x, y int, bg RGB, alpha float64) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx].Bg = Blend(b.cells[idx].Bg, bg, alpha)
	b.touched[idx] = true
}

// FillRect paints a rectangle background, clipped to the buffer
func (b *RenderBuffer) FillRect(x, y, w, h int, bg RGB) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			b.SetBgOnly(col, row, bg)
		}
	}
}

// SetString writes text left to right and returns the column after the last rune
func (b *RenderBuffer) SetString(x, y int, s string, fg, bg RGB) int {
	for _, r := range s {
		b.SetWithBg(x, y, r, fg, bg)
		x++
	}
	return x
}

// SetStringFg writes text over the existing background
func (b *RenderBuffer) SetStringFg(x, y int, s string, fg RGB) int {
	for _, r := range s {
		b.SetFgOnly(x, y, r, fg)
		x++
	}
	return x
}

// FlushToScreen writes the buffer to a tcell screen and shows it
func (b *RenderBuffer) FlushToScreen(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			style := tcell.StyleDefault.Foreground(ToTcell(c.Fg)).Background(ToTcell(c.Bg))
			screen.SetContent(x, y, c.Rune, nil, style)
		}
	}
	screen.Show()
}
