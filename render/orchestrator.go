// Package render composes the world into a cell buffer and flushes it to a tcell screen.
package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/plug-n-chug/engine"
)

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// RenderOrchestrator coordinates the render pipeline
type RenderOrchestrator struct {
	screen    tcell.Screen
	buffer    *RenderBuffer
	renderers []rendererEntry
	regCount  int
}

// NewRenderOrchestrator creates an orchestrator drawing to screen
func NewRenderOrchestrator(screen tcell.Screen) *RenderOrchestrator {
	w, h := screen.Size()
	return &RenderOrchestrator{
		screen:    screen,
		buffer:    NewRenderBuffer(w, h),
		renderers: make([]rendererEntry, 0, 8),
	}
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *RenderOrchestrator) Register(r SystemRenderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Resize updates buffer dimensions and syncs the screen
func (o *RenderOrchestrator) Resize(width, height int) {
	o.buffer.Resize(width, height)
	o.screen.Sync()
}

// Context builds the frame context from the current screen size and clock
func (o *RenderOrchestrator) Context(world *engine.World) RenderContext {
	w, h := o.buffer.Bounds()
	ctx := NewRenderContext(w, h)
	res := world.Resources
	ctx.IsPaused = res.Clock.IsPaused()
	ctx.Scale = res.Clock.Scale()
	ctx.Frame = res.Time.FrameNumber
	return ctx
}

// Compose runs every visible renderer into the buffer without touching the screen
func (o *RenderOrchestrator) Compose(ctx RenderContext, world *engine.World) *RenderBuffer {
	o.buffer.Clear()
	for _, entry := range o.renderers {
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.renderer.Render(ctx, world, o.buffer)
	}
	return o.buffer
}

// RenderFrame executes the render pipeline: clear, render all, flush, show
func (o *RenderOrchestrator) RenderFrame(world *engine.World) {
	o.Compose(o.Context(world), world).FlushToScreen(o.screen)
}
