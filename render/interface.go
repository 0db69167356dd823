package render

import "github.com/lixenwraith/plug-n-chug/engine"

// SystemRenderer draws one layer of the world
type SystemRenderer interface {
	Render(ctx RenderContext, world *engine.World, buf *RenderBuffer)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}
