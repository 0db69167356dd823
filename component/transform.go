package component

import "github.com/lixenwraith/plug-n-chug/core"

// TransformComponent is a position in world units relative to the parent, or to the world origin when unparented
type TransformComponent struct {
	X, Y float64
}

// ParentComponent links a child entity to its owner
// Destroying the owner destroys every descendant
type ParentComponent struct {
	Parent core.Entity
}
