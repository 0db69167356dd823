package physics

// AABB is an axis-aligned box given by center and half extents
type AABB struct {
	X, Y       float64
	HalfWidth  float64
	HalfHeight float64
}

// CircleOverlapsAABB reports whether a circle touches or intersects a box
func CircleOverlapsAABB(cx, cy, r float64, box AABB) bool {
	nx := clamp(cx, box.X-box.HalfWidth, box.X+box.HalfWidth)
	ny := clamp(cy, box.Y-box.HalfHeight, box.Y+box.HalfHeight)
	dx := cx - nx
	dy := cy - ny
	return dx*dx+dy*dy <= r*r
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
