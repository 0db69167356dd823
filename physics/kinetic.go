package physics

// Body is a point mass in world units, y up
type Body struct {
	X, Y   float64
	VelX   float64
	VelY   float64
	AccelY float64
	Radius float64
}

// Integrate performs semi-implicit Euler integration: v = v + a*dt; p = p + v*dt
func Integrate(b *Body, dt float64) {
	b.VelY += b.AccelY * dt
	b.X += b.VelX * dt
	b.Y += b.VelY * dt
}
