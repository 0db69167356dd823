package parameter

// Drop simulation
const (
	// Gravity in meters per second squared, scaled to world units by PixelsPerMeter
	Gravity        = 9.81
	PixelsPerMeter = 200.0

	// DropSpawnOffset pushes a new drop out of the nozzle
	DropSpawnOffset = 2.0

	// DropKillY despawns drops that escaped every collider
	DropKillY = -WindowHeight
)
