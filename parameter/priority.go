package parameter

// System Execution Priorities (lower runs first)
// Controls and tap timers run before dispensing so same-frame routing changes are visible to it
const (
	PriorityControls   = 10
	PriorityTapTimers  = 20
	PriorityDispense   = 30
	PriorityOrderSpawn = 40
	PriorityDifficulty = 45
	PriorityAssignment = 50
	PriorityPhysics    = 55
	PriorityFill       = 60
	PriorityOrderTimer = 65 // Fill and timer sweep both precede level
	PriorityDropCull   = 70
	PriorityLevel      = 80
	PriorityAudio      = 90
)
