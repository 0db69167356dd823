package event

// EventType represents the type of game event
type EventType int

const (
	// === Session Event ===

	// EventGameReset restarts the session with fresh state
	// Trigger: Restart action, host after game over
	// Consumer: every system | Payload: nil
	EventGameReset EventType = iota

	// EventInputAction delivers one logical control action
	// Trigger: Host input goroutine
	// Consumer: ControlsSystem | Payload: *InputActionPayload
	EventInputAction

	// EventGameOver signals the level state entered GameOver
	// Trigger: LevelSystem
	// Consumer: AudioSystem, host | Payload: nil
	EventGameOver

	// === Drop Event ===

	// EventDropSpawned hands a new projectile to the physics collaborator
	// Trigger: DispenseSystem
	// Consumer: Simulation, AudioSystem | Payload: *DropSpawnedPayload
	EventDropSpawned

	// EventDropDespawned removes a projectile from the physics collaborator
	// Trigger: FillSystem, DropCullSystem
	// Consumer: Simulation | Payload: *EntityPayload
	EventDropDespawned

	// === Cup Event ===

	// EventCupSpawned registers a cup's fill sensor with the physics collaborator
	// Trigger: AssignmentSystem
	// Consumer: Simulation, AudioSystem | Payload: *CupSpawnedPayload
	EventCupSpawned

	// EventCupRemoved unregisters a cup's fill sensor
	// Trigger: FillSystem, OrderTimerSystem
	// Consumer: Simulation | Payload: *CupRemovedPayload
	EventCupRemoved

	// EventSensorMoved follows the liquid level after a unit is received
	// Trigger: FillSystem
	// Consumer: Simulation | Payload: *SensorMovedPayload
	EventSensorMoved

	// === Physics Event ===

	// EventCollisionStarted reports two colliders began touching
	// Trigger: Simulation
	// Consumer: FillSystem (sensor), DropCullSystem (solid) | Payload: *CollisionPayload
	EventCollisionStarted

	// === Order Event ===

	// EventOrderSpawned reports a new pending order
	// Trigger: OrderSpawnSystem
	// Consumer: none (logging) | Payload: *OrderPayload
	EventOrderSpawned

	// EventOrderServed reports a completed cup that passed evaluation
	// Trigger: FillSystem
	// Consumer: AudioSystem | Payload: *OrderPayload
	EventOrderServed

	// EventOrderFailed reports a failed cup or an expired countdown
	// Trigger: FillSystem, OrderTimerSystem
	// Consumer: LevelSystem, AudioSystem | Payload: *OrderPayload
	EventOrderFailed

	// === Audio Event ===

	// EventSoundRequest requests audio playback
	// Trigger: Systems requiring audio feedback
	// Consumer: AudioSystem | Payload: *SoundRequestPayload
	EventSoundRequest

	eventTypeCount
)

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
