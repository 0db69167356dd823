package event

import (
	"github.com/lixenwraith/plug-n-chug/core"
	"github.com/lixenwraith/plug-n-chug/input"
	"github.com/lixenwraith/plug-n-chug/tap"
)

// InputActionPayload carries one control action
type InputActionPayload struct {
	Action input.Action
}

// EntityPayload names a single entity
type EntityPayload struct {
	Entity core.Entity
}

// DropSpawnedPayload describes a projectile in world units
type DropSpawnedPayload struct {
	Entity    core.Entity
	Input     tap.DrinkInput
	Color     core.Color
	X, Y      float64
	VelocityX float64
}

// CupSpawnedPayload describes a fill sensor in world units
type CupSpawnedPayload struct {
	Cup    core.Entity
	Sensor core.Entity
	Input  tap.DrinkInput
	Recipe string
	X, Y   float64
	HalfW  float64
	HalfH  float64
}

// CupRemovedPayload names a destroyed cup and its sensor
type CupRemovedPayload struct {
	Cup    core.Entity
	Sensor core.Entity
}

// SensorMovedPayload carries a sensor's new world y
type SensorMovedPayload struct {
	Sensor core.Entity
	Y      float64
}

// CollisionPayload is a collision-start record between two colliders
type CollisionPayload struct {
	A, B   core.Entity
	Sensor bool
}

// OrderPayload identifies an order outcome
type OrderPayload struct {
	Recipe string
	Size   string
	Input  tap.DrinkInput
	Reason string
}

// SoundRequestPayload contains the sound type to play
type SoundRequestPayload struct {
	SoundType core.SoundType
}
