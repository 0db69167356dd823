package parameter

import "time"

// Taps & Outputs
const (
	// DispenseInterval gates drop emission globally to rate-limit pour volume
	DispenseInterval = 200 * time.Millisecond

	// PressDebounce is the one-shot delay before a pending manual press is consumable
	PressDebounce = 250 * time.Millisecond

	// MaxPendingPresses saturates queued manual pours per output
	MaxPendingPresses = 2

	// MixerCapacity bounds the blend queue of a mixer output
	MixerCapacity = 64

	// LightnessStep is the adjustment applied per lighter/darker action
	LightnessStep = 0.1
)

// Base hues of the color outputs (HSL degrees, full saturation, half lightness)
const (
	HueColor1 = 0.0   // red
	HueColor2 = 232.0 // blue
	HueColor3 = 65.0  // yellow

	BaseSaturation = 1.0
	BaseLightness  = 0.5
)

// Drop physics handed to the collision collaborator
const (
	DropRadius       = 2.0
	DropGravityScale = 0.4
	DropJitterX      = 10.0 // Lateral velocity uniform in [-DropJitterX, DropJitterX)
)
