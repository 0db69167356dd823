package core

// SoundType represents different sound cues
type SoundType int

const (
	SoundPour     SoundType = iota // Drop leaves a tap
	SoundCupReady                  // Cup placed under a tap
	SoundServed                    // Order passed
	SoundFailed                    // Order failed or timed out
	SoundGameOver                  // Session ended
	SoundTypeCount
)
