package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// MinSoundGap between consecutive plays of the same cue
	MinSoundGap = 50 * time.Millisecond

	// DefaultMasterVolume is the output gain applied to every cue
	DefaultMasterVolume = 0.5
)

// Pour Sound
const (
	PourSoundDuration = 40 * time.Millisecond
	PourSoundAttack   = 2 * time.Millisecond
	PourSoundRelease  = 30 * time.Millisecond
	PourSoundFreq     = 1400.0
)

// Cup Ready Sound
const (
	CupReadySoundDuration = 120 * time.Millisecond
	CupReadySoundAttack   = 5 * time.Millisecond
	CupReadySoundRelease  = 60 * time.Millisecond
)

// Served Sound
const (
	ServedNote1Duration = 80 * time.Millisecond
	ServedNote2Duration = 280 * time.Millisecond
	ServedSoundAttack   = 5 * time.Millisecond
	ServedNote1Release  = 40 * time.Millisecond
	ServedNote2Release  = 200 * time.Millisecond
)

// Failed Sound
const (
	FailedSoundDuration = 180 * time.Millisecond
	FailedSoundAttack   = 5 * time.Millisecond
	FailedSoundRelease  = 60 * time.Millisecond
)

// Game Over Sound
const (
	GameOverSoundDuration           = 900 * time.Millisecond
	GameOverSoundAttack             = 5 * time.Millisecond
	GameOverSoundFundamentalRelease = 800 * time.Millisecond
	GameOverSoundOvertoneRelease    = 300 * time.Millisecond
)
