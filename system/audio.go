package system

import (
	"github.com/lixenwraith/plug-n-chug/core"
	"github.com/lixenwraith/plug-n-chug/engine"
	"github.com/lixenwraith/plug-n-chug/event"
	"github.com/lixenwraith/plug-n-chug/parameter"
)

// AudioSystem maps game events to sound cues
// Decouples game systems from direct audio engine access
type AudioSystem struct {
	world *engine.World

	enabled bool
}

// NewAudioSystem creates an audio system, the player in resources may be nil if audio is disabled
func NewAudioSystem(world *engine.World) engine.System {
	s := &AudioSystem{world: world}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *AudioSystem) Init() {
	s.enabled = true
}

// Name returns system's name
func (s *AudioSystem) Name() string {
	return "audio"
}

// Priority returns the system's priority
func (s *AudioSystem) Priority() int {
	return parameter.PriorityAudio
}

// EventTypes returns the event types AudioSystem handles
func (s *AudioSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
		event.EventDropSpawned,
		event.EventOrderServed,
		event.EventOrderFailed,
		event.EventSoundRequest,
	}
}

// HandleEvent processes sound-bearing events
func (s *AudioSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
		return
	}

	if !s.enabled {
		return
	}

	var player engine.AudioPlayer
	if s.world.Resources.Audio != nil {
		player = s.world.Resources.Audio.Player
	}
	if player == nil {
		return
	}

	switch ev.Type {
	case event.EventDropSpawned:
		player.Play(core.SoundPour)
	case event.EventOrderServed:
		player.Play(core.SoundServed)
	case event.EventOrderFailed:
		player.Play(core.SoundFailed)
	case event.EventSoundRequest:
		if payload, ok := ev.Payload.(*event.SoundRequestPayload); ok {
			player.Play(payload.SoundType)
		}
	}
}

// Update implements System interface (no tick-based logic)
func (s *AudioSystem) Update() {}
