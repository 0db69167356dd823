package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/lixenwraith/plug-n-chug/core"
	"github.com/lixenwraith/plug-n-chug/parameter"
)

// effectNames maps the volume document keys to cues
var effectNames = map[string]core.SoundType{
	"pour":      core.SoundPour,
	"cup_ready": core.SoundCupReady,
	"served":    core.SoundServed,
	"failed":    core.SoundFailed,
	"game_over": core.SoundGameOver,
}

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	EffectVolumes [core.SoundTypeCount]float64
}

// DefaultAudioConfig returns enabled audio at default volume with every cue at unity
func DefaultAudioConfig() *AudioConfig {
	cfg := &AudioConfig{
		Enabled:      true,
		MasterVolume: parameter.DefaultMasterVolume,
	}
	for i := range cfg.EffectVolumes {
		cfg.EffectVolumes[i] = 1.0
	}
	// Pours fire five times a second per tap
	cfg.EffectVolumes[core.SoundPour] = 0.3
	return cfg
}

// LoadAudioConfig loads audio configuration from environment variables
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	if enabled := os.Getenv("PLUG_N_CHUG_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Load master volume (0-100 converted to 0.0-1.0)
	if volume := os.Getenv("PLUG_N_CHUG_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = min(max(float64(val)/100.0, 0), 1)
		}
	}

	// Load effect volumes from JSON
	if effectVols := os.Getenv("PLUG_N_CHUG_SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for name, v := range volumes {
				if st, ok := effectNames[name]; ok {
					cfg.EffectVolumes[st] = v
				}
			}
		}
	}

	return cfg
}
