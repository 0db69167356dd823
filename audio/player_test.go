package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/plug-n-chug/core"
	"github.com/lixenwraith/plug-n-chug/parameter"
)

// TestEveryCueGenerates verifies each sound type has a non-empty buffer of the expected length
func TestEveryCueGenerates(t *testing.T) {
	lengths := map[core.SoundType]time.Duration{
		core.SoundPour:     parameter.PourSoundDuration,
		core.SoundCupReady: parameter.CupReadySoundDuration,
		core.SoundServed:   parameter.ServedNote1Duration + parameter.ServedNote2Duration,
		core.SoundFailed:   parameter.FailedSoundDuration,
		core.SoundGameOver: parameter.GameOverSoundDuration,
	}
	for st := core.SoundType(0); st < core.SoundTypeCount; st++ {
		buf := generateSound(st)
		if len(buf) == 0 {
			t.Errorf("cue %d is empty", st)
			continue
		}
		want := durationToSamples(lengths[st].Seconds())
		if d := len(buf) - want; d < -1 || d > 1 {
			t.Errorf("cue %d has %d samples, want %d", st, len(buf), want)
		}
	}
	if generateSound(core.SoundTypeCount) != nil {
		t.Error("unknown cue generated audio")
	}
}

func TestEnvelopeSilencesEdges(t *testing.T) {
	buf := oscillator(waveSquare, 440, 1000)
	applyEnvelope(buf, 0.001, 0.001)
	if buf[0] != 0 {
		t.Errorf("first sample %v, want 0", buf[0])
	}
	if last := buf[len(buf)-1]; last > 0.03 || last < -0.03 {
		t.Errorf("last sample %v not faded", last)
	}
}

func TestBufferStreamerDrainsAndClamps(t *testing.T) {
	s := newBufferStreamer(floatBuffer{0.5, -2, 2}, 1)
	out := make([][2]float64, 2)

	n, ok := s.Stream(out)
	if n != 2 || !ok || out[0][0] != 0.5 || out[1][1] != -1 {
		t.Fatalf("first read n=%d ok=%v %v", n, ok, out)
	}
	n, ok = s.Stream(out)
	if n != 1 || !ok || out[0][0] != 1 {
		t.Fatalf("second read n=%d ok=%v %v", n, ok, out)
	}
	if n, ok = s.Stream(out); n != 0 || ok {
		t.Errorf("drained streamer returned n=%d ok=%v", n, ok)
	}
}

func TestEnqueueThrottlesRepeats(t *testing.T) {
	p := NewPlayer(nil)
	clock := time.Unix(0, 0)
	p.now = func() time.Time { return clock }

	var added []beep.Streamer
	add := func(s beep.Streamer) { added = append(added, s) }

	clock = clock.Add(time.Second)
	if !p.enqueue(core.SoundServed, add) {
		t.Fatal("first play rejected")
	}
	if p.enqueue(core.SoundServed, add) {
		t.Error("repeat inside the gap accepted")
	}
	if !p.enqueue(core.SoundFailed, add) {
		t.Error("different cue throttled")
	}
	clock = clock.Add(parameter.MinSoundGap)
	if !p.enqueue(core.SoundServed, add) {
		t.Error("repeat after the gap rejected")
	}

	if len(added) != 3 {
		t.Errorf("added %d streams", len(added))
	}
	if played, dropped := p.Stats(); played != 3 || dropped != 1 {
		t.Errorf("stats played=%d dropped=%d", played, dropped)
	}
}

// TestPlayWithoutSpeaker verifies the player stays silent until started
func TestPlayWithoutSpeaker(t *testing.T) {
	p := NewPlayer(nil)
	if p.Play(core.SoundServed) {
		t.Error("stopped player reported playback")
	}
	p.Stop()

	if !p.ToggleMute() || !p.IsMuted() {
		t.Error("toggle did not mute")
	}
	if p.ToggleMute() {
		t.Error("second toggle still muted")
	}
}

func TestLoadAudioConfigFromEnv(t *testing.T) {
	t.Setenv("PLUG_N_CHUG_AUDIO_ENABLED", "false")
	t.Setenv("PLUG_N_CHUG_MASTER_VOLUME", "150")
	t.Setenv("PLUG_N_CHUG_SFX_VOLUMES", `{"served": 0.25, "unknown": 9}`)

	cfg := LoadAudioConfig()
	if cfg.Enabled {
		t.Error("audio still enabled")
	}
	if cfg.MasterVolume != 1 {
		t.Errorf("master %v, want clamp to 1", cfg.MasterVolume)
	}
	if cfg.EffectVolumes[core.SoundServed] != 0.25 {
		t.Errorf("served volume %v", cfg.EffectVolumes[core.SoundServed])
	}

	p := NewPlayer(cfg)
	if !p.IsMuted() {
		t.Error("disabled config did not start muted")
	}
}
