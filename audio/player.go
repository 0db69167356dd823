// Package audio synthesizes the bar's sound cues and plays them through the system speaker.
// Playback degrades to silence when no output device can be opened.
package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/plug-n-chug/core"
	"github.com/lixenwraith/plug-n-chug/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// Player mixes cue buffers into a single speaker stream
type Player struct {
	mu     sync.Mutex
	config *AudioConfig
	cache  *soundCache
	mixer  *beep.Mixer

	lastPlayed [core.SoundTypeCount]time.Time
	now        func() time.Time

	running atomic.Bool
	muted   atomic.Bool
	played  atomic.Uint64
	dropped atomic.Uint64
}

// NewPlayer creates a stopped player, cfg may be nil for defaults
func NewPlayer(cfg *AudioConfig) *Player {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	p := &Player{
		config: cfg,
		cache:  newSoundCache(),
		mixer:  &beep.Mixer{},
		now:    time.Now,
	}
	p.muted.Store(!cfg.Enabled)
	p.cache.preload()
	return p
}

// Start opens the speaker and attaches the mixer
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running.Load() {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.running.Store(true)
	return nil
}

// Stop silences all active cues
func (p *Player) Stop() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
}

// Play queues a cue, returns false when silent, muted or throttled
func (p *Player) Play(st core.SoundType) bool {
	if !p.running.Load() || p.muted.Load() {
		return false
	}
	return p.enqueue(st, func(s beep.Streamer) {
		speaker.Lock()
		p.mixer.Add(s)
		speaker.Unlock()
	})
}

// enqueue throttles repeats of a cue and hands the gain-scaled stream to add
func (p *Player) enqueue(st core.SoundType, add func(beep.Streamer)) bool {
	buf := p.cache.get(st)
	if buf == nil {
		return false
	}

	p.mu.Lock()
	now := p.now()
	if now.Sub(p.lastPlayed[st]) < parameter.MinSoundGap {
		p.mu.Unlock()
		p.dropped.Add(1)
		return false
	}
	p.lastPlayed[st] = now
	gain := p.config.MasterVolume * p.config.EffectVolumes[st]
	p.mu.Unlock()

	add(newBufferStreamer(buf, gain))
	p.played.Add(1)
	return true
}

// ToggleMute toggles mute state, returns true if now muted
func (p *Player) ToggleMute() bool {
	muted := !p.muted.Load()
	p.muted.Store(muted)
	return muted
}

// IsMuted returns current mute state
func (p *Player) IsMuted() bool {
	return p.muted.Load()
}

// IsRunning returns true if the speaker was opened
func (p *Player) IsRunning() bool {
	return p.running.Load()
}

// SetVolume updates master volume (0.0-1.0)
func (p *Player) SetVolume(vol float64) {
	p.mu.Lock()
	p.config.MasterVolume = min(max(vol, 0), 1)
	p.mu.Unlock()
}

// Stats returns played and throttled counts
func (p *Player) Stats() (played, dropped uint64) {
	return p.played.Load(), p.dropped.Load()
}
