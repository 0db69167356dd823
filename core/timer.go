package core

import "time"

// TimerMode selects one-shot or repeating behavior
type TimerMode uint8

const (
	TimerOnce TimerMode = iota
	TimerRepeating
)

// Timer accumulates elapsed time against a fixed duration
// One-shot timers latch Finished; repeating timers wrap and report JustFinished on each crossing
type Timer struct {
	duration     time.Duration
	elapsed      time.Duration
	mode         TimerMode
	finished     bool
	timesCrossed int
}

// NewTimer creates a stopped-at-zero timer
func NewTimer(d time.Duration, mode TimerMode) Timer {
	return Timer{duration: d, mode: mode}
}

// Tick advances the timer by dt
func (t *Timer) Tick(dt time.Duration) {
	t.timesCrossed = 0

	if t.mode == TimerOnce && t.finished {
		return
	}

	t.elapsed += dt
	if t.elapsed < t.duration {
		if t.mode == TimerRepeating {
			t.finished = false
		}
		return
	}

	t.finished = true
	if t.mode == TimerOnce {
		t.elapsed = t.duration
		t.timesCrossed = 1
		return
	}

	if t.duration <= 0 {
		t.timesCrossed = 1
		t.elapsed = 0
		return
	}
	t.timesCrossed = int(t.elapsed / t.duration)
	t.elapsed %= t.duration
}

// Finished reports whether the timer has reached its duration
func (t *Timer) Finished() bool {
	return t.finished
}

// JustFinished reports whether the last Tick crossed the duration
func (t *Timer) JustFinished() bool {
	return t.timesCrossed > 0
}

// TimesFinished returns how many durations the last Tick crossed, at most 1 for one-shot timers
func (t *Timer) TimesFinished() int {
	return t.timesCrossed
}

// Reset rewinds elapsed time to zero
func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = false
	t.timesCrossed = 0
}

// Elapsed returns accumulated time
func (t *Timer) Elapsed() time.Duration {
	return t.elapsed
}

// Duration returns the configured duration
func (t *Timer) Duration() time.Duration {
	return t.duration
}

// Fraction returns elapsed/duration in [0,1]
func (t *Timer) Fraction() float64 {
	if t.duration <= 0 {
		return 1
	}
	return float64(t.elapsed) / float64(t.duration)
}
