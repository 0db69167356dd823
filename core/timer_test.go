package core

import (
	"testing"
	"time"
)

func TestTimerOnceLatches(t *testing.T) {
	timer := NewTimer(250*time.Millisecond, TimerOnce)

	timer.Tick(200 * time.Millisecond)
	if timer.Finished() || timer.JustFinished() {
		t.Fatal("timer finished early")
	}

	timer.Tick(100 * time.Millisecond)
	if !timer.Finished() || !timer.JustFinished() {
		t.Fatal("expected timer to finish on crossing tick")
	}
	if timer.Elapsed() != 250*time.Millisecond {
		t.Errorf("elapsed should clamp to duration, got %v", timer.Elapsed())
	}

	timer.Tick(time.Second)
	if !timer.Finished() {
		t.Error("one-shot timer should stay finished")
	}
	if timer.JustFinished() {
		t.Error("one-shot timer should report JustFinished only once")
	}

	timer.Reset()
	if timer.Finished() || timer.Elapsed() != 0 {
		t.Error("reset should rewind the timer")
	}
}

func TestTimerRepeatingWraps(t *testing.T) {
	timer := NewTimer(200*time.Millisecond, TimerRepeating)

	timer.Tick(150 * time.Millisecond)
	if timer.JustFinished() {
		t.Fatal("fired early")
	}

	timer.Tick(100 * time.Millisecond)
	if !timer.JustFinished() {
		t.Fatal("expected fire on crossing")
	}
	if timer.Elapsed() != 50*time.Millisecond {
		t.Errorf("expected wrapped elapsed 50ms, got %v", timer.Elapsed())
	}

	timer.Tick(10 * time.Millisecond)
	if timer.JustFinished() {
		t.Error("should not fire again without crossing")
	}
}

func TestTimerRepeatingCountsCrossings(t *testing.T) {
	timer := NewTimer(200*time.Millisecond, TimerRepeating)

	timer.Tick(time.Second + 30*time.Millisecond)
	if n := timer.TimesFinished(); n != 5 {
		t.Errorf("crossings = %d, want 5", n)
	}
	if timer.Elapsed() != 30*time.Millisecond {
		t.Errorf("expected wrapped elapsed 30ms, got %v", timer.Elapsed())
	}

	timer.Tick(10 * time.Millisecond)
	if n := timer.TimesFinished(); n != 0 {
		t.Errorf("crossings = %d after a short tick", n)
	}
}

func TestTimerFraction(t *testing.T) {
	timer := NewTimer(60*time.Second, TimerOnce)
	timer.Tick(15 * time.Second)
	if got := timer.Fraction(); got != 0.25 {
		t.Errorf("expected 0.25, got %f", got)
	}
}

func TestColorMixAndLighter(t *testing.T) {
	red := LinearRGB(1, 0, 0)
	blue := LinearRGB(0, 0, 1)

	mixed := red.Mix(blue)
	if mixed.R != 0.5 || mixed.G != 0 || mixed.B != 0.5 {
		t.Errorf("unexpected mix %+v", mixed)
	}

	if same := red.Lighter(0); abs(same.R-1) > 1e-6 || abs(same.G) > 1e-6 {
		t.Errorf("zero lightness change altered color: %+v", same)
	}

	white := red.Lighter(1)
	if white.R < 0.99 || white.G < 0.99 || white.B < 0.99 {
		t.Errorf("full lightness should be white, got %+v", white)
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
