package engine

import (
	"testing"
	"time"
)

func TestVirtualClock(t *testing.T) {
	c := NewVirtualClock()

	d, v := c.Advance(16 * time.Millisecond)
	if d != 16*time.Millisecond || v != 16*time.Millisecond {
		t.Errorf("unscaled advance %v %v", d, v)
	}

	c.SetScale(2)
	if _, v := c.Advance(10 * time.Millisecond); v != 20*time.Millisecond {
		t.Errorf("scaled virtual delta %v", v)
	}

	if !c.TogglePause() {
		t.Fatal("toggle should pause")
	}
	if d, v := c.Advance(time.Second); d != 0 || v != 0 {
		t.Errorf("paused clock advanced %v %v", d, v)
	}
	c.Resume()
	if c.IsPaused() {
		t.Error("resume failed")
	}
}

func TestVirtualClockScaleClamped(t *testing.T) {
	c := NewVirtualClock()
	if got := c.SetScale(100); got != MaxClockScale {
		t.Errorf("scale %v, want %v", got, MaxClockScale)
	}
	if got := c.SetScale(0); got != MinClockScale {
		t.Errorf("scale %v, want %v", got, MinClockScale)
	}
}
