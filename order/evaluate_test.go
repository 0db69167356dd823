package order

import (
	"testing"

	"github.com/lixenwraith/plug-n-chug/core"
)

var (
	red  = core.LinearRGB(1, 0, 0)
	blue = core.LinearRGB(0, 0, 1)
	// offRed is outside ColorRange of red on the red channel
	offRed = core.LinearRGB(30, 0, 0)
)

func redBlueRecipe() *Recipe {
	return &Recipe{
		Name: "Red over Blue",
		Sections: []Section{
			{Color: red, Size: 2},
			{Color: blue, Size: 3},
		},
	}
}

func fill(n int, c core.Color) []core.Color {
	out := make([]core.Color, n)
	for i := range out {
		out[i] = c
	}
	return out
}

func TestTotalUnitsScalesByCupSize(t *testing.T) {
	r := redBlueRecipe()
	tests := []struct {
		size CupSize
		want int
	}{
		{Small, 5},
		{Medium, 10},
		{Large, 20},
	}
	for _, tt := range tests {
		if got := r.TotalUnits(tt.size); got != tt.want {
			t.Errorf("%v: got %d, want %d", tt.size, got, tt.want)
		}
	}
}

func TestIsCupFailed(t *testing.T) {
	r := redBlueRecipe()

	perfect := append(fill(4, red), fill(6, blue)...)

	twoDefects := append([]core.Color{}, perfect...)
	twoDefects[0] = offRed
	twoDefects[3] = offRed

	// Blue section is six units at Medium; five off-range colors exceed the budget
	fiveDefects := append([]core.Color{}, perfect...)
	for i := 4; i < 9; i++ {
		fiveDefects[i] = offRed
	}

	fourDefects := append([]core.Color{}, perfect...)
	for i := 4; i < 8; i++ {
		fourDefects[i] = offRed
	}

	tests := []struct {
		name     string
		received []core.Color
		size     CupSize
		want     bool
	}{
		{"all within tolerance", perfect, Medium, false},
		{"truncated", perfect[:6], Medium, true},
		{"empty", nil, Medium, true},
		{"two defects in first section", twoDefects, Medium, false},
		{"four defects at budget", fourDefects, Medium, false},
		{"five defects over budget", fiveDefects, Medium, true},
		{"overflow tail ignored", append(append([]core.Color{}, perfect...), offRed, offRed), Medium, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCupFailed(r.Sections, tt.received, tt.size); got != tt.want {
				t.Errorf("IsCupFailed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsCupFailedLargeSection(t *testing.T) {
	r := redBlueRecipe()
	received := append(fill(8, red), fill(12, blue)...)
	for i := 0; i < 5; i++ {
		received[i] = offRed
	}
	if !IsCupFailed(r.Sections, received, Large) {
		t.Error("five defects in an eight unit section should fail")
	}
}

// TestColorEqualChannelConvention pins the current matching convention:
// only the red channel is compared against the template
func TestColorEqualChannelConvention(t *testing.T) {
	template := core.LinearRGB(0, 0, 0)

	if !ColorEqual(template, core.LinearRGB(0, 500, -500), 20) {
		t.Error("blue and green are compared against the received color itself and always match")
	}
	if ColorEqual(template, core.LinearRGB(21, 0, 0), 20) {
		t.Error("red outside range must not match")
	}
	if !ColorEqual(template, core.LinearRGB(-20, 0, 0), 20) {
		t.Error("range bounds are inclusive")
	}
}

func TestOrderLifecycle(t *testing.T) {
	o := New(redBlueRecipe(), Small, 0)
	if o.RequiredUnits() != 5 {
		t.Fatalf("unexpected required units %d", o.RequiredUnits())
	}
	for i := 0; i < 5; i++ {
		if o.IsFull() {
			t.Fatalf("full after %d units", i)
		}
		if i < 2 {
			o.Receive(red)
		} else {
			o.Receive(blue)
		}
	}
	if !o.IsFull() {
		t.Error("order should be full")
	}
	if o.Failed() {
		t.Error("correct pour should pass")
	}
}
