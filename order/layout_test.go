package order

import (
	"math"
	"testing"
)

func testCupConfig() *CupConfig {
	return &CupConfig{
		CupSmallWidth:       40,
		CupSmallInnerWidth:  32,
		CupMediumWidth:      56,
		CupMediumInnerWidth: 48,
		CupLargeWidth:       72,
		CupLargeInnerWidth:  64,
		CupHeight:           100,
		CupBottomThickness:  6,
		HandleWidth:         10,
		StatusBarWidth:      50,
	}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNewCupLayout(t *testing.T) {
	l := NewCupLayout(testCupConfig(), redBlueRecipe(), Medium)

	checks := []struct {
		name      string
		got, want float64
	}{
		{"width", l.Width, 56},
		{"inner", l.InnerWidth, 48},
		{"section height", l.SectionHeight, 9.4},
		{"center y", l.CenterY, -37.5},
		{"handle x", l.HandleX, 30},
		{"label y", l.LabelY, -75},
		{"bar y", l.BarY, -100},
		{"sensor half width", l.SensorHalfWidth, 24},
		{"sensor half height", l.SensorHalfHeight, 10.7},
		{"sensor y", l.SensorY, -50},
	}
	for _, c := range checks {
		if !approx(c.got, c.want) {
			t.Errorf("%s: got %v, want %v", c.name, c.got, c.want)
		}
	}

	if l.TotalUnits != 10 {
		t.Errorf("total units %d", l.TotalUnits)
	}
	if len(l.Dividers) != 1 || !approx(l.Dividers[0], -4) {
		t.Errorf("dividers %v, want [-4]", l.Dividers)
	}
}

func TestFillYStacksUpward(t *testing.T) {
	l := NewCupLayout(testCupConfig(), redBlueRecipe(), Medium)
	if !approx(l.FillY(0), -41) {
		t.Errorf("first segment at %v", l.FillY(0))
	}
	for n := 1; n < l.TotalUnits; n++ {
		if !approx(l.FillY(n)-l.FillY(n-1), l.SectionHeight) {
			t.Fatalf("segment %d not stacked by one section height", n)
		}
	}
}

func TestSingleSectionHasNoDividers(t *testing.T) {
	r := &Recipe{Name: "Solo", Sections: []Section{{Color: red, Size: 3}}}
	if l := NewCupLayout(testCupConfig(), r, Large); len(l.Dividers) != 0 {
		t.Errorf("unexpected dividers %v", l.Dividers)
	}
}
