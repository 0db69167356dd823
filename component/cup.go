package component

import (
	"github.com/lixenwraith/plug-n-chug/core"
	"github.com/lixenwraith/plug-n-chug/order"
	"github.com/lixenwraith/plug-n-chug/tap"
)

// CupComponent is the physical cup under a tap
type CupComponent struct {
	Layout order.CupLayout
	Input  tap.DrinkInput
	Sensor core.Entity
	Bar    core.Entity
}

// HandleComponent is the cup handle visual
type HandleComponent struct {
	Width, Height float64
}

// DividerComponent is a section boundary line inside a cup
type DividerComponent struct {
	Width float64
	Color core.Color
}

// FillSensorComponent is the sensor collider that detects incoming drops
type FillSensorComponent struct {
	HalfWidth  float64
	HalfHeight float64
}

// FillSegmentComponent is one received unit stacked inside a cup
type FillSegmentComponent struct {
	Color         core.Color
	Width, Height float64
}

// StatusBarComponent shows the remaining order time
type StatusBarComponent struct {
	Percent float64 // 1 at assignment, 0 at expiry
	Width   float64
}

// LabelComponent is the recipe name under a cup
type LabelComponent struct {
	Text string
}
