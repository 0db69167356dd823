package component

import (
	"github.com/lixenwraith/plug-n-chug/core"
	"github.com/lixenwraith/plug-n-chug/tap"
)

// TapComponent marks a pour point entity
type TapComponent struct {
	Input tap.DrinkInput
}

// OpenForOrderComponent marks an idle tap counting down its re-open cooldown
// A tap holds either this or a cup child, never both
type OpenForOrderComponent struct {
	Cooldown core.Timer
}

// DropComponent is a falling unit of liquid
type DropComponent struct {
	Color core.Color
	Input tap.DrinkInput
}

// BarTableComponent is the solid surface that catches spilled drops
type BarTableComponent struct {
	HalfWidth  float64
	HalfHeight float64
}
