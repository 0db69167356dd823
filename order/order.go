package order

import (
	"time"

	"github.com/lixenwraith/plug-n-chug/core"
)

// Order is a drink being poured against a countdown
type Order struct {
	Recipe    *Recipe
	Received  []core.Color
	Remaining core.Timer
	Size      CupSize
}

// New creates an order with an empty cup and a fresh one-shot countdown
func New(recipe *Recipe, size CupSize, budget time.Duration) Order {
	return Order{
		Recipe:    recipe,
		Received:  make([]core.Color, 0, recipe.TotalUnits(size)),
		Remaining: core.NewTimer(budget, core.TimerOnce),
		Size:      size,
	}
}

// RequiredUnits returns the number of drops that fill the cup
func (o *Order) RequiredUnits() int {
	return o.Recipe.TotalUnits(o.Size)
}

// IsFull reports whether every required unit has been received
func (o *Order) IsFull() bool {
	return len(o.Received) >= o.RequiredUnits()
}

// Receive appends a poured color
func (o *Order) Receive(c core.Color) {
	o.Received = append(o.Received, c)
}

// Failed evaluates the received sequence against the recipe
func (o *Order) Failed() bool {
	return IsCupFailed(o.Recipe.Sections, o.Received, o.Size)
}
