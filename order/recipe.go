package order

import (
	"math/rand"

	"github.com/lixenwraith/plug-n-chug/core"
)

// Section is one contiguous color band, index 0 is the bottom of the cup
type Section struct {
	Color core.Color
	Size  int
}

// Recipe is a named drink template
type Recipe struct {
	Name       string
	Sections   []Section
	Difficulty int
}

// Units returns the unscaled unit count of the recipe
func (r *Recipe) Units() int {
	total := 0
	for _, s := range r.Sections {
		total += s.Size
	}
	return total
}

// TotalUnits returns the number of drops required to fill a cup of the given size
func (r *Recipe) TotalUnits(size CupSize) int {
	return r.Units() * size.Multiplier()
}

// CupSize scales every section of a recipe
type CupSize uint8

const (
	Small CupSize = iota
	Medium
	Large
)

// CupSizes lists every size in sampling order
var CupSizes = [...]CupSize{Small, Medium, Large}

// Multiplier returns the unit scale factor of the size
func (c CupSize) Multiplier() int {
	switch c {
	case Small:
		return 1
	case Large:
		return 4
	default:
		return 2
	}
}

// RandomCupSize samples a size uniformly
func RandomCupSize(rng *rand.Rand) CupSize {
	return CupSizes[rng.Intn(len(CupSizes))]
}

func (c CupSize) String() string {
	switch c {
	case Small:
		return "Small"
	case Medium:
		return "Medium"
	case Large:
		return "Large"
	}
	return "Unknown"
}
