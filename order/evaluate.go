package order

import (
	"github.com/lixenwraith/plug-n-chug/core"
	"github.com/lixenwraith/plug-n-chug/parameter"
)

// IsCupFailed walks the sections bottom to top over contiguous slices of received
// A cup fails when received is too short for any section, or when a section holds
// more than MaxFailuresPerSection colors outside ColorRange
func IsCupFailed(expected []Section, received []core.Color, size CupSize) bool {
	index := 0
	for _, section := range expected {
		sectionSize := section.Size * size.Multiplier()
		if index+sectionSize > len(received) {
			return true
		}

		equal := 0
		for _, c := range received[index : index+sectionSize] {
			if ColorEqual(section.Color, c, parameter.ColorRange) {
				equal++
			}
		}
		if sectionSize-equal > parameter.MaxFailuresPerSection {
			return true
		}
		index += sectionSize
	}
	return false
}

// ColorEqual reports whether received lies within rng of template
//
// Channel convention: red is taken from template while blue and green are taken
// from received itself, so only the red channel can fall out of range. This
// matches the scoring shipped so far; whether all three channels should be
// compared against template is unresolved.
func ColorEqual(template, received core.Color, rng float64) bool {
	red := template.R
	blue := received.B
	green := received.G

	return received.R >= red-rng && received.R <= red+rng &&
		received.B >= blue-rng && received.B <= blue+rng &&
		received.G >= green-rng && received.G <= green+rng
}
