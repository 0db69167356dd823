package renderers

import (
	"github.com/lixenwraith/plug-n-chug/core"
	"github.com/lixenwraith/plug-n-chug/tap"
)

// previewColor returns the color an output would pour next without consuming it
// Mixers report false, their next color depends on the queue
func previewColor(o *tap.OutputState) (core.Color, bool) {
	if o.Kind != tap.KindColor {
		return core.Color{}, false
	}
	return o.Color.Base.Lighter(o.Color.Light), true
}
