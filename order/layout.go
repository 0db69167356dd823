package order

import "github.com/lixenwraith/plug-n-chug/parameter"

// CupLayout is the geometry of one cup relative to its own center
type CupLayout struct {
	Width      float64
	InnerWidth float64
	Height     float64
	Bottom     float64

	// CenterY is the cup center relative to the tap nozzle
	CenterY float64

	TotalUnits    int
	SectionHeight float64
	Dividers      []float64 // Divider center y per section boundary, bottom to top

	HandleX float64
	LabelY  float64
	BarY    float64

	SensorHalfWidth  float64
	SensorHalfHeight float64
	SensorY          float64
}

// NewCupLayout computes cup geometry for a recipe poured into a cup size
func NewCupLayout(cfg *CupConfig, recipe *Recipe, size CupSize) CupLayout {
	width, inner := cfg.Widths(size)
	h := cfg.CupHeight
	bottom := cfg.CupBottomThickness
	total := recipe.TotalUnits(size)

	l := CupLayout{
		Width:      width,
		InnerWidth: inner,
		Height:     h,
		Bottom:     bottom,
		CenterY:    -parameter.TapOffsetY - parameter.TapsSpriteHeight/2 + h/2,
		TotalUnits: total,
		HandleX:    width/2 + parameter.HandleGap,
		LabelY:     -h/2 - parameter.LabelOffsetY,
		BarY:       -h/2 - parameter.StatusBarGapY,
	}
	l.SensorHalfWidth = inner / 2
	l.SensorY = -h / 2
	if total == 0 {
		return l
	}

	l.SectionHeight = (h - bottom) / float64(total)
	l.SensorHalfHeight = l.SectionHeight/2 + bottom

	// N-1 dividers at cumulative section boundaries
	cumulative := 0
	for i, section := range recipe.Sections {
		cumulative += section.Size * size.Multiplier()
		if i == len(recipe.Sections)-1 {
			break
		}
		l.Dividers = append(l.Dividers, DividerY(h, bottom, cumulative, total))
	}
	return l
}

// DividerY places a divider at a cumulative unit offset
func DividerY(height, bottom float64, cumulative, total int) float64 {
	return -height/2 + bottom + height*(float64(cumulative)/float64(total))
}

// FillY returns the center y of the fill segment stacked after n received units
func (l CupLayout) FillY(n int) float64 {
	return (l.Height-l.Bottom)/-2 + l.SectionHeight*float64(n) + l.Bottom
}
