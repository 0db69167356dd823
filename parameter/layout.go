package parameter

// Bar layout in world units (origin at screen center, y up)
const (
	WindowWidth  = 800.0
	WindowHeight = 400.0

	BarTableWidth  = 665.0
	BarTableHeight = 82.0
	BarTableY      = -WindowHeight/2 + BarTableHeight/2

	TapsSpriteHeight = 151.0
	TapOffsetY       = 12.0 // Tap nozzle above the taps sprite center
	TapsY            = -WindowHeight/2 + BarTableHeight + TapsSpriteHeight/2
	TapY             = TapsY + TapOffsetY

	// Tap nozzle x positions
	Tap1X = -149.0
	Tap2X = 0.0
	Tap3X = 152.0

	// Cup child offsets
	HandleGap      = 2.0
	LabelOffsetY   = 25.0
	StatusBarGapY  = 50.0
	StatusBarH     = 20.0
	DividerHeight  = 2.0
	LabelFontSize  = 20.0
	StatusBarNudge = 1.0
)
