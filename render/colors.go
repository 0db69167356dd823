package render

// Bar palette
var (
	RgbBackground = RGB{26, 27, 38} // Tokyo Night background
	RgbBlack      = RGB{0, 0, 0}
	RgbWhite      = RGB{255, 255, 255}

	RgbBarTable    = RGB{101, 67, 33}  // Dark wood
	RgbBarTableTop = RGB{150, 105, 60} // Lighter edge
	RgbTap         = RGB{180, 180, 180}
	RgbTapIdle     = RGB{90, 90, 90}

	RgbCupOutline = RGB{200, 200, 220}
	RgbCupInside  = RGB{40, 42, 56}
	RgbLabel      = RGB{220, 220, 220}

	RgbTimerFull  = RGB{0, 200, 0}
	RgbTimerEmpty = RGB{200, 50, 50}
	RgbTimerTrack = RGB{50, 50, 50}

	RgbStatusText  = RGB{0, 0, 0}
	RgbStatusBg    = RGB{135, 206, 250} // Light sky blue
	RgbSelectedBg  = RGB{255, 165, 0}   // Orange
	RgbPausedBg    = RGB{128, 0, 128}   // Dark purple
	RgbFailedBox   = RGB{255, 80, 80}
	RgbEmptyBox    = RGB{120, 120, 120}
	RgbOverlayBg   = RGB{20, 20, 30}
	RgbOverlayText = RGB{255, 255, 255}
)

// TimerColor grades the status bar from red at expiry to green when fresh
func TimerColor(percent float64) RGB {
	return Lerp(RgbTimerEmpty, RgbTimerFull, percent)
}

// ContrastText picks black or white text for a background
func ContrastText(bg RGB) RGB {
	if Luminance(bg) > 140 {
		return RgbBlack
	}
	return RgbWhite
}
