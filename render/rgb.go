package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/plug-n-chug/core"
)

// RGB is an 8-bit display color
type RGB struct {
	R, G, B uint8
}

// clamp converts float to uint8 efficiently
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v)
}

// FromColor converts a linear game color to display sRGB
func FromColor(c core.Color) RGB {
	r, g, b := c.RGB255()
	return RGB{r, g, b}
}

// Blend performs linear alpha blending of src over c
func Blend(c, src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return c
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: clamp(float64(c.R)*inv + float64(src.R)*alpha + 0.5),
		G: clamp(float64(c.G)*inv + float64(src.G)*alpha + 0.5),
		B: clamp(float64(c.B)*inv + float64(src.B)*alpha + 0.5),
	}
}

// Scale multiplies every channel by factor
func Scale(c RGB, factor float64) RGB {
	return RGB{
		R: clamp(float64(c.R)*factor + 0.5),
		G: clamp(float64(c.G)*factor + 0.5),
		B: clamp(float64(c.B)*factor + 0.5),
	}
}

// Lerp interpolates from a to b by t in [0,1]
func Lerp(a, b RGB, t float64) RGB {
	return Blend(a, b, t)
}

// Luminance returns perceived brightness in [0,255]
func Luminance(c RGB) float64 {
	return 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
}

// ToTcell converts RGB to tcell.Color
func ToTcell(rgb RGB) tcell.Color {
	return tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B))
}
