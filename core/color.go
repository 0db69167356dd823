package core

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Color stores linear RGB channels as floats
// Channels are nominally in [0,1] but are not clamped, recipe documents may carry any value
type Color struct {
	R, G, B float64
}

// LinearRGB builds a color from linear channel values
func LinearRGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// HSL builds a linear color from hue (degrees), saturation and lightness
func HSL(h, s, l float64) Color {
	r, g, b := colorful.Hsl(h, s, l).LinearRgb()
	return Color{R: r, G: g, B: b}
}

// Lighter returns the color with lightness raised by amount in HSL space
// Resulting lightness is clamped to [0,1]
func (c Color) Lighter(amount float64) Color {
	h, s, l := colorful.LinearRgb(c.R, c.G, c.B).Clamped().Hsl()
	l += amount
	if l < 0 {
		l = 0
	}
	if l > 1 {
		l = 1
	}
	return HSL(h, s, l)
}

// Mix returns the per-channel linear average of two colors
func (c Color) Mix(o Color) Color {
	return Color{
		R: (c.R + o.R) / 2,
		G: (c.G + o.G) / 2,
		B: (c.B + o.B) / 2,
	}
}

// RGB255 converts to 8-bit sRGB for display
func (c Color) RGB255() (uint8, uint8, uint8) {
	return colorful.LinearRgb(c.R, c.G, c.B).Clamped().RGB255()
}
