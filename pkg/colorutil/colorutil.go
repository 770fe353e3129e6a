// Package colorutil provides shared color utilities for the anatomy mapper application.
package colorutil

import (
	"image/color"
)

// Lighten multiplies the RGB channels by factor, clamping to 255.
// Factors above 1.0 brighten, below 1.0 darken. Alpha is preserved.
func Lighten(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: clamp8(float64(c.R) * factor),
		G: clamp8(float64(c.G) * factor),
		B: clamp8(float64(c.B) * factor),
		A: c.A,
	}
}

// Mix blends two colors; t=0 returns a, t=1 returns b.
func Mix(a, b color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return color.RGBA{
		R: clamp8(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: clamp8(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: clamp8(float64(a.B) + (float64(b.B)-float64(a.B))*t),
		A: a.A,
	}
}

// WithAlpha returns the color as non-premultiplied NRGBA with the
// given alpha, for compositing translucent overlays.
func WithAlpha(c color.RGBA, a uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: a}
}

// Shade scales the RGB channels by a 0..1 lighting factor, preserving alpha.
func Shade(c color.RGBA, intensity float64) color.RGBA {
	if intensity < 0 {
		intensity = 0
	} else if intensity > 1 {
		intensity = 1
	}
	return color.RGBA{
		R: clamp8(float64(c.R) * intensity),
		G: clamp8(float64(c.G) * intensity),
		B: clamp8(float64(c.B) * intensity),
		A: c.A,
	}
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
