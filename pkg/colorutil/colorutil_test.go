package colorutil

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLighten(t *testing.T) {
	c := color.RGBA{R: 100, G: 50, B: 200, A: 255}

	lighter := Lighten(c, 1.25)
	assert.Equal(t, color.RGBA{R: 125, G: 63, B: 250, A: 255}, lighter)

	// Clamps at 255
	assert.Equal(t, uint8(255), Lighten(c, 3.0).B)

	// Factor 1.0 is the identity
	assert.Equal(t, c, Lighten(c, 1.0))
}

func TestMix(t *testing.T) {
	a := color.RGBA{R: 0, G: 0, B: 0, A: 255}
	b := color.RGBA{R: 200, G: 100, B: 50, A: 255}

	assert.Equal(t, a, Mix(a, b, 0))
	assert.Equal(t, color.RGBA{R: 200, G: 100, B: 50, A: 255}, Mix(a, b, 1))
	assert.Equal(t, color.RGBA{R: 100, G: 50, B: 25, A: 255}, Mix(a, b, 0.5))

	// t is clamped
	assert.Equal(t, a, Mix(a, b, -2))
}

func TestShade(t *testing.T) {
	c := color.RGBA{R: 200, G: 100, B: 50, A: 255}

	assert.Equal(t, color.RGBA{R: 100, G: 50, B: 25, A: 255}, Shade(c, 0.5))
	assert.Equal(t, c, Shade(c, 1.0))

	// Intensity is clamped to 0..1
	assert.Equal(t, color.RGBA{A: 255}, Shade(c, -1))
	assert.Equal(t, c, Shade(c, 2))
}

func TestWithAlpha(t *testing.T) {
	c := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	assert.Equal(t, color.NRGBA{R: 10, G: 20, B: 30, A: 0x60}, WithAlpha(c, 0x60))
}
