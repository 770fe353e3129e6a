package scene

import (
	"image/color"

	"anatomy-mapper/pkg/colorutil"
)

// Highlight tint parameters. Hover is a gentle brighten of the mesh's
// own color; selection pulls the color toward the clinical accent.
const (
	hoverLightenFactor = 1.25
	hoverEmissiveBoost = 0.15

	selectionMixRatio = 0.65
	selectionEmissive = 0.35
)

// SelectionAccent is the highlight accent for selected parts.
var SelectionAccent = color.RGBA{R: 0x00, G: 0xB4, B: 0xD8, A: 0xFF}

// hoverAppearance derives the hover tint from a recorded original
// appearance.
func hoverAppearance(orig Appearance) Appearance {
	return Appearance{
		BaseColor: colorutil.Lighten(orig.BaseColor, hoverLightenFactor),
		Emissive:  clamp01(orig.Emissive + hoverEmissiveBoost),
	}
}

// selectionAppearance derives the selection tint from a recorded
// original appearance.
func selectionAppearance(orig Appearance) Appearance {
	return Appearance{
		BaseColor: colorutil.Mix(orig.BaseColor, SelectionAccent, selectionMixRatio),
		Emissive:  clamp01(orig.Emissive + selectionEmissive),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
