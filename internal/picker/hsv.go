// Package picker implements the HSV color picker: a hue bar and a
// saturation/value field regenerated for the selected hue.
package picker

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/ha1tch/shapedraw/internal/shape"
)

// HSVToRGB converts hue h in degrees [0,360] and saturation s and value v
// in percent [0,100] to an 8-bit color. Hue 360 wraps to red.
func HSVToRGB(h, s, v float64) shape.RGB {
	s = clampUnit(s / 100)
	v = clampUnit(v / 100)

	// gg works in HSL; map HSV onto it.
	l := v * (1 - s/2)
	var sl float64
	if l > 0 && l < 1 {
		sl = (v - l) / math.Min(l, 1-l)
	}
	c := gg.HSL(h, sl, l)
	return shape.RGB{R: to8(c.R), G: to8(c.G), B: to8(c.B)}
}

func to8(x float64) uint8 {
	return uint8(math.Round(clampUnit(x) * 255))
}

func clampUnit(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}
