package huehunt

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/hue-hunt/internal/core"
)

// HSLToRGB converts hue, saturation and lightness, each in [0, 1], to an
// 8-bit RGB color. Channels are rounded to the nearest integer.
func HSLToRGB(h, s, l float64) core.RGB {
	var r, g, b float64
	if s == 0 {
		r, g, b = l, l, l // achromatic
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q
		r = hueToRGB(p, q, h+1.0/3)
		g = hueToRGB(p, q, h)
		b = hueToRGB(p, q, h-1.0/3)
	}
	return core.RGB{R: toByte(r), G: toByte(g), B: toByte(b)}
}

// hueToRGB evaluates one channel of the piecewise hue ramp at t.
func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

func toByte(v float64) uint8 {
	return uint8(math.Round(core.ClampF(v, 0, 1) * 255))
}

// Contrast returns the CIEDE2000 distance between two colors.
// Zero means identical; a just-noticeable difference is around 0.01.
func Contrast(a, b core.RGB) float64 {
	return toColorful(a).DistanceCIEDE2000(toColorful(b))
}

func toColorful(c core.RGB) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}
