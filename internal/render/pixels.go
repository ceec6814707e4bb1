package render

import (
	"image/color"
	"math"
)

// FillLevelRGBA converts connex levels into RGBA pixels using a palette.
// Levels past the end of the palette use its last color. When the palette is
// empty the buffer is cleared to transparent black.
func FillLevelRGBA(buf []byte, levels []uint32, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:len(levels)*4])
		return
	}

	last := uint32(len(palette) - 1)
	for i, n := range levels {
		if n > last {
			n = last
		}
		base := i * 4
		col := palette[n]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// FillHeatRGBA maps values in [lo, hi] to a translucent tint whose alpha
// grows with the value. Values at or below lo are fully transparent.
func FillHeatRGBA(buf []byte, values []float32, lo, hi float32, tint color.RGBA) {
	const (
		maxAlpha      = 160.0
		glowBase      = 0.35
		glowRange     = 0.65
		intensityBias = 0.75
	)
	span := float64(hi - lo)
	if span <= 0 {
		span = 1
	}
	for i, v := range values {
		base := i * 4
		intensity := (float64(v) - float64(lo)) / span
		if intensity <= 0 || math.IsNaN(intensity) {
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
			continue
		}
		if intensity > 1 {
			intensity = 1
		}
		glow := glowBase + glowRange*math.Sqrt(intensity)
		buf[base+0] = scaleComponent(tint.R, glow)
		buf[base+1] = scaleComponent(tint.G, glow)
		buf[base+2] = scaleComponent(tint.B, glow)
		buf[base+3] = uint8(math.Round(maxAlpha * math.Pow(intensity, intensityBias)))
	}
}

// FillMaskRGBA paints cells whose word is not equal to off in the given color
// and clears the rest.
func FillMaskRGBA(buf []byte, words []uint64, off uint64, on color.RGBA) {
	for i, w := range words {
		base := i * 4
		if w != off {
			buf[base+0] = on.R
			buf[base+1] = on.G
			buf[base+2] = on.B
			buf[base+3] = on.A
			continue
		}
		buf[base+0] = 0
		buf[base+1] = 0
		buf[base+2] = 0
		buf[base+3] = 0
	}
}

func scaleComponent(value uint8, factor float64) uint8 {
	scaled := math.Round(float64(value) * factor)
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return uint8(scaled)
}
