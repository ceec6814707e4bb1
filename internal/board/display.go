package board

import "image/color"

// Level bands of the palette: barren, developing, grown, dense.
var paletteStops = []struct {
	level int
	c     color.NRGBA
}{
	{0, color.NRGBA{R: 18, G: 16, B: 24, A: 255}},
	{1, color.NRGBA{R: 52, G: 44, B: 70, A: 255}},
	{20, color.NRGBA{R: 40, G: 120, B: 150, A: 255}},
	{60, color.NRGBA{R: 90, G: 190, B: 110, A: 255}},
	{120, color.NRGBA{R: 230, G: 200, B: 80, A: 255}},
	{MaxConnex, color.NRGBA{R: 250, G: 250, B: 240, A: 255}},
}

var connexPalette = buildConnexPalette()

// Palette maps connex levels 0..MaxConnex to colors.
func (b *Board) Palette() []color.RGBA {
	return connexPalette
}

func buildConnexPalette() []color.RGBA {
	palette := make([]color.RGBA, MaxConnex+1)
	for level := range palette {
		palette[level] = toRGBA(levelColor(level))
	}
	return palette
}

func levelColor(level int) color.NRGBA {
	for i := 1; i < len(paletteStops); i++ {
		lo, hi := paletteStops[i-1], paletteStops[i]
		if level >= hi.level {
			continue
		}
		if hi.level == lo.level {
			return hi.c
		}
		t := float64(level-lo.level) / float64(hi.level-lo.level)
		return blendColors(lo.c, hi.c, t)
	}
	return paletteStops[len(paletteStops)-1].c
}

func toRGBA(c color.NRGBA) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func blendColors(base, overlay color.NRGBA, overlayWeight float64) color.NRGBA {
	if overlayWeight <= 0 {
		return base
	}
	if overlayWeight >= 1 {
		return overlay
	}
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a)*(1-overlayWeight) + float64(b)*overlayWeight + 0.5)
	}
	return color.NRGBA{
		R: mix(base.R, overlay.R),
		G: mix(base.G, overlay.G),
		B: mix(base.B, overlay.B),
		A: 255,
	}
}
