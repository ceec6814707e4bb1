//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads a row-major cell buffer into a texture and draws it
// scaled onto the screen.
type GridPainter struct {
	img  *ebiten.Image
	buf  []byte
	w, h int
}

// NewGridPainter allocates a painter for a w*h grid.
func NewGridPainter(w, h int) *GridPainter {
	p := &GridPainter{}
	p.ensure(w, h)
	return p
}

func (p *GridPainter) ensure(w, h int) bool {
	if w <= 0 || h <= 0 {
		return false
	}
	if p.img == nil || p.w != w || p.h != h {
		p.img = ebiten.NewImage(w, h)
		p.buf = make([]byte, 4*w*h)
		p.w, p.h = w, h
	}
	return true
}

// BlitLevels draws connex levels through palette at (x, y) on screen.
func (p *GridPainter) BlitLevels(screen *ebiten.Image, levels []uint32, w, h int, palette []color.RGBA, x, y float64, scale int) {
	if !p.ensure(w, h) || len(levels) != w*h {
		return
	}
	FillLevelRGBA(p.buf, levels, palette)
	p.draw(screen, x, y, scale)
}

// BlitHeat draws a float layer as a translucent tint.
func (p *GridPainter) BlitHeat(screen *ebiten.Image, values []float32, w, h int, lo, hi float32, tint color.RGBA, x, y float64, scale int) {
	if !p.ensure(w, h) || len(values) != w*h {
		return
	}
	FillHeatRGBA(p.buf, values, lo, hi, tint)
	p.draw(screen, x, y, scale)
}

// BlitMask draws every word different from off in color on.
func (p *GridPainter) BlitMask(screen *ebiten.Image, words []uint64, w, h int, off uint64, on color.RGBA, x, y float64, scale int) {
	if !p.ensure(w, h) || len(words) != w*h {
		return
	}
	FillMaskRGBA(p.buf, words, off, on)
	p.draw(screen, x, y, scale)
}

func (p *GridPainter) draw(screen *ebiten.Image, x, y float64, scale int) {
	if scale <= 0 {
		scale = 1
	}
	p.img.WritePixels(p.buf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.GeoM.Translate(x, y)
	screen.DrawImage(p.img, op)
}
