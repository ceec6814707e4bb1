//go:build ebiten

package ui

import (
	"image/color"

	"connex/internal/board"
	"connex/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Layer identifies one attribute overlay.
type Layer int

const (
	LayerEnergy Layer = iota
	LayerGamma
	LayerOmega
	LayerWaves
	layerCount
)

var layerKeys = [layerCount]ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4}

// Upper ends of the heat ramps; values above saturate.
const (
	energyCeiling = 200
	gammaCeiling  = 2
	omegaCeiling  = 2
)

// Overlay draws attribute layers of a view on top of the level map.
type Overlay struct {
	scale   int
	show    [layerCount]bool
	painter [layerCount]*render.GridPainter
}

// NewOverlay constructs an overlay drawing at the given pixel scale.
func NewOverlay(scale int) *Overlay {
	o := &Overlay{scale: scale}
	for i := range o.painter {
		o.painter[i] = render.NewGridPainter(1, 1)
	}
	return o
}

// Toggle flips a layer.
func (o *Overlay) Toggle(l Layer) {
	if l >= 0 && l < layerCount {
		o.show[l] = !o.show[l]
	}
}

// Showing reports whether a layer is visible.
func (o *Overlay) Showing(l Layer) bool {
	return l >= 0 && l < layerCount && o.show[l]
}

// Update toggles layers from the number keys.
func (o *Overlay) Update() {
	for i, key := range layerKeys {
		if inpututil.IsKeyJustPressed(key) {
			o.Toggle(Layer(i))
		}
	}
}

// Draw renders the visible layers of v onto screen.
func (o *Overlay) Draw(screen *ebiten.Image, v *board.View) {
	if v == nil || v.W <= 0 || v.H <= 0 {
		return
	}
	if o.show[LayerEnergy] {
		o.painter[LayerEnergy].BlitHeat(screen, v.Energy, v.W, v.H, 0, energyCeiling, color.RGBA{R: 255, G: 150, B: 40}, 0, 0, o.scale)
	}
	if o.show[LayerGamma] {
		o.painter[LayerGamma].BlitHeat(screen, v.Gamma, v.W, v.H, 0, gammaCeiling, color.RGBA{R: 64, G: 200, B: 230}, 0, 0, o.scale)
	}
	if o.show[LayerOmega] {
		o.painter[LayerOmega].BlitHeat(screen, v.Omega, v.W, v.H, 0, omegaCeiling, color.RGBA{R: 190, G: 90, B: 255}, 0, 0, o.scale)
	}
	if o.show[LayerWaves] {
		o.painter[LayerWaves].BlitMask(screen, v.Alpha, v.W, v.H, board.ZeroAlpha, color.RGBA{R: 255, G: 255, B: 255, A: 110}, 0, 0, o.scale)
	}
}
