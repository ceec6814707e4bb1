//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strings"

	"connex/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	panelBg     = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor  = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor    = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	statusColor = color.RGBA{R: 180, G: 190, B: 200, A: 255}

	buttonBg    = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	buttonFg    = color.RGBA{R: 230, G: 230, B: 240, A: 255}
	buttonOffBg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
	buttonOffFg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
)

// HUD is the side panel next to the board view: a column of -/+ controls for
// the sim's tunables followed by free-form status lines.
type HUD struct {
	sim      core.Sim
	width    int
	title    string
	controls []control
	set      setters
	status   []string

	panel   *ebiten.Image
	offsetX int
}

// NewHUD builds a panel of the given width for sim.
func NewHUD(sim core.Sim, width int) *HUD {
	h := &HUD{sim: sim, width: max(width, 0), set: settersFor(sim)}
	h.title = "Controls"
	if name := sim.Name(); name != "" {
		h.title = strings.ToUpper(name[:1]) + name[1:] + " controls"
	}
	if p, ok := sim.(core.ParameterControlsProvider); ok {
		h.controls = newControls(p.ParameterControls())
		layoutControls(h.controls, h.width)
	}
	return h
}

// Update refreshes control values and applies clicks on the panel, which
// starts at offsetX in screen space.
func (h *HUD) Update(offsetX int) {
	if h == nil {
		return
	}
	h.offsetX = offsetX
	p, ok := h.sim.(core.ParameterProvider)
	if !ok {
		return
	}
	snap := p.Parameters()
	for i := range h.controls {
		h.controls[i].refresh(snap)
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if i, dir, ok := hit(h.controls, mx-h.offsetX, my); ok {
		h.set.adjust(&h.controls[i], dir)
	}
}

// SetStatus replaces the status lines drawn under the controls.
func (h *HUD) SetStatus(lines ...string) {
	if h == nil {
		return
	}
	h.status = append(h.status[:0], lines...)
}

// Draw paints the panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelBg)

	face := basicfont.Face7x13
	text.Draw(h.panel, h.title, face, panelPadding, panelPadding+headerBaseline, titleColor)
	for i := range h.controls {
		c := &h.controls[i]
		y := c.top + labelBaseline
		text.Draw(h.panel, c.def.Label, face, panelPadding, y, labelColor)

		value, fg := c.text(), labelColor
		if !c.known {
			fg = dimColor
		}
		w := text.BoundString(face, value).Dx()
		text.Draw(h.panel, value, face, c.minus.Min.X-buttonGap-w, y, fg)

		h.drawButton(c.minus, "-", h.set.canAdjust(c, -1))
		h.drawButton(c.plus, "+", h.set.canAdjust(c, 1))
	}

	y := controlsTop + len(h.controls)*lineHeight + statusGap
	for _, line := range h.status {
		text.Draw(h.panel, line, face, panelPadding, y, statusColor)
		y += statusLineHeight
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawButton(r image.Rectangle, label string, enabled bool) {
	bg, fg := buttonBg, buttonFg
	if !enabled {
		bg, fg = buttonOffBg, buttonOffFg
	}
	vector.DrawFilledRect(h.panel, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), bg, false)

	face := basicfont.Face7x13
	b := text.BoundString(face, label)
	x := r.Min.X + (r.Dx()-b.Dx())/2
	y := r.Min.Y + (r.Dy()+b.Dy())/2
	text.Draw(h.panel, label, face, x, y, fg)
}
