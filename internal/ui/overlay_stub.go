//go:build !ebiten

package ui

// Layer identifies one attribute overlay.
type Layer int

const (
	LayerEnergy Layer = iota
	LayerGamma
	LayerOmega
	LayerWaves
)

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(int) *Overlay { return &Overlay{} }

// Toggle is a no-op in headless builds.
func (o *Overlay) Toggle(Layer) {}

// Showing always reports false in headless builds.
func (o *Overlay) Showing(Layer) bool { return false }

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any, any) {}
