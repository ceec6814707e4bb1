//go:build ebiten

package app

import (
	"fmt"
	"image"
	"time"

	"connex/internal/board"
	"connex/internal/engine"
	"connex/internal/render"
	"connex/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Largest viewport, in cells, shown at once. Arrow keys pan beyond it.
const (
	maxViewW = 320
	maxViewH = 240
	panStep  = 8

	clickEnergy = 25
)

// Game adapts a board and its engine to the ebiten.Game interface. Ebiten's
// update loop drives the engine one tick per frame.
type Game struct {
	board   *board.Board
	engine  *engine.Engine
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	view    board.View

	scale    int
	hudWidth int
	seed     int64
	savePath string

	hover    image.Point
	hoverOK  bool
	selected *image.Point
}

// New constructs a Game for the provided board.
func New(b *board.Board, cfg *Config) *Game {
	e := engine.New(b, engine.Options{TPS: cfg.TPS, Paused: cfg.Paused})
	size := b.Size()
	vw, vh := min(size.W, maxViewW), min(size.H, maxViewH)
	e.SetViewport(image.Rectangle{Min: b.Position(), Max: b.Position().Add(image.Pt(vw, vh))})

	g := &Game{
		board:    b,
		engine:   e,
		painter:  render.NewGridPainter(vw, vh),
		overlay:  ui.NewOverlay(cfg.Scale),
		scale:    cfg.Scale,
		hudWidth: cfg.HUDWidth,
		seed:     cfg.Seed,
		savePath: cfg.SavePath,
	}
	if g.hudWidth > 0 {
		g.hud = ui.NewHUD(b, g.hudWidth)
	}
	if cfg.LoadPath != "" {
		e.Submit(engine.Load{Path: cfg.LoadPath})
	}
	g.sync()
	return g
}

// Reset queues a regeneration of the board with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.engine.Submit(engine.Reset{Seed: seed})
	g.selected = nil
}

// Update handles per-frame input and advances the engine.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.engine.Paused() {
			g.engine.Submit(engine.Resume{})
		} else {
			g.engine.Submit(engine.Pause{})
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.engine.Submit(engine.Step{N: 1})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		g.engine.Submit(engine.Save{Path: g.savePath})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.engine.Submit(engine.Load{Path: g.savePath})
	}
	g.handlePan()
	g.handleMouse()

	g.overlay.Update()
	g.hud.Update(g.view.W * g.scale)

	g.engine.Advance()
	g.sync()
	return nil
}

func (g *Game) handlePan() {
	var dx, dy int
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		dx -= panStep
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		dx += panStep
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		dy -= panStep
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		dy += panStep
	}
	if dx == 0 && dy == 0 {
		return
	}
	vp := board.ClampRect(g.engine.Viewport().Add(image.Pt(dx, dy)), g.board.Bounds())
	g.engine.Submit(engine.SetViewport{Rect: vp})
}

func (g *Game) handleMouse() {
	mx, my := ebiten.CursorPosition()
	g.hoverOK = false
	if g.scale <= 0 || mx < 0 || my < 0 || mx >= g.view.W*g.scale || my >= g.view.H*g.scale {
		return
	}
	g.hover = g.view.Origin.Add(image.Pt(mx/g.scale, my/g.scale))
	g.hoverOK = true
	cell := g.hover.Sub(g.board.Position())

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.engine.Submit(engine.AdjustAttr{X: cell.X, Y: cell.Y, Attr: board.AttrEnergy, Delta: clickEnergy})
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		if g.selected == nil {
			g.selected = &cell
			return
		}
		from := *g.selected
		g.selected = nil
		g.engine.Submit(engine.SwapCells{
			AX: from.X, AY: from.Y,
			BX: cell.X, BY: cell.Y,
			Override: ebiten.IsKeyPressed(ebiten.KeyShift),
		})
	}
}

// sync copies the viewport out of the board and refreshes the HUD status.
func (g *Game) sync() {
	g.board.CopyRegion(g.engine.Viewport(), &g.view)

	state := "running"
	if g.engine.Paused() {
		state = "paused"
	}
	lines := []string{
		fmt.Sprintf("tick %d (%s)", g.engine.Tick(), state),
		fmt.Sprintf("energy %.1f", g.engine.TotalEnergy()),
	}
	if g.hoverOK {
		cell := g.hover.Sub(g.board.Position())
		if c, ok := g.board.Cell(cell.X, cell.Y); ok {
			w := c.Wave()
			lines = append(lines,
				fmt.Sprintf("cell %d,%d", g.hover.X, g.hover.Y),
				fmt.Sprintf("connex %d  delta %#x", c.Connex, c.Delta),
				fmt.Sprintf("stab %.3f  react %.3f", c.Stability, c.Reactivity),
				fmt.Sprintf("energy %.2f", c.Energy),
				fmt.Sprintf("gamma %.3f  omega %.3f", c.Gamma, c.Omega),
				fmt.Sprintf("wave %d  dir %d", w.Counter, c.Beta),
			)
		}
	}
	g.hud.SetStatus(lines...)
}

// Draw renders the viewport, overlays and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.BlitLevels(screen, g.view.Connex, g.view.W, g.view.H, g.board.Palette(), 0, 0, g.scale)
	g.overlay.Draw(screen, &g.view)
	g.hud.Draw(screen, g.view.W*g.scale, g.view.H*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := g.view.W*g.scale + g.hudWidth
	h := g.view.H * g.scale
	if w <= 0 || h <= 0 {
		return 1, 1
	}
	return w, h
}
