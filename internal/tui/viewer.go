// Package tui renders a running engine into a terminal with tcell. Each
// terminal cell shows two board rows using an upper half block.
package tui

import (
	"context"
	"fmt"
	"image"
	"image/color"

	"connex/internal/board"
	"connex/internal/engine"

	"github.com/gdamore/tcell/v2"
)

const (
	halfBlock = '▀'
	panStep   = 8
	maxTPS    = 240
)

// Options configures a Viewer.
type Options struct {
	Palette  []color.RGBA
	Bounds   image.Rectangle
	Seed     int64
	SavePath string
	TPS      int
	Paused   bool
}

// Viewer draws engine snapshots and turns key presses into commands.
type Viewer struct {
	screen tcell.Screen
	engine *engine.Engine
	opts   Options

	colors []tcell.Color
	view   board.View
	origin image.Point
	paused bool
	tps    int
	note   string

	// waiting is set while a CopyView is in flight; stale records a change
	// seen meanwhile so the next view is requested once it lands.
	waiting bool
	stale   bool
}

// New returns a viewer for e drawing to an initialized screen.
func New(screen tcell.Screen, e *engine.Engine, opts Options) *Viewer {
	v := &Viewer{
		screen: screen,
		engine: e,
		opts:   opts,
		colors: levelColors(opts.Palette),
		origin: opts.Bounds.Min,
		paused: opts.Paused,
		tps:    opts.TPS,
	}
	if v.tps <= 0 {
		v.tps = engine.DefaultOptions().TPS
	}
	v.resize()
	return v
}

// levelColors converts the board palette into terminal colors.
func levelColors(palette []color.RGBA) []tcell.Color {
	out := make([]tcell.Color, len(palette))
	for i, c := range palette {
		out[i] = tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	return out
}

// viewportFor returns the board rectangle a screen of w×h cells can show
// below origin. The last row is reserved for the status line.
func viewportFor(w, h int, origin image.Point) image.Rectangle {
	rows := h - 1
	if w <= 0 || rows <= 0 {
		return image.Rectangle{Min: origin, Max: origin}
	}
	return image.Rectangle{Min: origin, Max: origin.Add(image.Pt(w, rows*2))}
}

// Run redraws on every published tick until ctx is done or the user quits.
func (v *Viewer) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	views := make(chan board.View, 1)
	v.request(views)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if v.handle(ev) {
				return nil
			}
			v.request(views)
		case <-v.engine.Dirty():
			v.request(views)
		case view := <-views:
			v.received(view)
			if v.stale {
				v.request(views)
			}
		}
	}
}

// request asks the engine for the current viewport unless a copy is already
// in flight.
func (v *Viewer) request(views chan<- board.View) {
	if v.waiting {
		v.stale = true
		return
	}
	v.stale = false
	if err := v.engine.Submit(engine.CopyView{Viewport: true, Reply: views}); err != nil {
		v.note = err.Error()
		return
	}
	v.waiting = true
}

func (v *Viewer) received(view board.View) {
	v.waiting = false
	v.view = view
	v.draw()
}

// handle applies one terminal event and reports whether the viewer should quit.
func (v *Viewer) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.screen.Sync()
		v.resize()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyLeft:
			v.pan(-panStep, 0)
		case tcell.KeyRight:
			v.pan(panStep, 0)
		case tcell.KeyUp:
			v.pan(0, -panStep)
		case tcell.KeyDown:
			v.pan(0, panStep)
		case tcell.KeyRune:
			return v.handleRune(ev.Rune())
		}
	}
	return false
}

func (v *Viewer) handleRune(r rune) bool {
	switch r {
	case 'q':
		return true
	case ' ':
		v.paused = !v.paused
		if v.paused {
			v.submit(engine.Pause{})
		} else {
			v.submit(engine.Resume{})
		}
	case 'n':
		v.submit(engine.Step{N: 1})
	case '+', '=':
		v.setTPS(v.tps * 2)
	case '-':
		v.setTPS(v.tps / 2)
	case 'r':
		v.submit(engine.Reset{Seed: v.opts.Seed})
	case 's':
		if v.opts.SavePath != "" {
			v.submit(engine.Save{Path: v.opts.SavePath})
			v.note = "saved " + v.opts.SavePath
		}
	case 'l':
		if v.opts.SavePath != "" {
			v.submit(engine.Load{Path: v.opts.SavePath})
			v.note = "loaded " + v.opts.SavePath
		}
	}
	return false
}

func (v *Viewer) submit(cmd engine.Command) {
	if err := v.engine.Submit(cmd); err != nil {
		v.note = err.Error()
	}
}

func (v *Viewer) setTPS(tps int) {
	v.tps = min(max(tps, 1), maxTPS)
	v.submit(engine.SetTPS{TPS: v.tps})
}

func (v *Viewer) pan(dx, dy int) {
	v.origin = v.origin.Add(image.Pt(dx, dy))
	v.resize()
}

// resize fits the viewport to the screen and keeps it on the board.
func (v *Viewer) resize() {
	w, h := v.screen.Size()
	vp := viewportFor(w, h, v.origin)
	if !vp.Empty() && !v.opts.Bounds.Empty() {
		vp = board.ClampRect(vp, v.opts.Bounds)
	}
	v.origin = vp.Min
	v.engine.SetViewport(vp)
}

// draw paints the current view and the status line.
func (v *Viewer) draw() {
	v.screen.Clear()
	w, h := v.screen.Size()
	rows := h - 1
	for ty := 0; ty < rows; ty++ {
		top, bottom := ty*2, ty*2+1
		if top >= v.view.H {
			break
		}
		for x := 0; x < w && x < v.view.W; x++ {
			style := tcell.StyleDefault.Foreground(v.levelColor(x, top))
			if bottom < v.view.H {
				style = style.Background(v.levelColor(x, bottom))
			} else {
				style = style.Background(tcell.ColorBlack)
			}
			v.screen.SetContent(x, ty, halfBlock, nil, style)
		}
	}
	if rows >= 0 {
		v.drawStatus(rows, w)
	}
	v.screen.Show()
}

func (v *Viewer) levelColor(x, y int) tcell.Color {
	level := int(v.view.Connex[v.view.Index(x, y)])
	if level >= len(v.colors) {
		level = len(v.colors) - 1
	}
	if level < 0 {
		return tcell.ColorBlack
	}
	return v.colors[level]
}

func (v *Viewer) drawStatus(y, w int) {
	state := "running"
	if v.paused {
		state = "paused"
	}
	state = fmt.Sprintf("%s %dtps", state, v.tps)
	line := statusLine(v.engine.Tick(), v.engine.TotalEnergy(), state, v.view.Origin, v.note)
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	x := 0
	for _, r := range line {
		if x >= w {
			break
		}
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func statusLine(tick uint64, energy float64, state string, origin image.Point, note string) string {
	s := fmt.Sprintf("tick %d  energy %.1f  %s  @%d,%d  [space] pause [n] step [+/-] speed [r] reset [s/l] save/load [q] quit",
		tick, energy, state, origin.X, origin.Y)
	if note != "" {
		s += "  " + note
	}
	return s
}
