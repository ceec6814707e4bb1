package tui

import (
	"image"
	"strings"
	"testing"

	"connex/internal/board"
	"connex/internal/engine"

	"github.com/gdamore/tcell/v2"
)

func newTestViewer(t *testing.T, w, h int) (*Viewer, *engine.Engine, *board.Board) {
	t.Helper()
	cfg := board.DefaultConfig()
	cfg.Width = 16
	cfg.Height = 12
	cfg.Workers = 2
	b := board.New(cfg)
	e := engine.New(b, engine.DefaultOptions())

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)

	v := New(screen, e, Options{Palette: b.Palette(), Bounds: b.Bounds()})
	return v, e, b
}

func TestViewportFor(t *testing.T) {
	if got := viewportFor(80, 25, image.Pt(3, 4)); got != image.Rect(3, 4, 83, 52) {
		t.Fatalf("viewport = %v", got)
	}
	if got := viewportFor(80, 1, image.Pt(3, 4)); !got.Empty() {
		t.Fatalf("status-only screen should give an empty viewport, got %v", got)
	}
}

func TestViewerFitsViewportToScreen(t *testing.T) {
	_, e, _ := newTestViewer(t, 8, 5)
	if got := e.Viewport(); got != image.Rect(0, 0, 8, 8) {
		t.Fatalf("viewport = %v, want 8x8 at origin", got)
	}
}

func TestPanStaysOnBoard(t *testing.T) {
	v, e, _ := newTestViewer(t, 8, 5)
	right := tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone)
	v.handle(right)
	if got := e.Viewport(); got != image.Rect(8, 0, 16, 8) {
		t.Fatalf("after one pan viewport = %v", got)
	}
	v.handle(right)
	if got := e.Viewport(); got != image.Rect(8, 0, 16, 8) {
		t.Fatalf("pan past the edge should clamp, got %v", got)
	}
	v.handle(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone))
	if got := e.Viewport(); got != image.Rect(8, 4, 16, 12) {
		t.Fatalf("down pan viewport = %v", got)
	}
}

func TestDrawUsesHalfBlocks(t *testing.T) {
	v, _, b := newTestViewer(t, 2, 3)
	palette := levelColors(b.Palette())
	v.view = board.View{W: 2, H: 3, Connex: []uint32{0, 1, 2, 3, 4, 5}}
	v.draw()

	r, _, style, _ := v.screen.GetContent(1, 0)
	fg, bg, _ := style.Decompose()
	if r != halfBlock || fg != palette[1] || bg != palette[3] {
		t.Fatalf("cell (1,0) = %q fg %v bg %v", r, fg, bg)
	}
	r, _, style, _ = v.screen.GetContent(0, 1)
	fg, bg, _ = style.Decompose()
	if r != halfBlock || fg != palette[4] || bg != tcell.ColorBlack {
		t.Fatalf("cell (0,1) = %q fg %v bg %v", r, fg, bg)
	}
	r, _, _, _ = v.screen.GetContent(0, 2)
	if r != 't' {
		t.Fatalf("status line should start at the last row, got %q", r)
	}
}

func TestKeysBecomeCommands(t *testing.T) {
	v, e, _ := newTestViewer(t, 8, 5)
	if quit := v.handle(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)); quit {
		t.Fatal("space should not quit")
	}
	if e.Advance() {
		t.Fatal("space should pause the engine")
	}
	v.handle(tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone))
	if !e.Advance() || e.Tick() != 1 {
		t.Fatalf("n should step once, tick = %d", e.Tick())
	}
	if !v.handle(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Fatal("q should quit")
	}
}

func TestStatusLine(t *testing.T) {
	s := statusLine(42, 1234.56, "paused", image.Pt(8, 4), "saved x")
	for _, want := range []string{"tick 42", "energy 1234.6", "paused", "@8,4", "saved x"} {
		if !strings.Contains(s, want) {
			t.Fatalf("status %q missing %q", s, want)
		}
	}
}

func TestSpeedKeysClampTPS(t *testing.T) {
	v, _, _ := newTestViewer(t, 8, 5)
	minus := tcell.NewEventKey(tcell.KeyRune, '-', tcell.ModNone)
	for i := 0; i < 10; i++ {
		v.handle(minus)
	}
	if v.tps != 1 {
		t.Fatalf("tps = %d, want floor of 1", v.tps)
	}
	plus := tcell.NewEventKey(tcell.KeyRune, '+', tcell.ModNone)
	for i := 0; i < 10; i++ {
		v.handle(plus)
	}
	if v.tps != maxTPS {
		t.Fatalf("tps = %d, want ceiling %d", v.tps, maxTPS)
	}
}

func TestOneViewRequestInFlight(t *testing.T) {
	v, e, _ := newTestViewer(t, 8, 5)
	views := make(chan board.View, 1)
	v.request(views)
	v.request(views)
	v.request(views)
	e.RunTicks(0)

	view := <-views
	if view.W != 8 || view.H != 8 {
		t.Fatalf("view = %dx%d, want 8x8", view.W, view.H)
	}
	if !v.stale {
		t.Fatal("requests made while waiting should mark the view stale")
	}
	v.received(view)
	if v.waiting {
		t.Fatal("a received view should clear the in-flight request")
	}
	v.request(views)
	e.RunTicks(0)
	select {
	case <-views:
	default:
		t.Fatal("a new request should be sent once the view landed")
	}
}
