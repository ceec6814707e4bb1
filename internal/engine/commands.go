package engine

import (
	"image"
	"log"

	"connex/internal/board"
	"connex/internal/persist"
)

// Command is an edit or query applied between ticks on the engine goroutine.
type Command interface {
	apply(e *Engine)
}

// SetAttr overwrites one numeric attribute of a cell. Packed attributes are
// ignored; send SetWord for those.
type SetAttr struct {
	X, Y  int
	Attr  board.Attr
	Value float64
}

func (c SetAttr) apply(e *Engine) { e.board.SetAttr(c.X, c.Y, c.Attr, c.Value) }

// SetWord overwrites the alpha, beta or delta word of a cell bit for bit.
type SetWord struct {
	X, Y  int
	Attr  board.Attr
	Value uint64
}

func (c SetWord) apply(e *Engine) { e.board.SetWord(c.X, c.Y, c.Attr, c.Value) }

// AdjustAttr adds Delta to one attribute of a cell.
type AdjustAttr struct {
	X, Y  int
	Attr  board.Attr
	Delta float64
}

func (c AdjustAttr) apply(e *Engine) { e.board.AdjustAttr(c.X, c.Y, c.Attr, c.Delta) }

// SwapCells exchanges two cells when the swap rules allow it.
type SwapCells struct {
	AX, AY   int
	BX, BY   int
	Override bool
}

func (c SwapCells) apply(e *Engine) { e.board.SwapCells(c.AX, c.AY, c.BX, c.BY, c.Override) }

// Pause stops automatic ticking.
type Pause struct{}

func (Pause) apply(e *Engine) { e.paused = true }

// Resume restarts automatic ticking.
type Resume struct{}

func (Resume) apply(e *Engine) { e.paused = false }

// Step queues N ticks that run even while paused. N <= 0 means one.
type Step struct{ N int }

func (c Step) apply(e *Engine) {
	n := c.N
	if n <= 0 {
		n = 1
	}
	e.pending += n
}

// Reset regenerates the board from Seed and clears pending steps.
type Reset struct{ Seed int64 }

func (c Reset) apply(e *Engine) {
	e.board.Reset(c.Seed)
	e.pending = 0
}

// SetTPS changes the tick rate used by Run.
type SetTPS struct{ TPS int }

func (c SetTPS) apply(e *Engine) { e.timer.SetTPS(c.TPS) }

// SetViewport changes the board-space rectangle CopyView uses by default.
type SetViewport struct{ Rect image.Rectangle }

func (c SetViewport) apply(e *Engine) { e.SetViewport(c.Rect) }

// CopyView replies with a copy of Rect, or of the current viewport when
// Viewport is set. An empty Rect yields an empty view. Reply must be buffered.
type CopyView struct {
	Rect     image.Rectangle
	Viewport bool
	Reply    chan<- board.View
}

func (c CopyView) apply(e *Engine) {
	r := c.Rect
	if c.Viewport {
		r = e.Viewport()
	}
	var v board.View
	e.board.CopyRegion(r, &v)
	reply(c.Reply, v)
}

// CellReply answers a QueryCell.
type CellReply struct {
	Cell board.CellState
	OK   bool
}

// QueryCell replies with the state of one cell. Reply must be buffered.
type QueryCell struct {
	X, Y  int
	Reply chan<- CellReply
}

func (c QueryCell) apply(e *Engine) {
	cell, ok := e.board.Cell(c.X, c.Y)
	reply(c.Reply, CellReply{Cell: cell, OK: ok})
}

// Save writes the board to Path. Done, when set, receives the result.
type Save struct {
	Path string
	Done chan<- error
}

func (c Save) apply(e *Engine) {
	err := persist.Save(c.Path, e.board.Snapshot())
	if err != nil {
		log.Printf("engine: save failed: %v", err)
	}
	reply(c.Done, err)
}

// Load replaces the board with the snapshot stored at Path. Done, when set,
// receives the result.
type Load struct {
	Path string
	Done chan<- error
}

func (c Load) apply(e *Engine) {
	snap, err := persist.Load(c.Path)
	if err == nil {
		err = e.board.Restore(snap)
	}
	if err != nil {
		log.Printf("engine: load failed: %v", err)
	}
	reply(c.Done, err)
}

// reply delivers v without blocking the engine. A reader whose channel is
// still full has not consumed the previous reply, so v is dropped.
func reply[T any](ch chan<- T, v T) {
	if ch == nil {
		return
	}
	select {
	case ch <- v:
	default:
	}
}
