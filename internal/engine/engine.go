// Package engine drives a board on its own goroutine and serializes every
// external edit through a command queue.
package engine

import (
	"context"
	"errors"
	"image"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"connex/internal/board"
	"connex/internal/core"
)

var (
	// ErrQueueFull is returned by Submit when the command buffer is full.
	ErrQueueFull = errors.New("engine: command queue full")
	// ErrStopped is returned by Submit once Run has returned.
	ErrStopped = errors.New("engine: stopped")
)

// Options tunes an Engine.
type Options struct {
	TPS       int
	QueueSize int
	Paused    bool
}

// DefaultOptions returns the standard engine settings.
func DefaultOptions() Options {
	return Options{TPS: 30, QueueSize: 256}
}

// Engine owns a board, a tick timer and the command queue feeding it.
type Engine struct {
	board *board.Board
	timer *core.FixedStep
	cmds  chan Command
	dirty chan struct{}

	paused  bool
	pending int

	stopped atomic.Bool
	energy  atomic.Uint64
	tick    atomic.Uint64

	mu       sync.Mutex
	viewport image.Rectangle
}

// New wraps b. The board must not be touched directly once Run starts.
func New(b *board.Board, opts Options) *Engine {
	if opts.QueueSize <= 0 {
		opts.QueueSize = DefaultOptions().QueueSize
	}
	e := &Engine{
		board:  b,
		timer:  core.NewFixedStep(opts.TPS),
		cmds:   make(chan Command, opts.QueueSize),
		dirty:  make(chan struct{}, 1),
		paused: opts.Paused,
	}
	size := b.Size()
	e.viewport = image.Rectangle{Min: b.Position(), Max: b.Position().Add(image.Pt(size.W, size.H))}
	e.publish()
	return e
}

// Submit queues cmd without blocking.
func (e *Engine) Submit(cmd Command) error {
	if e.stopped.Load() {
		return ErrStopped
	}
	select {
	case e.cmds <- cmd:
		return nil
	default:
		return ErrQueueFull
	}
}

// Dirty signals once per batch of ticks that the board changed. Signals
// coalesce while nobody is reading.
func (e *Engine) Dirty() <-chan struct{} { return e.dirty }

// TotalEnergy returns the energy sum published after the latest tick.
func (e *Engine) TotalEnergy() float64 { return math.Float64frombits(e.energy.Load()) }

// Tick returns the tick count published after the latest tick.
func (e *Engine) Tick() uint64 { return e.tick.Load() }

// Viewport returns the default board-space rectangle for CopyView.
func (e *Engine) Viewport() image.Rectangle {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.viewport
}

// SetViewport replaces the default CopyView rectangle. Safe for concurrent use.
func (e *Engine) SetViewport(r image.Rectangle) {
	e.mu.Lock()
	e.viewport = r.Canon()
	e.mu.Unlock()
}

// Run ticks the board until ctx is cancelled. Queued commands are applied
// before every tick.
func (e *Engine) Run(ctx context.Context) error {
	defer e.stopped.Store(true)

	wait := time.NewTimer(e.timer.Interval())
	defer wait.Stop()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		e.drain()

		if e.pending > 0 {
			e.pending--
			e.step()
			continue
		}
		if !e.paused && e.timer.ShouldStep() {
			e.step()
			continue
		}

		var timeout <-chan time.Time
		if !e.paused {
			resetTimer(wait, e.timer.Wait())
			timeout = wait.C
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case cmd := <-e.cmds:
			e.exec(cmd)
		case <-timeout:
		}
	}
}

// RunTicks applies queued commands and advances n ticks on the calling
// goroutine. It must not be used while Run is active.
func (e *Engine) RunTicks(n int) {
	for i := 0; i < n; i++ {
		e.drain()
		e.step()
	}
	e.drain()
}

// Advance is the frame-driven alternative to Run: it applies queued commands
// and runs at most one tick, honoring Pause and Step. It reports whether a
// tick ran.
func (e *Engine) Advance() bool {
	e.drain()
	switch {
	case e.pending > 0:
		e.pending--
	case e.paused:
		return false
	}
	e.step()
	return true
}

// Paused reports whether automatic ticking is off. Only meaningful on the
// goroutine driving the engine.
func (e *Engine) Paused() bool { return e.paused }

func (e *Engine) drain() {
	for {
		select {
		case cmd := <-e.cmds:
			e.exec(cmd)
		default:
			return
		}
	}
}

// exec applies cmd and republishes when it changed the board.
func (e *Engine) exec(cmd Command) {
	cmd.apply(e)
	if e.board.Dirty() {
		e.publish()
	}
}

func (e *Engine) step() {
	e.board.Update()
	e.publish()
}

func (e *Engine) publish() {
	e.energy.Store(math.Float64bits(e.board.TotalEnergy()))
	e.tick.Store(e.board.Tick())
	e.board.ClearDirty()
	select {
	case e.dirty <- struct{}{}:
	default:
	}
}

func resetTimer(t *time.Timer, d time.Duration) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
	t.Reset(d)
}
