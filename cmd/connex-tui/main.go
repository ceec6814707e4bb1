// Command connex-tui runs a board in the terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"

	"connex/internal/app"
	"connex/internal/engine"
	"connex/internal/persist"
	"connex/internal/tui"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	b, err := cfg.NewBoard()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.LoadPath != "" {
		snap, err := persist.Load(cfg.LoadPath)
		if err != nil {
			log.Fatalf("load: %v", err)
		}
		if err := b.Restore(snap); err != nil {
			log.Fatalf("restore: %v", err)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("screen init: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	e := engine.New(b, engine.Options{TPS: cfg.TPS, Paused: cfg.Paused})
	viewer := tui.New(screen, e, tui.Options{
		Palette:  b.Palette(),
		Bounds:   b.Bounds(),
		Seed:     cfg.Seed,
		SavePath: cfg.SavePath,
		TPS:      cfg.TPS,
		Paused:   cfg.Paused,
	})

	errc := make(chan error, 1)
	go func() { errc <- e.Run(ctx) }()

	err = viewer.Run(ctx)
	cancel()
	<-errc
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}
