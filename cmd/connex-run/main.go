// Command connex-run advances a board without a window and reports energy as
// it goes. It is meant for tuning and profiling.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"connex/internal/app"
	"connex/internal/engine"
	"connex/internal/persist"
)

func main() {
	ticks := flag.Int("ticks", 600, "ticks to simulate")
	report := flag.Int("report", 100, "ticks between progress lines (0 disables)")
	load := flag.String("load", "", "snapshot to start from")
	save := flag.String("save", "", "write the final board to this file")
	cpuprofile := flag.String("cpuprofile", "", "write a CPU profile to this file")
	sim := flag.String("sim", "connex", "registered board to run")
	var overrides app.KVList
	flag.Var(&overrides, "set", "board parameter override in key=value form (repeatable)")
	flag.Parse()

	if *cpuprofile != "" {
		stop, err := startCPUProfile(*cpuprofile)
		if err != nil {
			log.Fatalf("cpuprofile: %v", err)
		}
		defer stop()
	}

	b, err := app.NewBoard(*sim, overrides.Map())
	if err != nil {
		log.Fatal(err)
	}
	cfg := b.Config()
	if *load != "" {
		snap, err := persist.Load(*load)
		if err != nil {
			log.Fatalf("load: %v", err)
		}
		if err := b.Restore(snap); err != nil {
			log.Fatalf("restore: %v", err)
		}
	}
	size := b.Size()
	log.Printf("board %dx%d seed %d workers %d, energy %.2f", size.W, size.H, cfg.Seed, cfg.Workers, b.TotalEnergy())

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	e := engine.New(b, engine.DefaultOptions())
	chunk := *report
	if chunk <= 0 {
		chunk = *ticks
	}
	start := time.Now()
	done := 0
	for done < *ticks && ctx.Err() == nil {
		n := min(chunk, *ticks-done)
		e.RunTicks(n)
		done += n
		if *report > 0 {
			log.Printf("tick %d energy %.2f", e.Tick(), e.TotalEnergy())
		}
	}
	elapsed := time.Since(start)
	if done > 0 {
		log.Printf("%d ticks in %s (%.2f ms/tick)", done, elapsed.Round(time.Millisecond),
			float64(elapsed.Microseconds())/1000/float64(done))
	}

	if *save != "" {
		if err := persist.Save(*save, b.Snapshot()); err != nil {
			log.Fatalf("save: %v", err)
		}
		log.Printf("saved %s", *save)
	}
}
