//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"connex/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	b, err := cfg.NewBoard()
	if err != nil {
		log.Fatal(err)
	}
	game := app.New(b, cfg)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("connex")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
