package app

import (
	"flag"
	"testing"
)

func TestBindAndBoardConfig(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("connex", flag.ContinueOnError)
	cfg.Bind(fs)

	args := []string{"-w", "64", "-seed", "5", "-set", "connex_max=150", "-set", "h=48", "-set", "broken"}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	bc := cfg.BoardConfig()
	if bc.Width != 64 || bc.Height != 48 || bc.Seed != 5 {
		t.Fatalf("board config = %dx%d seed %d", bc.Width, bc.Height, bc.Seed)
	}
	if bc.Bounds.ConnexMax != 150 {
		t.Fatalf("connex_max = %d, want 150", bc.Bounds.ConnexMax)
	}
	if len(cfg.Set) != 3 || len(cfg.Set.Map()) != 2 {
		t.Fatalf("overrides = %v", cfg.Set)
	}
}

func TestNewBoardUsesRegistry(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("connex", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-w", "24", "-h", "18", "-set", "stability_max=0.5"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	b, err := cfg.NewBoard()
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	if s := b.Size(); s.W != 24 || s.H != 18 {
		t.Fatalf("size = %+v, want 24x18", s)
	}
	if got := b.Config().Bounds.StabilityMax; got != 0.5 {
		t.Fatalf("stability_max = %v, want 0.5", got)
	}

	cfg.Sim = "lava"
	if _, err := cfg.NewBoard(); err == nil {
		t.Fatal("an unregistered sim should be rejected")
	}
}
