package app

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"connex/internal/board"
	"connex/internal/core"
)

// KVList collects repeatable key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

func (l *KVList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Map returns the well-formed pairs; later keys win.
func (l KVList) Map() map[string]string {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 || parts[0] == "" {
			continue
		}
		out[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return out
}

// Config holds the options shared by the viewers.
type Config struct {
	Sim     string
	Width   int
	Height  int
	Seed    int64
	Workers int

	Scale    int
	TPS      int
	HUDWidth int
	Paused   bool

	SavePath string
	LoadPath string

	Set KVList
}

// NewConfig returns the viewer defaults.
func NewConfig() *Config {
	def := board.DefaultConfig()
	return &Config{
		Sim:      "connex",
		Width:    def.Width,
		Height:   def.Height,
		Seed:     def.Seed,
		Scale:    3,
		TPS:      30,
		HUDWidth: 260,
		SavePath: "connex.save",
	}
}

// Bind registers the options on fs.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "registered board to run")
	fs.IntVar(&c.Width, "w", c.Width, "board width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "board height in cells")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "field generator seed")
	fs.IntVar(&c.Workers, "workers", c.Workers, "pipeline worker goroutines (0 = GOMAXPROCS)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels (0 hides it)")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "start paused")
	fs.StringVar(&c.SavePath, "save", c.SavePath, "file written by the save key")
	fs.StringVar(&c.LoadPath, "load", c.LoadPath, "snapshot to load at startup")
	fs.Var(&c.Set, "set", "board parameter override in key=value form (repeatable)")
}

// Pairs merges the flags and overrides into the key=value form board.FromMap
// reads. Explicit -set pairs take precedence over the dedicated flags.
func (c *Config) Pairs() map[string]string {
	pairs := map[string]string{
		"w":       strconv.Itoa(c.Width),
		"h":       strconv.Itoa(c.Height),
		"seed":    strconv.FormatInt(c.Seed, 10),
		"workers": strconv.Itoa(c.Workers),
	}
	for k, v := range c.Set.Map() {
		pairs[k] = v
	}
	return pairs
}

// BoardConfig returns the board configuration the flags describe.
func (c *Config) BoardConfig() board.Config {
	return board.FromMap(c.Pairs())
}

// NewBoard builds the board named by Sim through the sim registry.
func (c *Config) NewBoard() (*board.Board, error) {
	return NewBoard(c.Sim, c.Pairs())
}

// NewBoard looks up name in the sim registry and builds it from pairs. The
// registered sim must be a *board.Board.
func NewBoard(name string, pairs map[string]string) (*board.Board, error) {
	factory, ok := core.Sims()[name]
	if !ok {
		return nil, fmt.Errorf("unknown sim %q (have %s)", name, strings.Join(core.Names(), ", "))
	}
	b, ok := factory(pairs).(*board.Board)
	if !ok {
		return nil, fmt.Errorf("sim %q is not a connex board", name)
	}
	return b, nil
}
