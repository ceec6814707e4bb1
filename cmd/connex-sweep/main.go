// Command connex-sweep runs a grid of parameter sets over several seeds in
// parallel and ranks them by how far the boards grew.
package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"connex/internal/app"
	"connex/internal/board"
)

// axis is one swept parameter and the values it takes.
type axis struct {
	key    string
	values []string
}

func parseAxis(s string) (axis, error) {
	key, list, ok := strings.Cut(s, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" || list == "" {
		return axis{}, fmt.Errorf("vary %q: want key=v1,v2,...", s)
	}
	a := axis{key: key}
	for _, v := range strings.Split(list, ",") {
		if v = strings.TrimSpace(v); v != "" {
			a.values = append(a.values, v)
		}
	}
	if len(a.values) == 0 {
		return axis{}, fmt.Errorf("vary %q: no values", s)
	}
	return a, nil
}

// expand returns the cartesian product of the axes layered over base.
func expand(base map[string]string, axes []axis) []map[string]string {
	sets := []map[string]string{clone(base)}
	for _, a := range axes {
		next := make([]map[string]string, 0, len(sets)*len(a.values))
		for _, s := range sets {
			for _, v := range a.values {
				m := clone(s)
				m[a.key] = v
				next = append(next, m)
			}
		}
		sets = next
	}
	return sets
}

func clone(m map[string]string) map[string]string {
	out := make(map[string]string, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	return out
}

type job struct {
	label string
	sim   string
	pairs map[string]string
}

type result struct {
	label      string
	seeds      int
	meanLevel  float64
	maxLevel   uint32
	energy     float64
	liveWaves  float64
	elapsedAvg time.Duration
	err        error
}

type stats struct {
	meanLevel float64
	maxLevel  uint32
	energy    float64
	liveWaves int
}

func measure(b *board.Board) stats {
	snap := b.Snapshot()
	var s stats
	var sum uint64
	for i, n := range snap.Connex {
		sum += uint64(n)
		s.maxLevel = max(s.maxLevel, n)
		if snap.Alpha[i] != board.ZeroAlpha {
			s.liveWaves++
		}
	}
	if len(snap.Connex) > 0 {
		s.meanLevel = float64(sum) / float64(len(snap.Connex))
	}
	s.energy = b.TotalEnergy()
	return s
}

func runScenario(j job, seeds []int64, ticks int) result {
	res := result{label: j.label, seeds: len(seeds)}
	var total time.Duration
	for _, seed := range seeds {
		pairs := clone(j.pairs)
		pairs["seed"] = strconv.FormatInt(seed, 10)
		b, err := app.NewBoard(j.sim, pairs)
		if err != nil {
			res.err = err
			return res
		}

		start := time.Now()
		for i := 0; i < ticks; i++ {
			b.Update()
		}
		total += time.Since(start)

		s := measure(b)
		res.meanLevel += s.meanLevel
		res.maxLevel = max(res.maxLevel, s.maxLevel)
		res.energy += s.energy
		res.liveWaves += float64(s.liveWaves)
	}
	n := float64(len(seeds))
	res.meanLevel /= n
	res.energy /= n
	res.liveWaves /= n
	res.elapsedAvg = total / time.Duration(len(seeds))
	return res
}

func label(pairs map[string]string, axes []axis) string {
	parts := make([]string, 0, len(axes))
	for _, a := range axes {
		parts = append(parts, a.key+"="+pairs[a.key])
	}
	if len(parts) == 0 {
		return "base"
	}
	return strings.Join(parts, " ")
}

func main() {
	ticks := flag.Int("ticks", 300, "ticks to simulate per run")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel scenario evaluations")
	seedCount := flag.Int("seeds", 3, "seeds per parameter set")
	firstSeed := flag.Int64("seed", 1, "first seed; later runs use consecutive seeds")
	width := flag.Int("w", 96, "board width")
	height := flag.Int("h", 96, "board height")
	top := flag.Int("top", 10, "results to print")
	sim := flag.String("sim", "connex", "registered board to sweep")
	var overrides, vary app.KVList
	flag.Var(&overrides, "set", "fixed parameter override in key=value form (repeatable)")
	flag.Var(&vary, "vary", "swept parameter in key=v1,v2,... form (repeatable)")
	flag.Parse()

	var axes []axis
	for _, s := range vary {
		a, err := parseAxis(s)
		if err != nil {
			log.Fatal(err)
		}
		axes = append(axes, a)
	}
	base := overrides.Map()
	base["w"] = strconv.Itoa(*width)
	base["h"] = strconv.Itoa(*height)
	// Scenarios already run in parallel; keep each board on one goroutine.
	base["workers"] = "1"

	seeds := make([]int64, max(*seedCount, 1))
	for i := range seeds {
		seeds[i] = *firstSeed + int64(i)
	}

	sets := expand(base, axes)
	fmt.Printf("Sweeping %d parameter sets x %d seeds (%d workers, %d ticks)\n", len(sets), len(seeds), *workers, *ticks)

	jobs := make(chan job)
	results := make(chan result)
	var wg sync.WaitGroup
	for i := 0; i < max(*workers, 1); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results <- runScenario(j, seeds, *ticks)
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()
	go func() {
		for _, pairs := range sets {
			jobs <- job{label: label(pairs, axes), sim: *sim, pairs: pairs}
		}
		close(jobs)
	}()

	start := time.Now()
	var all []result
	for res := range results {
		if res.err != nil {
			log.Fatalf("%s: %v", res.label, res.err)
		}
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].meanLevel > all[j].meanLevel })

	fmt.Printf("\nTop %d results (elapsed %s):\n", min(*top, len(all)), time.Since(start).Round(time.Millisecond))
	for i := 0; i < len(all) && i < *top; i++ {
		r := all[i]
		fmt.Printf("%2d) level mean=%.3f max=%d energy=%.1f waves=%.1f %s/run  %s\n",
			i+1, r.meanLevel, r.maxLevel, r.energy, r.liveWaves, r.elapsedAvg.Round(time.Millisecond), r.label)
	}
}
