package board

import (
	"math"

	"github.com/ojrac/opensimplex-go"

	"connex/internal/core"
)

// stabilityOctaves are the frequency multipliers of the five stability layers.
var stabilityOctaves = [5]float64{1, 2, 4, 8, 0.5}

// Generate seeds every grid in g from coherent noise and rng. Both buffers of
// each grid receive the same contents.
func Generate(cfg GenConfig, rng *core.RNG, g *Grids) {
	w, h := g.Connex.W, g.Connex.H
	if w == 0 || h == 0 {
		return
	}

	var layers [5]opensimplex.Noise
	for i := range layers {
		layers[i] = opensimplex.NewNormalized(rng.Int64())
	}
	reactNoise := opensimplex.NewNormalized(rng.Int64())
	energyNoise := opensimplex.NewNormalized(rng.Int64())

	connex := g.Connex.Write()
	stab := g.Stability.Write()
	react := g.Reactivity.Write()
	energy := g.Energy.Write()

	for y := 0; y < h; y++ {
		fy := float64(y)
		for x := 0; x < w; x++ {
			fx := float64(x)
			idx := y*w + x

			var n [5]float64
			for i, layer := range layers {
				f := cfg.StabilityScale * stabilityOctaves[i]
				n[i] = layer.Eval2(fx*f, fy*f)
			}
			s := float32(blendStability(n))
			stab[idx] = s
			connex[idx] = uint32(math.Floor(float64(s) * 20))

			r := reactNoise.Eval2(fx*cfg.ReactivityScale, fy*cfg.ReactivityScale)
			react[idx] = clampf(float32(r*2-1), -1, 1)

			e := energyNoise.Eval2(fx*cfg.EnergyScale, fy*cfg.EnergyScale)
			energy[idx] = float32(math.Max(e, 0) * cfg.EnergyAmplitude)
		}
	}

	g.Connex.Load(connex)
	g.Stability.Load(stab)
	g.Reactivity.Load(react)
	g.Energy.Load(energy)
	g.Alpha.Fill(ZeroAlpha)
	g.Beta.Fill(0)
	g.Gamma.Fill(0)
	g.Omega.Fill(0)

	delta := g.Delta.Write()
	sprinkleDelta(cfg, rng, delta)
	g.Delta.Load(delta)
}

// blendStability combines five normalized layers into a stability in [0, 1].
func blendStability(n [5]float64) float64 {
	ridge := n[0] * n[1]
	body := 0.6*n[2] + 0.4*n[3]
	return clamp01(math.Max(ridge, body) * (0.5 + 0.5*n[4]))
}

// sprinkleDelta sets one random bit on roughly DeltaDensity of the cells and
// occasionally ORs in extra bits.
func sprinkleDelta(cfg GenConfig, rng *core.RNG, delta []uint64) {
	for i := range delta {
		delta[i] = 0
		if rng.Float64() >= cfg.DeltaDensity {
			continue
		}
		bits := rng.Bit()
		for try := 0; try < cfg.DeltaExtraTries; try++ {
			if rng.Float64() < cfg.DeltaExtraChance {
				bits |= rng.Bit()
			}
		}
		delta[i] = bits
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
