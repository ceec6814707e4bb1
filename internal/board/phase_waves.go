package board

// aggregateWaves moves every wave one step along its direction. A cell
// collects the waves of itself and its cardinal neighbors whose direction
// points at it, merges their deltas and keeps the shortest countdown.
// Carried energy is deposited on arrival.
func (b *Board) aggregateWaves() {
	g := b.grids
	w, h := b.w, b.h
	alphaR, alphaW := g.Alpha.Read(), g.Alpha.Write()
	betaR, betaW := g.Beta.Read(), g.Beta.Write()
	energyR, energyW := g.Energy.Read(), g.Energy.Write()

	deposited := b.forEachRow(func(y0, y1 int) float64 {
		sum := 0.0
		for y := y0; y < y1; y++ {
			for x := 0; x < w; x++ {
				idx := y*w + x

				var merged Wave
				var minCounter, bestCounter uint32
				var bestBeta uint64
				haveCounter, found := false, false

				for _, src := range waveSources {
					nx, ny := x+src[0], y+src[1]
					if nx < 0 || ny < 0 || nx >= w || ny >= h {
						continue
					}
					nidx := ny*w + nx
					a := alphaR[nidx]
					if a == ZeroAlpha {
						continue
					}
					sx, sy := betaStep(betaR[nidx])
					if sx != -src[0] || sy != -src[1] {
						continue
					}
					wave := DecodeWave(a)
					if wave.Counter > 0 && (!haveCounter || wave.Counter < minCounter) {
						minCounter = wave.Counter
						haveCounter = true
					}
					if !found || wave.Counter > bestCounter {
						bestCounter = wave.Counter
						bestBeta = betaR[nidx]
						found = true
					}
					merged.Connex += wave.Connex
					merged.Stability += wave.Stability
					merged.Energy += wave.Energy
					merged.Reactivity += wave.Reactivity
				}

				if !found {
					alphaW[idx] = ZeroAlpha
					betaW[idx] = betaR[idx]
					energyW[idx] = energyR[idx]
					continue
				}

				var counter uint32
				if haveCounter {
					counter = minCounter - 1
				}
				alphaW[idx] = EncodeAlpha(counter, merged.Connex, merged.Stability, 0, merged.Reactivity)
				betaW[idx] = bestBeta
				energyW[idx] = energyR[idx] + merged.Energy
				sum += float64(merged.Energy)
			}
		}
		return sum
	})

	g.Alpha.Swap()
	g.Beta.Swap()
	g.Energy.Swap()
	b.totalEnergy += deposited
}
