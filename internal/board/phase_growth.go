package board

// Per-channel investment cost and wave delta, per unit of growth factor.
var (
	growthCost = [4]float32{
		ChannelReactivity: 0.2,
		ChannelStability:  0.3,
		ChannelEnergy:     0.5,
		ChannelConnex:     1.0,
	}
	growthReactivityStep float32 = 0.002
	growthStabilityStep  float32 = 0.001
)

// growthOmegaGain scales the gf² omega contribution of omega-channel levels.
const growthOmegaGain = 0.01

// spawnGrowth lets every grown cell invest energy into a wave aimed at the
// neighbor selected by its level.
func (b *Board) spawnGrowth() {
	g := b.grids
	w := b.w
	connex := g.Connex.Read()
	stab := g.Stability.Read()
	delta := g.Delta.Read()
	alphaR, alphaW := g.Alpha.Read(), g.Alpha.Write()
	betaR, betaW := g.Beta.Read(), g.Beta.Write()
	energyR, energyW := g.Energy.Read(), g.Energy.Write()
	omegaR, omegaW := g.Omega.Read(), g.Omega.Write()

	spent := b.forEachRow(func(y0, y1 int) float64 {
		used := 0.0
		for y := y0; y < y1; y++ {
			for x := 0; x < w; x++ {
				idx := y*w + x
				alphaW[idx] = alphaR[idx]
				betaW[idx] = betaR[idx]
				energyW[idx] = energyR[idx]
				omegaW[idx] = omegaR[idx]

				n := connex[idx]
				if n == 0 {
					continue
				}
				ch := ChannelsFor(n)
				gf := GrowthFactor(n)
				fgf := float32(gf)
				if delta[idx]&BitNoGrowth != 0 {
					continue
				}

				dir := uint64(n-1) % uint64(len(Directions))
				sx, sy := betaStep(dir)
				tx, ty := x+sx, y+sy
				if !b.inBounds(tx, ty) {
					continue
				}
				if ch.Has(ChannelOmega) {
					omegaW[idx] += growthOmegaGain * fgf * fgf
				}
				resist := 1 + max(stab[ty*w+tx], 0)

				var cost float32
				var inv Wave
				if ch.Has(ChannelReactivity) {
					cost += growthCost[ChannelReactivity] * fgf * resist
					inv.Reactivity += growthReactivityStep * fgf
				}
				if ch.Has(ChannelStability) {
					cost += growthCost[ChannelStability] * fgf * resist
					inv.Stability += growthStabilityStep * fgf
				}
				if ch.Has(ChannelEnergy) {
					carried := growthCost[ChannelEnergy] * fgf * resist
					cost += carried
					inv.Energy += carried
				}
				if ch.Has(ChannelConnex) {
					cost += growthCost[ChannelConnex] * fgf * resist
					inv.Connex++
				}
				if cost > energyR[idx] {
					continue
				}

				wave := DecodeWave(alphaR[idx])
				step := gf
				if delta[idx]&BitFastWave != 0 {
					step *= 2
				}
				wave.Counter = min(wave.Counter+step, MaxWaveCounter)
				wave.Connex += inv.Connex
				wave.Stability += inv.Stability
				wave.Energy += inv.Energy
				wave.Reactivity += inv.Reactivity

				alphaW[idx] = wave.Encode()
				betaW[idx] = dir
				energyW[idx] = energyR[idx] - cost
				used += float64(cost)
			}
		}
		return used
	})

	g.Alpha.Swap()
	g.Beta.Swap()
	g.Energy.Swap()
	g.Omega.Swap()
	b.totalEnergy -= spent
}
