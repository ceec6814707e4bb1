package board

import "math"

// Discharge nudges indexed by the level sub-group ((n-1)/5) mod 5.
var (
	levelStabilityNudge  = [5]float32{0.01, -0.005, 0.02, 0, -0.01}
	levelEnergyNudge     = [5]float32{-1, 0.5, -2, 1, 0}
	levelReactivityNudge = [5]float32{0, 0.01, -0.01, 0.02, -0.02}
)

const (
	lowTierMax      = 20
	lowTierGain     = 0.05
	lowTierScale    = 10
	highTierGain    = 0.02
	highTierScale   = 60
	levelCostBase   = 1
	levelCostQuad   = 0.01
	levelDriveLimit = 5
)

// gammaRegen is the per-tick charge a level regenerates.
func gammaRegen(n uint32) float32 {
	if n <= lowTierMax {
		return float32(lowTierGain * math.Exp(-float64(n)/lowTierScale))
	}
	return float32(highTierGain * math.Exp(-float64(n-lowTierMax)/highTierScale))
}

// levelCost is the charge a discharge at level n consumes.
func levelCost(n uint32) float32 {
	fn := float32(n)
	return levelCostBase + levelCostQuad*fn*fn
}

func levelSubGroup(n uint32) int {
	return int((n-1)/5) % 5
}

// adjustLevels regenerates charge, fires level discharges and applies the
// vertical pipes.
func (b *Board) adjustLevels() {
	g := b.grids
	w, h := b.w, b.h
	connexR, connexW := g.Connex.Read(), g.Connex.Write()
	stabR, stabW := g.Stability.Read(), g.Stability.Write()
	reactR, reactW := g.Reactivity.Read(), g.Reactivity.Write()
	energyR, energyW := g.Energy.Read(), g.Energy.Write()
	gammaR, gammaW := g.Gamma.Read(), g.Gamma.Write()
	deltaR, deltaW := g.Delta.Read(), g.Delta.Write()

	changed := b.forEachRow(func(y0, y1 int) float64 {
		sum := 0.0
		for y := y0; y < y1; y++ {
			for x := 0; x < w; x++ {
				idx := y*w + x
				n := connexR[idx]
				s := stabR[idx]
				r := reactR[idx]
				e := energyR[idx]
				gm := gammaR[idx]
				d := deltaR[idx]

				if d&BitNoGen == 0 {
					gm += gammaRegen(n)
				}

				if n > 0 {
					if cost := levelCost(n); gm >= cost {
						drive := clampf(r*e, -levelDriveLimit, levelDriveLimit)
						sg := levelSubGroup(n)
						switch {
						case drive > 0 && n < MaxConnex:
							n++
						case drive < 0:
							n--
						}
						s += levelStabilityNudge[sg]
						e += levelEnergyNudge[sg]
						r += levelReactivityNudge[sg]
						gm -= cost
					}
				}

				if only(d, BitPipeBelow, BitPipeAbove) && e >= pipeThreshold && y+1 < h {
					src := idx + w
					n, s, r, e, d = connexR[src], stabR[src], reactR[src], energyR[src], deltaR[src]
				} else if only(d, BitPipeAbove, BitPipeBelow) && e >= pipeThreshold && y > 0 {
					src := idx - w
					n, s, r, e, d = connexR[src], stabR[src], reactR[src], energyR[src], deltaR[src]
					e -= pipeCost
				}

				connexW[idx] = n
				stabW[idx] = s
				reactW[idx] = r
				energyW[idx] = e
				gammaW[idx] = gm
				deltaW[idx] = d
				sum += float64(e - energyR[idx])
			}
		}
		return sum
	})

	g.Connex.Swap()
	g.Stability.Swap()
	g.Reactivity.Swap()
	g.Energy.Swap()
	g.Gamma.Swap()
	g.Delta.Swap()
	b.totalEnergy += changed
}
