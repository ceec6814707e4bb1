package board

const (
	omegaExchangeRate   = 1.0 / 8
	omegaEnergyYield    = 105
	omegaAbsorptionCost = 0.5
)

// omegaSaturation ramps from 0 at omega 1 to 1 at omega 2. Below 1 the field
// does not exchange at all.
func omegaSaturation(o float32) float32 {
	if o < 1 {
		return 0
	}
	return clampf(o-1, 0, 1)
}

// updateOmega moves reactivity out of cells toward saturated neighbors and
// lets saturated cells turn absorbed reactivity into energy.
func (b *Board) updateOmega() {
	g := b.grids
	w, h := b.w, b.h
	omegaR, omegaW := g.Omega.Read(), g.Omega.Write()
	reactR, reactW := g.Reactivity.Read(), g.Reactivity.Write()
	energyR, energyW := g.Energy.Read(), g.Energy.Write()

	gained := b.forEachRow(func(y0, y1 int) float64 {
		sum := 0.0
		for y := y0; y < y1; y++ {
			for x := 0; x < w; x++ {
				idx := y*w + x
				r := reactR[idx]
				o := omegaR[idx]
				selfSat := omegaSaturation(o)

				var released, absorbed float32
				for _, t := range mooreTaps {
					nx, ny := x+t.dx, y+t.dy
					if nx < 0 || ny < 0 || nx >= w || ny >= h {
						continue
					}
					nidx := ny*w + nx
					if on := omegaR[nidx]; on >= 1 {
						released += r * omegaSaturation(on) * omegaExchangeRate
					}
					if o >= 1 {
						absorbed += reactR[nidx] * selfSat * omegaExchangeRate
					}
				}

				released = clampf(released, -1, 1)
				nr := r - released
				if absf(released) > absf(r) {
					nr = 0
				}
				gain := omegaEnergyYield * absf(absorbed)

				reactW[idx] = nr
				energyW[idx] = energyR[idx] + gain
				omegaW[idx] = max(o-omegaAbsorptionCost*absf(absorbed), 0)
				sum += float64(gain)
			}
		}
		return sum
	})

	g.Reactivity.Swap()
	g.Energy.Swap()
	g.Omega.Swap()
	b.totalEnergy += gained
}
