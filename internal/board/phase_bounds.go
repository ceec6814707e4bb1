package board

// forgeDelta holds the reserved slot between discharge and bounds. It
// currently leaves every grid untouched.
func (b *Board) forgeDelta() {}

// applyBounds clamps connex, stability, reactivity and energy into the
// configured ranges.
func (b *Board) applyBounds() {
	g := b.grids
	w := b.w
	bounds := b.cfg.Bounds
	connexR, connexW := g.Connex.Read(), g.Connex.Write()
	stabR, stabW := g.Stability.Read(), g.Stability.Write()
	reactR, reactW := g.Reactivity.Read(), g.Reactivity.Write()
	energyR, energyW := g.Energy.Read(), g.Energy.Write()

	clipped := b.forEachRow(func(y0, y1 int) float64 {
		sum := 0.0
		for i := y0 * w; i < y1*w; i++ {
			n := connexR[i]
			if n < bounds.ConnexMin {
				n = bounds.ConnexMin
			}
			if n > bounds.ConnexMax {
				n = bounds.ConnexMax
			}
			connexW[i] = n
			stabW[i] = clampf(stabR[i], bounds.StabilityMin, bounds.StabilityMax)
			reactW[i] = clampf(reactR[i], bounds.ReactivityMin, bounds.ReactivityMax)

			e := energyR[i]
			if e < bounds.EnergyMin {
				sum += float64(bounds.EnergyMin - e)
				e = bounds.EnergyMin
			}
			energyW[i] = e
		}
		return sum
	})

	g.Connex.Swap()
	g.Stability.Swap()
	g.Reactivity.Swap()
	g.Energy.Swap()
	b.totalEnergy += clipped
}
