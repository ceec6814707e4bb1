package board

const (
	energyFlowRate = 1.0 / 100

	gammaFlowRate  = 1.0 / 8
	gammaDecayRate = 0.002
	gammaSnap      = 0.001

	omegaFlowRate = 1.0 / 200
	omegaDecay    = 0.99
	omegaSnap     = 0.0001
)

// convolveEnergy diffuses energy between neighbors, gated by how unstable both
// cells are, and recomputes the running total from the result.
func (b *Board) convolveEnergy() {
	g := b.grids
	w, h := b.w, b.h
	stab := g.Stability.Read()
	energyR, energyW := g.Energy.Read(), g.Energy.Write()

	total := b.forEachRow(func(y0, y1 int) float64 {
		sum := 0.0
		for y := y0; y < y1; y++ {
			for x := 0; x < w; x++ {
				idx := y*w + x
				e := energyR[idx]
				open := 1 - stab[idx]
				var flow float32
				for _, t := range energyKernel {
					nx, ny := x+t.dx, y+t.dy
					if nx < 0 || ny < 0 || nx >= w || ny >= h {
						continue
					}
					nidx := ny*w + nx
					flow += t.w * open * (1 - stab[nidx]) * (energyR[nidx] - e)
				}
				ne := e + flow*energyFlowRate
				energyW[idx] = ne
				sum += float64(ne)
			}
		}
		return sum
	})

	g.Energy.Swap()
	b.totalEnergy = total
}

// convolveGamma spreads charge between disordered, reactive neighbors and
// lets it decay.
func (b *Board) convolveGamma() {
	g := b.grids
	w, h := b.w, b.h
	stab := g.Stability.Read()
	react := g.Reactivity.Read()
	gammaR, gammaW := g.Gamma.Read(), g.Gamma.Write()

	b.forEachRow(func(y0, y1 int) float64 {
		for y := y0; y < y1; y++ {
			for x := 0; x < w; x++ {
				idx := y*w + x
				gm := gammaR[idx]
				si := stab[idx]
				ri := absf(react[idx])
				var flow float32
				for _, t := range fieldKernel {
					nx, ny := x+t.dx, y+t.dy
					if nx < 0 || ny < 0 || nx >= w || ny >= h {
						continue
					}
					nidx := ny*w + nx
					disorder := (2 - si - stab[nidx]) / 2
					activity := (ri + absf(react[nidx])) / 2
					flow += t.w * disorder * activity * (gammaR[nidx] - gm)
				}
				ng := gm + flow*gammaFlowRate - gammaDecayRate*gm
				if absf(ng) < gammaSnap {
					ng = 0
				}
				gammaW[idx] = ng
			}
		}
		return 0
	})

	g.Gamma.Swap()
}

// convolveOmega spreads the saturation field and decays it toward zero.
func (b *Board) convolveOmega() {
	g := b.grids
	w, h := b.w, b.h
	react := g.Reactivity.Read()
	omegaR, omegaW := g.Omega.Read(), g.Omega.Write()

	b.forEachRow(func(y0, y1 int) float64 {
		for y := y0; y < y1; y++ {
			for x := 0; x < w; x++ {
				idx := y*w + x
				o := omegaR[idx]
				ri := absf(react[idx])
				var flow float32
				for _, t := range fieldKernel {
					nx, ny := x+t.dx, y+t.dy
					if nx < 0 || ny < 0 || nx >= w || ny >= h {
						continue
					}
					nidx := ny*w + nx
					gate := max(ri*absf(react[nidx])+0.1, 1.0)
					flow += t.w * gate * (omegaR[nidx] - o)
				}
				no := (o + flow*omegaFlowRate) * omegaDecay
				if absf(no) < omegaSnap {
					no = 0
				}
				omegaW[idx] = no
			}
		}
		return 0
	})

	g.Omega.Swap()
}
