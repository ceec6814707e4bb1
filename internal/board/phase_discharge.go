package board

// applyDischarge lands every wave whose countdown reached zero, then applies
// horizontal pipes, beacons and pins.
func (b *Board) applyDischarge() {
	g := b.grids
	w, h := b.w, b.h
	connexR, connexW := g.Connex.Read(), g.Connex.Write()
	stabR, stabW := g.Stability.Read(), g.Stability.Write()
	reactR, reactW := g.Reactivity.Read(), g.Reactivity.Write()
	energyR, energyW := g.Energy.Read(), g.Energy.Write()
	gammaR, gammaW := g.Gamma.Read(), g.Gamma.Write()
	alphaR, alphaW := g.Alpha.Read(), g.Alpha.Write()
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
				a := alphaR[idx]
				d := deltaR[idx]

				if a != ZeroAlpha && WaveCounter(a) == 0 {
					n, s, r, e = discharge(n, s, r, e, DecodeWave(a))
					a = ZeroAlpha
				}

				if only(d, BitPipeRight, BitPipeLeft) && e >= pipeThreshold && x+1 < w {
					src := idx + 1
					n, s, r, e, d = connexR[src], stabR[src], reactR[src], energyR[src], deltaR[src]
				} else if only(d, BitPipeLeft, BitPipeRight) && e >= pipeThreshold && x > 0 {
					src := idx - 1
					n, s, r, e, d = connexR[src], stabR[src], reactR[src], energyR[src], deltaR[src]
					e -= pipeCost
				}

				for _, t := range mooreTaps {
					nx, ny := x+t.dx, y+t.dy
					if nx < 0 || ny < 0 || nx >= w || ny >= h {
						continue
					}
					nidx := ny*w + nx
					if deltaR[nidx]&BitBeacon != 0 {
						n, s, r = connexR[nidx], stabR[nidx], reactR[nidx]
					}
				}

				if d&BitPinStability != 0 {
					s = 1
				}
				if d&BitPinReactivity != 0 {
					r = 0
				}
				if d&BitPinGamma != 0 {
					gm = 0
				}

				connexW[idx] = n
				stabW[idx] = s
				reactW[idx] = r
				energyW[idx] = e
				gammaW[idx] = gm
				alphaW[idx] = a
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
	g.Alpha.Swap()
	g.Delta.Swap()
	b.totalEnergy += changed
}

// discharge applies a landed wave to one cell. The level only moves when the
// cell can pay the ConnexPow difference out of its energy plus the carried
// energy.
func discharge(n uint32, s, r, e float32, wave Wave) (uint32, float32, float32, float32) {
	target := int32(n) + wave.Connex
	if target < 0 {
		target = 0
	}
	if target > MaxConnex {
		target = MaxConnex
	}
	net := ConnexPow(uint32(target)) - ConnexPow(n)
	available := e + wave.Energy
	gf := float32(GrowthFactor(n))

	s += wave.Stability / gf
	r += wave.Reactivity
	if net <= available {
		return uint32(target), s, r, available - net
	}
	return n, s, r, available
}
