package board

import "testing"

func TestGrowthInvestsIntoWave(t *testing.T) {
	b := emptyBoard(3, 3)
	g := b.Grids()
	g.Connex.Set(4, 1)
	g.Energy.Set(4, 10)
	b.RecomputeTotalEnergy()

	b.spawnGrowth()

	wave := DecodeWave(g.Alpha.Read()[4])
	if wave.Counter != 1 {
		t.Fatalf("counter = %d, want 1", wave.Counter)
	}
	if !near(float64(wave.Reactivity), 0.002, 1e-6) {
		t.Fatalf("reactivity delta = %v, want 0.002", wave.Reactivity)
	}
	if g.Beta.Read()[4] != 0 {
		t.Fatalf("beta = %d, want 0", g.Beta.Read()[4])
	}
	if !near(float64(g.Energy.Read()[4]), 9.8, 1e-5) {
		t.Fatalf("energy = %v, want 9.8", g.Energy.Read()[4])
	}
	if !near(b.TotalEnergy(), 9.8, 1e-5) {
		t.Fatalf("total = %v, want 9.8", b.TotalEnergy())
	}
}

func TestGrowthSkipsWhenUnaffordableOrBlocked(t *testing.T) {
	b := emptyBoard(3, 3)
	g := b.Grids()
	g.Connex.Set(4, 1)
	g.Energy.Set(4, 0.1)
	g.Connex.Set(0, 1)
	g.Energy.Set(0, 10)
	g.Delta.Set(0, BitNoGrowth)
	g.Connex.Set(7, 1)
	g.Energy.Set(7, 10)

	b.spawnGrowth()

	for _, idx := range []int{0, 4, 7} {
		if g.Alpha.Read()[idx] != ZeroAlpha {
			t.Fatalf("cell %d should not have grown", idx)
		}
	}
	if g.Energy.Read()[7] != 10 {
		t.Fatal("growth off the board edge must not spend energy")
	}
}

func TestWaveMovesAlongBeta(t *testing.T) {
	b := emptyBoard(5, 5)
	g := b.Grids()
	src := 2*5 + 2
	g.Alpha.Set(src, EncodeAlpha(3, 1, 0, 0, 0))
	g.Beta.Set(src, 0)

	b.aggregateWaves()

	if g.Alpha.Read()[src] != ZeroAlpha {
		t.Fatal("source cell should be left inert")
	}
	dst := 3*5 + 2
	wave := DecodeWave(g.Alpha.Read()[dst])
	if wave.Counter != 2 || wave.Connex != 1 {
		t.Fatalf("arrived wave = %+v, want counter 2 connex 1", wave)
	}
	if g.Beta.Read()[dst] != 0 {
		t.Fatalf("arrived beta = %d, want 0", g.Beta.Read()[dst])
	}
}

func TestWavesMergeAndDepositEnergy(t *testing.T) {
	b := emptyBoard(3, 3)
	g := b.Grids()
	// One wave moving down from above, one moving up from below.
	g.Alpha.Set(1, EncodeAlpha(5, 1, 0, 2, 0))
	g.Beta.Set(1, EncodeBeta(0, 2))
	g.Alpha.Set(7, EncodeAlpha(9, 2, 0, 3, 0))
	g.Beta.Set(7, EncodeBeta(0, -2))
	b.RecomputeTotalEnergy()

	b.aggregateWaves()

	wave := DecodeWave(g.Alpha.Read()[4])
	if wave.Counter != 4 {
		t.Fatalf("counter = %d, want shortest remaining 4", wave.Counter)
	}
	if wave.Connex != 3 || wave.Energy != 0 {
		t.Fatalf("merged wave = %+v", wave)
	}
	if g.Beta.Read()[4] != EncodeBeta(0, -2) {
		t.Fatalf("beta should follow the longest wave, got %d", g.Beta.Read()[4])
	}
	if !near(float64(g.Energy.Read()[4]), 5, 1e-5) || !near(b.TotalEnergy(), 5, 1e-5) {
		t.Fatalf("energy %v total %v, want 5", g.Energy.Read()[4], b.TotalEnergy())
	}
}

func TestDischargeRaisesLevelWhenAffordable(t *testing.T) {
	b := emptyBoard(3, 3)
	g := b.Grids()
	g.Connex.Set(4, 5)
	g.Energy.Set(4, 1000)
	g.Alpha.Set(4, EncodeAlpha(0, 2, 0.1, 0, 0.02))
	b.RecomputeTotalEnergy()

	b.applyDischarge()

	if g.Connex.Read()[4] != 7 {
		t.Fatalf("connex = %d, want 7", g.Connex.Read()[4])
	}
	if !near(float64(g.Energy.Read()[4]), 980, 1e-3) {
		t.Fatalf("energy = %v, want 980", g.Energy.Read()[4])
	}
	if !near(float64(g.Stability.Read()[4]), 0.1, 1e-6) || !near(float64(g.Reactivity.Read()[4]), 0.02, 1e-6) {
		t.Fatalf("stability %v reactivity %v", g.Stability.Read()[4], g.Reactivity.Read()[4])
	}
	if g.Alpha.Read()[4] != ZeroAlpha {
		t.Fatal("discharged wave should become inert")
	}
	if !near(b.TotalEnergy(), 980, 1e-3) {
		t.Fatalf("total = %v, want 980", b.TotalEnergy())
	}
}

func TestDischargeKeepsLevelWhenTooPoor(t *testing.T) {
	b := emptyBoard(1, 1)
	g := b.Grids()
	g.Connex.Set(0, 5)
	g.Energy.Set(0, 5)
	g.Alpha.Set(0, EncodeAlpha(0, 2, 0, 0, 0))

	b.applyDischarge()

	if g.Connex.Read()[0] != 5 || g.Energy.Read()[0] != 5 {
		t.Fatalf("connex %d energy %v, want unchanged", g.Connex.Read()[0], g.Energy.Read()[0])
	}
	if g.Alpha.Read()[0] != ZeroAlpha {
		t.Fatal("wave should be consumed even when the level cannot move")
	}
}

func TestInFlightWaveDoesNotDischarge(t *testing.T) {
	b := emptyBoard(1, 1)
	g := b.Grids()
	a := EncodeAlpha(2, 2, 0, 0, 0)
	g.Alpha.Set(0, a)
	g.Energy.Set(0, 1000)

	b.applyDischarge()

	if g.Alpha.Read()[0] != a || g.Connex.Read()[0] != 0 {
		t.Fatal("a wave with a running counter must stay in flight")
	}
}

func TestGrowthLandsOnNeighborInOneTick(t *testing.T) {
	b := emptyBoard(3, 3)
	g := b.Grids()
	g.Connex.Set(4, 1)
	g.Energy.Set(4, 10)
	b.RecomputeTotalEnergy()

	b.Update()

	if got := g.Reactivity.Read()[7]; !near(float64(got), 0.002, 1e-6) {
		t.Fatalf("target reactivity = %v, want 0.002", got)
	}
	for i, a := range g.Alpha.Read() {
		if a != ZeroAlpha {
			t.Fatalf("alpha[%d] still carries a wave", i)
		}
	}
}

func TestLevelDischargeSpendsGamma(t *testing.T) {
	b := emptyBoard(1, 1)
	g := b.Grids()
	g.Connex.Set(0, 3)
	g.Reactivity.Set(0, 0.5)
	g.Energy.Set(0, 4)
	g.Gamma.Set(0, 2)
	g.Delta.Set(0, BitNoGen)
	b.RecomputeTotalEnergy()

	b.adjustLevels()

	if g.Connex.Read()[0] != 4 {
		t.Fatalf("connex = %d, want 4", g.Connex.Read()[0])
	}
	if !near(float64(g.Gamma.Read()[0]), 2-1.09, 1e-5) {
		t.Fatalf("gamma = %v, want 0.91", g.Gamma.Read()[0])
	}
	// Sub-group 0 nudges stability +0.01 and energy -1.
	if !near(float64(g.Stability.Read()[0]), 0.01, 1e-6) || !near(float64(g.Energy.Read()[0]), 3, 1e-6) {
		t.Fatalf("stability %v energy %v", g.Stability.Read()[0], g.Energy.Read()[0])
	}
	if !near(b.TotalEnergy(), 3, 1e-6) {
		t.Fatalf("total = %v, want 3", b.TotalEnergy())
	}
}

func TestGammaRegenTiers(t *testing.T) {
	if !near(float64(gammaRegen(0)), 0.05, 1e-7) {
		t.Fatalf("gammaRegen(0) = %v", gammaRegen(0))
	}
	if !near(float64(gammaRegen(21)), 0.02*0.98347145, 1e-6) {
		t.Fatalf("gammaRegen(21) = %v", gammaRegen(21))
	}
	for n := uint32(1); n <= MaxConnex; n++ {
		if n != lowTierMax+1 && gammaRegen(n) >= gammaRegen(n-1) {
			t.Fatalf("regen should fall within a tier at level %d", n)
		}
	}
}

func TestVerticalPipes(t *testing.T) {
	b := emptyBoard(1, 3)
	g := b.Grids()
	g.Delta.Set(1, BitPipeBelow)
	g.Energy.Set(1, 100)
	g.Connex.Set(2, 7)
	g.Stability.Set(2, 0.4)
	g.Energy.Set(2, 30)
	b.RecomputeTotalEnergy()

	b.adjustLevels()

	if g.Connex.Read()[1] != 7 || g.Stability.Read()[1] != 0.4 || g.Energy.Read()[1] != 30 {
		t.Fatalf("pipe did not pull from below: %d %v %v", g.Connex.Read()[1], g.Stability.Read()[1], g.Energy.Read()[1])
	}
	if g.Delta.Read()[1] != 0 {
		t.Fatal("pipe copies the source's delta")
	}
	if !near(b.TotalEnergy(), 60, 1e-4) {
		t.Fatalf("total = %v, want 60", b.TotalEnergy())
	}

	b = emptyBoard(1, 2)
	g = b.Grids()
	g.Delta.Set(1, BitPipeAbove)
	g.Energy.Set(1, 60)
	g.Energy.Set(0, 80)

	b.adjustLevels()

	if got := g.Energy.Read()[1]; got != 30 {
		t.Fatalf("pull from above should cost 50, energy = %v", got)
	}
}

func TestHorizontalPipesAndBeacon(t *testing.T) {
	b := emptyBoard(3, 3)
	g := b.Grids()
	g.Delta.Set(0, BitBeacon)
	g.Connex.Set(0, 9)
	g.Stability.Set(0, 0.7)

	b.applyDischarge()

	for _, idx := range []int{1, 3, 4} {
		if g.Connex.Read()[idx] != 9 || g.Stability.Read()[idx] != 0.7 {
			t.Fatalf("cell %d did not follow the beacon", idx)
		}
	}
	if g.Connex.Read()[8] != 0 {
		t.Fatal("beacon reached past its neighborhood")
	}

	b = emptyBoard(3, 1)
	g = b.Grids()
	g.Delta.Set(1, BitPipeRight)
	g.Energy.Set(1, 50)
	g.Connex.Set(2, 12)
	g.Energy.Set(2, 8)

	b.applyDischarge()

	if g.Connex.Read()[1] != 12 || g.Energy.Read()[1] != 8 {
		t.Fatalf("pipe did not pull from the right: %d %v", g.Connex.Read()[1], g.Energy.Read()[1])
	}
}

func TestSaturatedOmegaAbsorbsReactivity(t *testing.T) {
	b := emptyBoard(3, 3)
	g := b.Grids()
	for i := 0; i < 9; i++ {
		if i != 4 {
			g.Reactivity.Set(i, 0.4)
		}
	}
	g.Omega.Set(4, 1.5)
	b.RecomputeTotalEnergy()

	b.updateOmega()

	if e := g.Energy.Read()[4]; !near(float64(e), 21, 1e-4) {
		t.Fatalf("center energy = %v, want 21", e)
	}
	if o := g.Omega.Read()[4]; !near(float64(o), 1.4, 1e-5) {
		t.Fatalf("center omega = %v, want 1.4", o)
	}
	for _, i := range []int{0, 1, 8} {
		if r := g.Reactivity.Read()[i]; !near(float64(r), 0.375, 1e-6) {
			t.Fatalf("neighbor %d reactivity = %v, want 0.375", i, r)
		}
	}
	if !near(b.TotalEnergy(), 21, 1e-4) {
		t.Fatalf("total = %v, want 21", b.TotalEnergy())
	}
}

func TestGammaAndOmegaDiffusion(t *testing.T) {
	b := emptyBoard(2, 1)
	g := b.Grids()
	g.Reactivity.Fill(1)
	g.Gamma.Set(0, 1)
	g.Omega.Set(0, 1)

	b.convolveGamma()
	b.convolveOmega()

	gm := g.Gamma.Read()
	if !near(float64(gm[0]), 0.873, 1e-5) || !near(float64(gm[1]), 0.125, 1e-5) {
		t.Fatalf("gamma = %v, want [0.873 0.125]", gm)
	}
	om := g.Omega.Read()
	if !near(float64(om[0]), 0.984555, 1e-5) || !near(float64(om[1]), 0.005445, 1e-6) {
		t.Fatalf("omega = %v, want [0.984555 0.005445]", om)
	}
}

func TestLeftPipeCostsEnergy(t *testing.T) {
	b := emptyBoard(3, 1)
	g := b.Grids()
	g.Delta.Set(1, BitPipeLeft)
	g.Energy.Set(1, 60)
	g.Connex.Set(0, 12)
	g.Stability.Set(0, 0.3)
	g.Energy.Set(0, 80)
	b.RecomputeTotalEnergy()

	b.applyDischarge()

	if g.Connex.Read()[1] != 12 || g.Stability.Read()[1] != 0.3 {
		t.Fatalf("pipe did not pull from the left: %d %v", g.Connex.Read()[1], g.Stability.Read()[1])
	}
	if got := g.Energy.Read()[1]; got != 30 {
		t.Fatalf("pull from the left should cost 50, energy = %v", got)
	}
	if !near(b.TotalEnergy(), 110, 1e-4) {
		t.Fatalf("total = %v, want 110", b.TotalEnergy())
	}

	b = emptyBoard(2, 1)
	g = b.Grids()
	g.Delta.Set(1, BitPipeLeft)
	g.Energy.Set(1, 49)
	g.Connex.Set(0, 12)

	b.applyDischarge()

	if g.Connex.Read()[1] != 0 || g.Energy.Read()[1] != 49 {
		t.Fatal("a pipe below the energy threshold should not pull")
	}
}

func TestFastWaveDoublesCounter(t *testing.T) {
	b := emptyBoard(3, 3)
	g := b.Grids()
	g.Connex.Set(4, 1)
	g.Energy.Set(4, 10)
	g.Delta.Set(4, BitFastWave)

	b.spawnGrowth()

	if got := WaveCounter(g.Alpha.Read()[4]); got != 2 {
		t.Fatalf("counter = %d, want 2", got)
	}
}

func TestOmegaChannelFeedsOmega(t *testing.T) {
	// Level 20 carries the omega channel and a stationary direction.
	b := emptyBoard(3, 1)
	g := b.Grids()
	for i := 0; i < 3; i++ {
		g.Connex.Set(i, 20)
	}
	g.Energy.Set(0, 10)
	g.Delta.Set(2, BitNoGrowth)

	b.spawnGrowth()

	om := g.Omega.Read()
	if !near(float64(om[0]), 0.01, 1e-7) {
		t.Fatalf("affordable omega = %v, want 0.01", om[0])
	}
	if !near(float64(om[1]), 0.01, 1e-7) {
		t.Fatalf("unaffordable omega = %v, want 0.01", om[1])
	}
	if om[2] != 0 {
		t.Fatalf("blocked cell omega = %v, want 0", om[2])
	}
	if g.Energy.Read()[1] != 0 {
		t.Fatal("an unaffordable investment must not spend energy")
	}

	var edge uint32
	for n := uint32(1); n <= MaxConnex; n++ {
		if ChannelsFor(n).Has(ChannelOmega) && (n-1)%uint32(len(Directions)) != uint32(BetaStationary) {
			edge = n
			break
		}
	}
	if edge == 0 {
		t.Fatal("no moving level carries the omega channel")
	}
	b = emptyBoard(1, 1)
	g = b.Grids()
	g.Connex.Set(0, edge)
	g.Energy.Set(0, 1000)

	b.spawnGrowth()

	if om := g.Omega.Read()[0]; om != 0 {
		t.Fatalf("level %d aimed off the board gained omega %v", edge, om)
	}
}

func TestPinnedReactivity(t *testing.T) {
	b := emptyBoard(2, 1)
	g := b.Grids()
	g.Reactivity.Set(0, 0.7)
	g.Reactivity.Set(1, 0.7)
	g.Delta.Set(0, BitPinReactivity)
	g.Alpha.Set(0, EncodeAlpha(0, 0, 0, 0, 0.05))

	b.applyDischarge()

	if r := g.Reactivity.Read()[0]; r != 0 {
		t.Fatalf("pinned reactivity = %v, want 0", r)
	}
	if r := g.Reactivity.Read()[1]; r != 0.7 {
		t.Fatalf("unpinned reactivity = %v, want 0.7", r)
	}
}

func TestNoGenBlocksGammaRegen(t *testing.T) {
	b := emptyBoard(2, 1)
	g := b.Grids()
	g.Gamma.Set(0, 0.5)
	g.Gamma.Set(1, 0.5)
	g.Delta.Set(0, BitNoGen)

	b.adjustLevels()

	gm := g.Gamma.Read()
	if gm[0] != 0.5 {
		t.Fatalf("gamma with regen blocked = %v, want 0.5", gm[0])
	}
	if !near(float64(gm[1]), 0.55, 1e-6) {
		t.Fatalf("regenerating gamma = %v, want 0.55", gm[1])
	}
}
