package board

import (
	"math"
	"testing"
)

func TestZeroAlphaIsEncodedZeroWave(t *testing.T) {
	if got := EncodeAlpha(0, 0, 0, 0, 0); got != ZeroAlpha {
		t.Fatalf("EncodeAlpha(0...) = %#x, want %#x", got, ZeroAlpha)
	}
	c, cx, s, e, r := DecodeAlpha(ZeroAlpha)
	if c != 0 || cx != 0 || s != 0 || e != 0 || r != 0 {
		t.Fatalf("ZeroAlpha decodes to %d %d %v %v %v", c, cx, s, e, r)
	}
}

func TestAlphaRoundTrip(t *testing.T) {
	cases := []Wave{
		{Counter: 1, Connex: 1, Stability: 0.001, Energy: 0.5, Reactivity: 0.002},
		{Counter: 511, Connex: -200, Stability: -1, Energy: -999.9, Reactivity: -1},
		{Counter: 37, Connex: 200, Stability: 1, Energy: 2000, Reactivity: 1},
		{Counter: 0, Connex: 3, Stability: -0.25, Energy: 12.3, Reactivity: 0.5},
	}
	for _, want := range cases {
		got := DecodeWave(want.Encode())
		if got.Counter != want.Counter || got.Connex != want.Connex {
			t.Fatalf("round trip %+v: got %+v", want, got)
		}
		if math.Abs(float64(got.Stability-want.Stability)) > 0.0005 {
			t.Fatalf("stability %v -> %v", want.Stability, got.Stability)
		}
		if math.Abs(float64(got.Energy-want.Energy)) > 0.05 {
			t.Fatalf("energy %v -> %v", want.Energy, got.Energy)
		}
		if math.Abs(float64(got.Reactivity-want.Reactivity)) > 0.001 {
			t.Fatalf("reactivity %v -> %v", want.Reactivity, got.Reactivity)
		}
	}
}

func TestAlphaClampsAndMasks(t *testing.T) {
	w := DecodeWave(EncodeAlpha(512+7, 350, 3, 0, -4))
	if w.Counter != 7 {
		t.Fatalf("counter should be masked to 9 bits, got %d", w.Counter)
	}
	if w.Connex != MaxConnexDelta {
		t.Fatalf("connex delta should clamp to %d, got %d", MaxConnexDelta, w.Connex)
	}
	if w.Stability != 1 || w.Reactivity != -1 {
		t.Fatalf("unit deltas should clamp, got s=%v r=%v", w.Stability, w.Reactivity)
	}
	if WaveCounter(EncodeAlpha(42, 0, 0, 0, 0)) != 42 {
		t.Fatal("WaveCounter should extract the counter field")
	}
}

func TestBetaDirections(t *testing.T) {
	cases := []struct {
		dx, dy int
		want   uint64
	}{
		{0, 2, 0},
		{0, -2, 1},
		{-2, 0, 2},
		{2, 0, 3},
		{0, 0, BetaStationary},
		{1, 1, 0},
	}
	for _, tc := range cases {
		if got := EncodeBeta(tc.dx, tc.dy); got != tc.want {
			t.Fatalf("EncodeBeta(%d,%d) = %d, want %d", tc.dx, tc.dy, got, tc.want)
		}
	}
	if dx, dy := DecodeBeta(7); dx != -2 || dy != 0 {
		t.Fatalf("DecodeBeta(7) = (%d,%d), want (-2,0)", dx, dy)
	}
	if dx, dy := betaStep(0); dx != 0 || dy != 1 {
		t.Fatalf("betaStep(0) = (%d,%d), want (0,1)", dx, dy)
	}
	if dx, dy := betaStep(BetaStationary); dx != 0 || dy != 0 {
		t.Fatalf("stationary step = (%d,%d)", dx, dy)
	}
}
