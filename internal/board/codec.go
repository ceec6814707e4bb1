package board

import "math"

// Alpha packs a growth wave into 54 bits, most significant field first:
//
//	counter(9) | connex(9) | stability(11) | energy(15) | reactivity(10)
//
// Every field is stored as an unsigned offset value.
const (
	alphaCounterBits    = 9
	alphaConnexBits     = 9
	alphaStabilityBits  = 11
	alphaEnergyBits     = 15
	alphaReactivityBits = 10

	alphaReactivityShift = 0
	alphaEnergyShift     = alphaReactivityShift + alphaReactivityBits
	alphaStabilityShift  = alphaEnergyShift + alphaEnergyBits
	alphaConnexShift     = alphaStabilityShift + alphaStabilityBits
	alphaCounterShift    = alphaConnexShift + alphaConnexBits

	alphaCounterMask    = 1<<alphaCounterBits - 1
	alphaConnexMask     = 1<<alphaConnexBits - 1
	alphaStabilityMask  = 1<<alphaStabilityBits - 1
	alphaEnergyMask     = 1<<alphaEnergyBits - 1
	alphaReactivityMask = 1<<alphaReactivityBits - 1

	alphaConnexOffset     = 200
	alphaStabilityScale   = 1000
	alphaStabilityOffset  = 1000
	alphaEnergyScale      = 10
	alphaEnergyOffset     = 10000
	alphaReactivityScale  = 500
	alphaReactivityOffset = 500

	// MaxWaveCounter is the largest counter an alpha word can hold.
	MaxWaveCounter = alphaCounterMask
	// MaxConnexDelta bounds the connex delta carried by a wave.
	MaxConnexDelta = 200
)

// ZeroAlpha is the inert wave: counter zero and every delta zero.
const ZeroAlpha uint64 = alphaConnexOffset<<alphaConnexShift |
	alphaStabilityOffset<<alphaStabilityShift |
	alphaEnergyOffset<<alphaEnergyShift |
	alphaReactivityOffset<<alphaReactivityShift

// EncodeAlpha packs a wave. Stability and reactivity deltas are clamped to
// [-1, 1] and connex to [-200, 200]; the energy delta is not clamped and wraps
// through the 15-bit mask when out of range.
func EncodeAlpha(counter uint32, connexDelta int32, stabilityDelta, energyDelta, reactivityDelta float32) uint64 {
	c := uint64(counter) & alphaCounterMask

	cd := connexDelta
	if cd < -MaxConnexDelta {
		cd = -MaxConnexDelta
	} else if cd > MaxConnexDelta {
		cd = MaxConnexDelta
	}
	cx := uint64(cd+alphaConnexOffset) & alphaConnexMask

	s := uint64(quantize(clampUnit(stabilityDelta), alphaStabilityScale)+alphaStabilityOffset) & alphaStabilityMask
	e := uint64(quantize(energyDelta, alphaEnergyScale)+alphaEnergyOffset) & alphaEnergyMask
	r := uint64(quantize(clampUnit(reactivityDelta), alphaReactivityScale)+alphaReactivityOffset) & alphaReactivityMask

	return c<<alphaCounterShift |
		cx<<alphaConnexShift |
		s<<alphaStabilityShift |
		e<<alphaEnergyShift |
		r<<alphaReactivityShift
}

// DecodeAlpha unpacks a wave produced by EncodeAlpha.
func DecodeAlpha(v uint64) (counter uint32, connexDelta int32, stabilityDelta, energyDelta, reactivityDelta float32) {
	counter = uint32(v >> alphaCounterShift & alphaCounterMask)
	connexDelta = int32(v>>alphaConnexShift&alphaConnexMask) - alphaConnexOffset
	stabilityDelta = float32(int64(v>>alphaStabilityShift&alphaStabilityMask)-alphaStabilityOffset) / alphaStabilityScale
	energyDelta = float32(int64(v>>alphaEnergyShift&alphaEnergyMask)-alphaEnergyOffset) / alphaEnergyScale
	reactivityDelta = float32(int64(v>>alphaReactivityShift&alphaReactivityMask)-alphaReactivityOffset) / alphaReactivityScale
	return
}

// WaveCounter extracts only the counter field.
func WaveCounter(v uint64) uint32 {
	return uint32(v >> alphaCounterShift & alphaCounterMask)
}

// Wave is the unpacked form of an alpha value.
type Wave struct {
	Counter    uint32
	Connex     int32
	Stability  float32
	Energy     float32
	Reactivity float32
}

// DecodeWave unpacks v into a Wave.
func DecodeWave(v uint64) Wave {
	c, cx, s, e, r := DecodeAlpha(v)
	return Wave{Counter: c, Connex: cx, Stability: s, Energy: e, Reactivity: r}
}

// Encode packs the wave.
func (w Wave) Encode() uint64 {
	return EncodeAlpha(w.Counter, w.Connex, w.Stability, w.Energy, w.Reactivity)
}

func quantize(v float32, scale float64) int64 {
	return int64(math.Round(float64(v) * scale))
}

func clampUnit(v float32) float32 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}

// Directions lists the five canonical beta directions. Index 4 is stationary;
// the one-cell step of a direction is the entry halved.
var Directions = [5][2]int{{0, 2}, {0, -2}, {-2, 0}, {2, 0}, {0, 0}}

// BetaStationary is the direction index of a wave that stays on its cell.
const BetaStationary uint64 = 4

// EncodeBeta returns the index of (dx, dy) in Directions, or 0 when the pair
// is not canonical.
func EncodeBeta(dx, dy int) uint64 {
	for i, d := range Directions {
		if d[0] == dx && d[1] == dy {
			return uint64(i)
		}
	}
	return 0
}

// DecodeBeta returns the direction stored at v mod 5.
func DecodeBeta(v uint64) (dx, dy int) {
	d := Directions[v%uint64(len(Directions))]
	return d[0], d[1]
}

// betaStep returns the one-cell offset a direction moves a wave by.
func betaStep(v uint64) (int, int) {
	dx, dy := DecodeBeta(v)
	return dx / 2, dy / 2
}
