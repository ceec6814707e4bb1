package board

// connexStepCost is the energy price of one connex level per growth factor.
const connexStepCost = 10

// GrowthFactor returns the level-dependent multiplier ((n-1)/25)+1. Level 0
// shares the factor of level 1.
func GrowthFactor(n uint32) uint32 {
	if n == 0 {
		return 1
	}
	return (n-1)/25 + 1
}

// connexPowMap[n] is the cumulative energy needed to hold level n. It is
// strictly increasing, so moving up a level always costs and moving down
// refunds.
var connexPowMap = buildConnexPowMap()

func buildConnexPowMap() [MaxConnex + 1]float32 {
	var m [MaxConnex + 1]float32
	for n := 1; n <= MaxConnex; n++ {
		m[n] = m[n-1] + float32(connexStepCost*GrowthFactor(uint32(n)))
	}
	return m
}

// ConnexPow returns the cumulative holding cost of level n, clamped to MaxConnex.
func ConnexPow(n uint32) float32 {
	if n > MaxConnex {
		n = MaxConnex
	}
	return connexPowMap[n]
}
