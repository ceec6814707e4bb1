package board

// Channel indexes the cost/effect channels of a connex level.
type Channel int

const (
	ChannelReactivity Channel = iota
	ChannelStability
	ChannelEnergy
	ChannelConnex
	ChannelOmega
	channelCount
)

// MaxConnex is the highest growth level.
const MaxConnex = 200

// Channels holds the active flags of one connex level.
type Channels [channelCount]bool

// Has reports whether channel c is active.
func (c Channels) Has(ch Channel) bool { return c[ch] }

// channelTable is indexed by connex number and never mutated after init.
var channelTable = buildChannelTable()

// ChannelsFor returns the table entry for connex level n, clamped to MaxConnex.
func ChannelsFor(n uint32) Channels {
	if n > MaxConnex {
		n = MaxConnex
	}
	return channelTable[n]
}

func buildChannelTable() [MaxConnex + 1]Channels {
	var table [MaxConnex + 1]Channels
	for i := 0; i <= MaxConnex; i++ {
		table[i] = channelsAt(i)
	}
	return table
}

func channelsAt(i int) Channels {
	seed := int64(i - 1)
	g1 := lcgGlibc(seed) % 5
	g2 := lcgNumericalRecipes(seed) % 5
	g3 := lcgMSVC(seed) % 5
	if i < 21 {
		g1, g2, g3 = 5, 5, 5
	}
	g4 := int64((i-1)/5) % 5
	if g4 < 0 {
		g4 = 0
	}

	var c Channels
	for k := int64(0); k < 4; k++ {
		c[k] = g1 == k || g2 == k || g3 == k || g4 == k || i == MaxConnex
	}
	c[ChannelOmega] = (g4 == 4 && g1 >= 1 && g1 <= 3 && i%2 == 0 && i%10 != 0) || i == 20
	return c
}

func lcgGlibc(seed int64) int64 {
	return int64((uint64(seed)*1103515245 + 12345) & 0x7fffffff)
}

func lcgNumericalRecipes(seed int64) int64 {
	return int64(uint32(uint64(seed)*1664525 + 1013904223))
}

func lcgMSVC(seed int64) int64 {
	return int64(uint32(uint64(seed)*214013+2531011) >> 16)
}
