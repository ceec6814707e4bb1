package board

// Behavior override bits stored in the delta grid.
const (
	BitPinStability  uint64 = 1 << 0
	BitPinReactivity uint64 = 1 << 1
	BitBeacon        uint64 = 1 << 2
	BitPinGamma      uint64 = 1 << 3
	BitNoGrowth      uint64 = 1 << 4
	BitFastWave      uint64 = 1 << 5
	BitPipeBelow     uint64 = 1 << 6
	BitPipeAbove     uint64 = 1 << 7
	BitPipeRight     uint64 = 1 << 8
	BitPipeLeft      uint64 = 1 << 9
	BitSwapOverride  uint64 = 1 << 10
	BitNoGen         uint64 = 1 << 11
)

// pipeCost is charged by the costly direction of each pipe pair.
const (
	pipeCost      = 50
	pipeThreshold = 50
)

// only reports whether bit a is set and bit b is clear.
func only(d, a, b uint64) bool {
	return d&a != 0 && d&b == 0
}
