package cputimer

const (
	// burnBatch is the number of DPRNG steps between two clock reads.
	burnBatch = 1024
	burnSeed  = uint64(0x9E3779B97F4A7C15)
)

// Burn keeps the CPU busy until c has advanced by at least ns nanoseconds and returns a
// checksum of the work done. Reading c dominates for very small ns, so the consumed
// time overshoots by up to one batch plus one clock read.
// With a Clock that never advances Burn does not return.
func Burn(c Clock, ns int64) uint64 {
	rng := NewDPRNG(burnSeed)
	var sum uint64
	start := c.Now()
	for {
		for range burnBatch {
			sum ^= rng.Uint64()
		}
		if DiffTimeStamps(start, c.Now()) >= ns {
			return sum
		}
	}
}
