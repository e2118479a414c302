package jent

import "math/bits"

// stirConst and stirMix are the stir step's fixed constants (§4.7):
// stirConst concatenates the first two SHA-1 initial hash values and
// stirMix the third and fourth, used here as bare integers — no hash is computed. Any fixed, non-trivial pair
// would do; these are pinned so stir's output is reproducible across runs
// and test vectors stay stable.
const (
	stirConst = uint64(0x67452301)<<32 | uint64(0xefcdab89)
	stirMix   = uint64(0x98badcfe)<<32 | uint64(0x10325476)
)

// accumulate folds sample into the pool: data = rotl64(data ^ sample, TEB).
func (c *Collector) accumulate(sample uint64) {
	c.data = bits.RotateLeft64(c.data^sample, TimeEntropyBits)
}

// stir runs the deterministic bijective mixer over the pool. It XORs data
// with a mask derived from data's own bits and the two fixed constants —
// XORing with a value derived from data itself never reduces entropy, it
// never zeros a non-zero pool, and never depends on anything outside the
// pool.
func (c *Collector) stir() {
	mix := stirMix
	for i := 0; i < 64; i++ {
		if c.data&(1<<uint(i)) != 0 {
			mix ^= stirConst
		}
		mix = bits.RotateLeft64(mix, 1)
	}
	c.data ^= mix
}
