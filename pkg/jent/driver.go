package jent

// generate produces one 64-bit output into c.data (§4.8): rounds =
// ceil(64/TEB) * osr samples, each accumulated via XOR+rotate, then an
// optional stir pass. Every call primes prevTime with one throwaway
// jitter measurement before its first round; priming is the generator
// driver's responsibility, not the caller's.
func (c *Collector) generate() {
	rounds := ceilDiv(DataSizeBits, TimeEntropyBits) * c.osr

	for k := uint(0); k < rounds; k++ {
		if k == 0 {
			c.sample() // prime prevTime; result discarded
		}
		s := c.unbiased()
		c.accumulate(s)
	}

	if c.stirEnabled {
		c.stir()
	}
}

func ceilDiv(a, b uint) uint {
	return (a + b - 1) / b
}
