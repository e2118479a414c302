package jent

// unbiased returns one von-Neumann-unbiased sample (§4.6). When
// unbiasEnabled is false it returns a single raw sample instead.
//
// The von Neumann filter takes consecutive pairs of samples and returns
// the first value of the first pair that disagrees, relying on the
// assumption that successive samples are independent.
func (c *Collector) unbiased() uint64 {
	if !c.unbiasEnabled {
		return c.sample()
	}

	for {
		a := c.sample()
		b := c.sample()
		if a != b {
			return a
		}
	}
}
