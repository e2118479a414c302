package jent

// sample takes one jitter measurement: run the memory-access noise source,
// read the timer, fold the delta against the previous reading into
// TimeEntropyBits, and return the folded value (§4.5).
func (c *Collector) sample() uint64 {
	c.memAccess()

	t := c.clock.GetNanotime()
	delta := t - c.prevTime // unsigned subtraction; wraparound tolerated
	c.prevTime = t

	loops := foldLoopCount(c, t)
	return fold(delta, loops)
}
