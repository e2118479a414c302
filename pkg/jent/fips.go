package jent

// fipsTest runs the FIPS 140-2 continuous self-test (§4.9), gated on
// c.fips.Enabled(). Once fipsFailed is set it is sticky: every subsequent
// call returns ErrFipsContinuousFail and nothing resets it.
func (c *Collector) fipsTest() error {
	if !c.fips.Enabled() {
		return nil
	}

	if c.fipsFailed {
		return ErrFipsContinuousFail
	}

	if c.oldData == 0 {
		// Not yet primed: record the current pool value and generate a
		// fresh one to compare against on the next call. Do not clear
		// oldData anywhere else — doing so would silently re-enter this
		// unprimed branch and defeat continuous testing.
		c.oldData = c.data
		c.generate()
		return nil
	}

	if c.data == c.oldData {
		c.fipsFailed = true
		return ErrFipsContinuousFail
	}

	c.oldData = c.data
	return nil
}
