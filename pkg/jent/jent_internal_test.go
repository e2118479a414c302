package jent

// sequenceClock replays a fixed sequence of timestamps, repeating the
// last one once exhausted. It lets tests drive the collector and the
// startup health test with a deterministic, injectable time source
// instead of the real platform.SystemClock.
type sequenceClock struct {
	seq []uint64
	i   int
}

func (c *sequenceClock) GetNanotime() uint64 {
	if len(c.seq) == 0 {
		return 0
	}
	if c.i >= len(c.seq) {
		return c.seq[len(c.seq)-1]
	}
	v := c.seq[c.i]
	c.i++
	return v
}

// constClock always returns the same timestamp, the canonical "coarse
// timer" fake.
type constClock struct{ t uint64 }

func (c constClock) GetNanotime() uint64 { return c.t }

// stepClock increments by step on every call, starting from cur (zero by
// default), so the first call returns cur+step.
type stepClock struct {
	cur  uint64
	step uint64
}

func (c *stepClock) GetNanotime() uint64 {
	c.cur += c.step
	return c.cur
}

// varyingClock returns strictly increasing timestamps whose successive
// deltas are 1, 2, 3, ... Under the canonical TimeEntropyBits=1 build,
// fold reduces each delta to its bit parity, giving the Thue-Morse
// sequence (0,1,1,0,1,0,0,1,...), a sequence with no three consecutive
// equal terms. That overlap-free property guarantees the von Neumann
// unbiaser's pairwise retry loop always finds a disagreeing pair within
// a bounded number of samples, without relying on any real clock or a
// random source.
type varyingClock struct {
	cur  uint64
	step uint64
}

func (c *varyingClock) GetNanotime() uint64 {
	c.step++
	c.cur += c.step
	return c.cur
}

// alwaysFIPS/neverFIPS implement platform.FIPSMode for tests.
type alwaysFIPS struct{}

func (alwaysFIPS) Enabled() bool { return true }

type neverFIPS struct{}

func (neverFIPS) Enabled() bool { return false }
