package jent

// memAccess walks c.mem in a fixed pattern, touching memAccessLoops
// locations per invocation, each memBlockSize-1 bytes past the previous
// one (modulo the buffer size). The read-modify-write forces the cache line
// dirty so eviction traffic varies; the return value carries no meaning,
// only the time the caller measures around the call does.
//
// No-op when c.mem is absent (DisableMemoryAccess was set at Alloc).
func (c *Collector) memAccess() {
	if len(c.mem) == 0 {
		return
	}

	blockSize := c.memBlockSize
	total := blockSize * c.memBlocks
	loc := c.memLocation

	for i := uint(0); i < c.memAccessLoops; i++ {
		c.mem[loc] = byte((uint(c.mem[loc]) + 1) % 256)
		loc = (loc + blockSize - 1) % total
	}

	c.memLocation = loc
}
