package jent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemAccess_NoopWithoutScratchBuffer(t *testing.T) {
	c := &Collector{}
	assert.NotPanics(t, c.memAccess)
	assert.Zero(t, c.memLocation)
}

func TestMemAccess_TouchesBufferAndAdvancesLocation(t *testing.T) {
	c := &Collector{
		mem:            make([]byte, JentMemorySize),
		memBlockSize:   MemoryBlockSize,
		memBlocks:      MemoryBlocks,
		memAccessLoops: MemoryAccessLoops,
	}

	before := make([]byte, len(c.mem))
	copy(before, c.mem)

	c.memAccess()

	assert.NotEqual(t, before, c.mem)
	assert.Less(t, c.memLocation, c.memBlockSize*c.memBlocks)
}

func TestMemAccess_LocationWrapsWithinBounds(t *testing.T) {
	c := &Collector{
		mem:            make([]byte, JentMemorySize),
		memBlockSize:   MemoryBlockSize,
		memBlocks:      MemoryBlocks,
		memAccessLoops: MemoryAccessLoops,
	}

	for i := 0; i < 1000; i++ {
		c.memAccess()
		assert.Less(t, c.memLocation, c.memBlockSize*c.memBlocks)
	}
}
