package jent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShuffle_BoundedRange(t *testing.T) {
	lo := uint(1 << MinFoldLoopBit)
	hi := lo + (1 << MaxFoldLoopBit)

	for i := uint64(0); i < 4096; i++ {
		got := foldLoopCount(nil, i*0x9e3779b97f4a7c15)
		assert.GreaterOrEqual(t, got, lo)
		assert.Less(t, got, hi)
	}
}

func TestShuffle_NilCollectorIgnoresPool(t *testing.T) {
	// With c == nil, shuffle must not dereference c.data; passing nil
	// should behave identically to a collector whose pool happens to be 0.
	c := &Collector{}
	assert.Equal(t, shuffle(nil, 12345, 4, 0), shuffle(c, 12345, 4, 0))
}

func TestShuffle_PoolPerturbsResult(t *testing.T) {
	c1 := &Collector{data: 0}
	// An all-ones pool would cancel out: it flips every one of the 16
	// nibbles, and 16 flips XOR to nothing. A single set bit does not.
	c2 := &Collector{data: 0x1}
	assert.NotEqual(t, shuffle(c1, 42, 4, 0), shuffle(c2, 42, 4, 0))
}

func TestFoldLoopCount_NeverZero(t *testing.T) {
	// min=0 guarantees the result is always >= 1, so fold() is never
	// called with loopCount == 0 from the normal sampling path.
	for i := uint64(0); i < 1000; i++ {
		assert.GreaterOrEqual(t, foldLoopCount(nil, i), uint(1))
	}
}
