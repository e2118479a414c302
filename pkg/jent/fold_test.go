package jent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// xorFold is the naive reference implementation of one fold pass: XOR all
// TimeEntropyBits-wide windows of t together, independent of extraction
// order.
func xorFold(t uint64, teb uint) uint64 {
	mask := uint64(1)<<teb - 1
	var out uint64
	for i := 0; i < 64/int(teb); i++ {
		out ^= t & mask
		t >>= teb
	}
	return out
}

func TestFoldOnce_MatchesReferenceXOR(t *testing.T) {
	cases := []uint64{0, 1, 0xdeadbeefcafef00d, ^uint64(0), 0x8000000000000000}
	for _, in := range cases {
		require.Equal(t, xorFold(in, TimeEntropyBits), foldOnce(in))
	}
}

func TestFold_SinglePassEqualsFoldOnce(t *testing.T) {
	in := uint64(0x0123456789abcdef)
	assert.Equal(t, foldOnce(in), fold(in, 1))
}

func TestFold_LoopCountZero_ReturnsZero(t *testing.T) {
	assert.Equal(t, uint64(0), fold(0x1234, 0))
}

func TestFold_ReorderingWindowExtractionIsInvariant(t *testing.T) {
	// Permute the order of a 64-bit value's windows and confirm the
	// XOR of all windows is unchanged — the defining property of fold.
	in := uint64(0xA5A5A5A5A5A5A5A5)
	want := xorFold(in, TimeEntropyBits)

	// Reversed bit-window order, same multiset of windows.
	var reversed uint64
	mask := uint64(1)<<TimeEntropyBits - 1
	n := 64 / TimeEntropyBits
	for i := 0; i < n; i++ {
		shift := uint(n-1-i) * TimeEntropyBits
		reversed ^= (in >> shift) & mask
	}
	assert.Equal(t, want, reversed)
}
