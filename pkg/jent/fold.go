package jent

import "sync/atomic"

// foldSink is an optimization barrier. The fold loop below writes every
// intermediate result here; because foldSink is observable from outside
// foldPass (another goroutine could load it, and the compiler cannot
// prove otherwise), the compiler cannot hoist the loop, collapse repeated
// iterations, or treat the loop as dead code eliminable down to its final
// value. This is the Go analogue of the C implementation's reliance on
// -O0: a barrier local to the fold loop rather than a disabled optimizer.
var foldSink atomic.Uint64

// foldOnce extracts every TimeEntropyBits-wide window of t, from least to
// most significant, and XORs them together (§4.4, one fold pass).
func foldOnce(t uint64) uint64 {
	const teb = TimeEntropyBits
	const n = 64 / teb
	const mask = uint64(1)<<teb - 1

	var folded uint64
	for i := 0; i < n; i++ {
		folded ^= t & mask
		t >>= teb
	}
	return folded
}

// fold repeats foldOnce loopCount times, consuming time on every pass but
// emitting only the last pass's result. The intermediate passes exist
// solely so their duration is the signal the caller measures; they must
// not be optimized away.
//
//go:noinline
func fold(t uint64, loopCount uint) uint64 {
	var folded uint64
	for i := uint(0); i < loopCount; i++ {
		folded = foldOnce(t)
		t = folded
		foldSink.Store(folded)
	}
	return folded
}
