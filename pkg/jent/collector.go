// Package jent implements a non-physical true random number generator
// that harvests entropy from the timing jitter of CPU instruction
// execution and memory accesses.
//
// The collector is strictly sequential: no internal locking, no
// goroutines, no I/O. A *Collector is owned by exactly one caller at a
// time; concurrent use of one instance is undefined at the contract
// level. The package does no cryptographic post-processing, does not
// reseed from an external source, and provides no persistence — it is
// the jitter-harvesting core only. Platform capabilities (a monotonic
// clock, a zeroing allocator, a FIPS-mode predicate) are supplied by the
// caller through pkg/platform.
package jent

import (
	"github.com/ja7ad/jitterentropy/pkg/platform"
)

// Collector is the entropy collector. It is the only long-lived entity in
// the package; every operation works on one.
type Collector struct {
	data     uint64 // accumulating entropy pool / current 64-bit output
	oldData  uint64 // previous pool value, used by the FIPS continuous test
	prevTime uint64 // last observed timestamp

	fipsFailed bool // sticky: once set, all further reads fail

	mem            []byte // memory-access scratch region, nil if disabled
	memBlockSize   uint
	memBlocks      uint
	memAccessLoops uint
	memLocation    uint

	osr uint // oversampling rate, >= 1

	stirEnabled   bool
	unbiasEnabled bool

	clock platform.Clock
	fips  platform.FIPSMode
}

// Init runs the startup health test against clock. It must return nil
// before any collector using that clock may be allocated. See health.go.
func Init(clock platform.Clock) error {
	return runHealthTest(clock)
}

// Alloc allocates and primes a new collector. osr == 0 is promoted to 1.
// Unless flags includes DisableMemoryAccess, a JentMemorySize scratch
// buffer is allocated via alloc. The returned collector has already run
// one generation pass (to fill data with non-zero bits) and, if fips is
// enabled, one priming FIPS test pass.
func Alloc(alloc platform.Allocator, clock platform.Clock, fips platform.FIPSMode, osr uint, flags Flags) (*Collector, error) {
	if alloc == nil || clock == nil || fips == nil {
		return nil, ErrAllocFail
	}

	c := &Collector{
		clock:         clock,
		fips:          fips,
		stirEnabled:   !flags.Has(DisableStir),
		unbiasEnabled: !flags.Has(DisableUnbias),
	}

	if !flags.Has(DisableMemoryAccess) {
		c.mem = alloc.Zalloc(JentMemorySize)
		if c.mem == nil {
			return nil, ErrAllocFail
		}
		c.memBlockSize = MemoryBlockSize
		c.memBlocks = MemoryBlocks
		c.memAccessLoops = MemoryAccessLoops
	}

	if osr == 0 {
		osr = 1
	}
	c.osr = osr

	c.generate()
	c.fipsTest()

	return c, nil
}

// Free zeros and releases the collector's scratch buffer, then zeros the
// pool state and marks the collector as failed. The buffer is scrubbed
// before release so no use-after-free of its contents is possible. With
// FIPS mode enabled, every later Read returns ErrFipsContinuousFail; with
// FIPS mode disabled, Read does not consult the failed mark.
func (c *Collector) Free(alloc platform.Allocator) {
	if c == nil {
		return
	}
	if len(c.mem) > 0 {
		alloc.Zfree(c.mem)
		c.mem = nil
	}
	c.data = 0
	c.oldData = 0
	c.prevTime = 0
	c.fipsFailed = true
}

// Read fills buf with entropy, returning len(buf) on success. It returns
// ErrCollectorAbsent if c is nil, and ErrFipsContinuousFail — permanently,
// for every subsequent call — once the FIPS continuous test has failed.
func (c *Collector) Read(buf []byte) (int, error) {
	if c == nil {
		return 0, ErrCollectorAbsent
	}

	want := len(buf)
	n := 0
	for n < want {
		c.generate()
		if err := c.fipsTest(); err != nil {
			return n, err
		}
		chunk := want - n
		if chunk > 8 {
			chunk = 8
		}
		copyPoolBytes(buf[n:n+chunk], c.data)
		n += chunk
	}

	scrub(c)

	return want, nil
}

// copyPoolBytes copies up to len(dst) little-endian bytes of v into dst.
func copyPoolBytes(dst []byte, v uint64) {
	for i := range dst {
		dst[i] = byte(v >> (8 * uint(i)))
	}
}
