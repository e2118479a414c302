package jent

import "errors"

// Startup errors, returned by Init. All are fatal: the platform cannot run
// the collector.
var (
	// ErrNoTimer means a measured timestamp was zero.
	ErrNoTimer = errors.New("jent: no usable timer")

	// ErrCoarseTimer means the timer never produced a non-zero delta
	// across consecutive reads, or steps in coarse, too-regular quanta.
	ErrCoarseTimer = errors.New("jent: timer resolution too coarse")

	// ErrMinVariation means a measured delta was smaller than TimeEntropyBits.
	ErrMinVariation = errors.New("jent: insufficient timer variation")

	// ErrNonMonotonic means the timer went backwards too often.
	ErrNonMonotonic = errors.New("jent: timer is non-monotonic")

	// ErrVarianceVar means all measured deltas were identical.
	ErrVarianceVar = errors.New("jent: timer delta variance is zero")

	// ErrMinVariationVar means the mean delta variation did not exceed
	// TimeEntropyBits.
	ErrMinVariationVar = errors.New("jent: timer delta variance too small")
)

// ErrAllocFail is returned by Alloc when a required dependency (allocator,
// clock or FIPS-mode predicate) is nil, or when the scratch buffer cannot
// be allocated.
var ErrAllocFail = errors.New("jent: allocation failed")

// Runtime errors, returned by Collector.Read.
var (
	// ErrCollectorAbsent means Read was called on a nil *Collector.
	ErrCollectorAbsent = errors.New("jent: collector is nil")

	// ErrFipsContinuousFail means two consecutive generation rounds
	// produced the same 64-bit pool value. The collector is now
	// permanently dead; the caller must Free it and Alloc a new one.
	ErrFipsContinuousFail = errors.New("jent: FIPS continuous test failed")
)
