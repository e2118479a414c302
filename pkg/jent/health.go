package jent

import "github.com/ja7ad/jitterentropy/pkg/platform"

// HealthReport carries the startup health test's diagnostic counters, for
// callers (the daemon's selftest command, mainly) that want to print them.
// CountVar is collected and reported but never consulted for pass/fail —
// the source this was ported from computes it without using it, and this
// port preserves that rather than inventing a threshold.
type HealthReport struct {
	TimeBackwards int
	CountMod      int
	CountVar      int
	DeltaSum      uint64
}

// runHealthTest runs the startup health test against clock and discards
// the diagnostic report. It backs the package-level Init.
func runHealthTest(clock platform.Clock) error {
	_, err := RunHealthTest(clock)
	return err
}

// RunHealthTest runs the startup health test (§4.11) and returns its
// diagnostic counters alongside the pass/fail error.
//
// TESTLOOPCOUNT (300) measured iterations follow a CLEARCACHE (100)
// iteration warm-up whose measurements are discarded, polluting caches
// and branch predictors into a steady state first.
func RunHealthTest(clock platform.Clock) (HealthReport, error) {
	var report HealthReport
	var oldDelta uint64
	haveOldDelta := false

	for i := 0; i < testLoopCount+clearCache; i++ {
		t1 := clock.GetNanotime()
		_ = fold(t1, 1<<MinFoldLoopBit)
		t2 := clock.GetNanotime()

		if t1 == 0 || t2 == 0 {
			return report, ErrNoTimer
		}

		delta := t2 - t1
		if delta == 0 {
			return report, ErrCoarseTimer
		}
		if delta < TimeEntropyBits {
			return report, ErrMinVariation
		}

		if i < clearCache {
			continue
		}

		if t2 <= t1 {
			report.TimeBackwards++
		}
		if delta%100 == 0 {
			report.CountMod++
		}
		if haveOldDelta {
			if delta != oldDelta {
				report.CountVar++
			}
			report.DeltaSum += absDiff(delta, oldDelta)
		}
		oldDelta = delta
		haveOldDelta = true
	}

	if report.TimeBackwards > 3 {
		return report, ErrNonMonotonic
	}
	if report.CountMod*10 > testLoopCount*9 {
		return report, ErrCoarseTimer
	}
	if report.DeltaSum == 0 {
		return report, ErrVarianceVar
	}
	// Mean variation DeltaSum/testLoopCount must exceed TimeEntropyBits;
	// compared without integer division so the fraction is not truncated.
	if report.DeltaSum <= TimeEntropyBits*testLoopCount {
		return report, ErrMinVariationVar
	}

	return report, nil
}

func absDiff(a, b uint64) uint64 {
	if a >= b {
		return a - b
	}
	return b - a
}
