package platform

import "os"

// FIPSMode reports whether the FIPS 140-2 continuous self-test should be
// active. The core gates its continuous test on this predicate — it never
// decides FIPS mode itself.
type FIPSMode interface {
	Enabled() bool
}

// EnvOverrideVar, when set to "1", forces FIPS mode on regardless of the
// platform-specific detection. Useful for portability and for tests on
// platforms without a kernel FIPS switch.
const EnvOverrideVar = "JENT_FORCE_FIPS"

func envOverride() (bool, bool) {
	v := os.Getenv(EnvOverrideVar)
	if v == "" {
		return false, false
	}
	return v == "1", true
}
