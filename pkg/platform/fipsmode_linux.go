//go:build linux

package platform

import (
	"bufio"
	"os"
	"strings"
)

// kernelFIPSMode reads /proc/sys/crypto/fips_enabled, the kernel's own
// FIPS-mode flag, the same file the C jitterentropy library consults.
type kernelFIPSMode struct{}

// NewFIPSMode returns the Linux FIPSMode implementation. The env override
// (JENT_FORCE_FIPS) always wins, for tests and for hosts where the kernel
// file is present but unreadable under the caller's privileges.
func NewFIPSMode() FIPSMode {
	return kernelFIPSMode{}
}

func (kernelFIPSMode) Enabled() bool {
	if v, ok := envOverride(); ok {
		return v
	}
	f, err := os.Open("/proc/sys/crypto/fips_enabled")
	if err != nil {
		return false
	}
	defer func() {
		_ = f.Close()
	}()

	sc := bufio.NewScanner(f)
	if !sc.Scan() {
		return false
	}
	return strings.TrimSpace(sc.Text()) == "1"
}
