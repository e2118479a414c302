//go:build linux

package daemon

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

const entropyAvailPath = "/proc/sys/kernel/random/entropy_avail"
const poolSizePath = "/proc/sys/kernel/random/poolsize"

// readEntropyAvail returns the kernel's current entropy estimate, in bits.
func readEntropyAvail() (int, error) {
	return readProcInt(entropyAvailPath)
}

// readPoolSize reads the kernel's advertised pool size, falling back to
// PoolSizeDefault if the file is absent or unreadable.
func readPoolSize() int {
	n, err := readProcInt(poolSizePath)
	if err != nil {
		return PoolSizeDefault
	}
	return n
}

func readProcInt(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("daemon: open %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	sc := bufio.NewScanner(f)
	if !sc.Scan() {
		return 0, fmt.Errorf("daemon: read %s: empty", path)
	}
	n, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
	if err != nil {
		return 0, fmt.Errorf("daemon: parse %s: %w", path, err)
	}
	return n, nil
}
