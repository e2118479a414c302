package daemon

import (
	"fmt"
	"time"

	"github.com/ja7ad/jitterentropy/pkg/jent"
)

// Config holds the feeding loop's tunables. Units:
//   - PollInterval: how often entropy_avail is read.
//   - LowWatermark/HighWatermark: fractions of PoolSize, in [0,1].
//   - PoolSize: the kernel pool's total size in bits, read once at
//     startup from /proc/sys/kernel/random/poolsize when available, else
//     PoolSizeDefault.
//   - OSR: oversampling rate passed to jent.Alloc.
//   - Flags: jent.Flags passed to jent.Alloc.
//   - PIDFile: path to the lock file; empty disables PID-file management.
type Config struct {
	PollInterval  time.Duration
	LowWatermark  float64
	HighWatermark float64
	PoolSize      int
	OSR           uint
	Flags         jent.Flags
	PIDFile       string
}

// PoolSizeDefault is used when the kernel's own poolsize file cannot be
// read: the traditional Linux /dev/random pool size in bits.
const PoolSizeDefault = 4096

// _defaultConfig returns a Config pre-filled with reasonable defaults.
func _defaultConfig() *Config {
	return &Config{
		PollInterval:  time.Second,
		LowWatermark:  0.25,
		HighWatermark: 0.75,
		PoolSize:      PoolSizeDefault,
		OSR:           1,
		PIDFile:       "",
	}
}

// Validate checks Config's invariants before the loop starts.
func (c *Config) Validate() error {
	if c.PollInterval <= 0 {
		return fmt.Errorf("daemon: poll interval must be > 0")
	}
	if c.LowWatermark < 0 || c.LowWatermark > 1 {
		return fmt.Errorf("daemon: low watermark must be in [0,1]")
	}
	if c.HighWatermark < 0 || c.HighWatermark > 1 {
		return fmt.Errorf("daemon: high watermark must be in [0,1]")
	}
	if c.LowWatermark >= c.HighWatermark {
		return fmt.Errorf("daemon: low watermark must be below high watermark")
	}
	if c.PoolSize <= 0 {
		return fmt.Errorf("daemon: pool size must be > 0")
	}
	return nil
}

// lowBits and highBits convert the watermark fractions into absolute
// entropy_avail thresholds for the configured pool size.
func (c *Config) lowBits() int  { return int(c.LowWatermark * float64(c.PoolSize)) }
func (c *Config) highBits() int { return int(c.HighWatermark * float64(c.PoolSize)) }
