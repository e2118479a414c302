package platform

import "time"

// Clock is the high-resolution monotonic timer the core measures
// instruction and memory-access jitter against. GetNanotime must have
// resolution finer than jent.TimeEntropyBits demands: consecutive calls
// must observably differ on any platform the startup health test accepts.
type Clock interface {
	GetNanotime() uint64
}

// SystemClock is the default Clock, backed by the Go runtime's monotonic
// clock reading. time.Since on a reference time.Time captured at
// construction uses that reading, so no cgo or syscall is needed to get
// sub-microsecond resolution. Calling UnixNano (or any other conversion
// away from time.Time) would strip the monotonic reading and fall back to
// wall-clock time, which can jump backward on an NTP step; ref exists so
// GetNanotime never does that.
type SystemClock struct {
	ref time.Time
}

// GetNanotime returns nanoseconds elapsed since ref, using the runtime's
// monotonic clock reading.
func (c SystemClock) GetNanotime() uint64 {
	return uint64(time.Since(c.ref))
}

// NewSystemClock returns the default Clock implementation.
func NewSystemClock() Clock {
	return SystemClock{ref: time.Now()}
}
