// Package daemon wires a pkg/jent collector to the Linux kernel's entropy
// pool: it polls /proc/sys/kernel/random/entropy_avail and, once the pool
// drops below a configured watermark, feeds it via the RNDADDENTROPY
// ioctl until a high watermark is reached.
//
// Everything here is outside the collector's own contract. pkg/jent is
// strictly sequential; this package is where the one goroutine, the
// signal handling, and the PID file live.
package daemon
