//go:build linux

package daemon

import (
	"encoding/binary"
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

const randomDevicePath = "/dev/random"

// injector feeds bytes into the kernel's entropy pool via RNDADDENTROPY.
// It holds one open fd to /dev/random for the daemon's lifetime.
type injector struct {
	fd int
}

func newInjector() (*injector, error) {
	fd, err := unix.Open(randomDevicePath, unix.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("daemon: open %s: %w", randomDevicePath, err)
	}
	return &injector{fd: fd}, nil
}

func (i *injector) Close() error {
	if i == nil || i.fd < 0 {
		return nil
	}
	err := unix.Close(i.fd)
	i.fd = -1
	return err
}

// feed injects buf's bytes, crediting the kernel with len(buf)*8 bits of
// entropy. RNDADDENTROPY's argument is a struct rand_pool_info: two
// little-endian int32s (entropy_count, buf_size) immediately followed by
// buf_size bytes of data, so it is built here by hand rather than
// through a typed struct, since the x/sys/unix package does not carry
// one.
func (i *injector) feed(buf []byte) error {
	if len(buf) == 0 {
		return nil
	}

	raw := make([]byte, 8+len(buf))
	binary.LittleEndian.PutUint32(raw[0:4], uint32(len(buf)*8))
	binary.LittleEndian.PutUint32(raw[4:8], uint32(len(buf)))
	copy(raw[8:], buf)

	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(i.fd), uintptr(unix.RNDADDENTROPY), uintptr(unsafe.Pointer(&raw[0])))
	if errno != 0 {
		return fmt.Errorf("daemon: RNDADDENTROPY: %w", errno)
	}
	return nil
}
