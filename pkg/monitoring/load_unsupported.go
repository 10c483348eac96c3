//go:build !(linux || darwin)

package monitoring

import (
	"golang.org/x/sys/unix"
)

// readLoadAverage queries the platform load average measurement. It is
// unsupported on this platform.
func readLoadAverage() (float64, error) {
	return 0, unix.ENOSYS
}
