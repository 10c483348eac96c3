//go:build !(linux || darwin)

package monitoring

import (
	"golang.org/x/sys/unix"
)

// readMemoryPressure queries the platform memory pressure measurement. It is
// unsupported on this platform.
func readMemoryPressure() (MemoryPressureLevel, bool, error) {
	return 0, false, unix.ENOSYS
}
