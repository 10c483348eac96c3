//go:build !(linux || darwin)

package monitoring

import (
	"golang.org/x/sys/unix"
)

// readThermalLoad queries the platform thermal measurement. It is unsupported
// on this platform.
func readThermalLoad() (int, error) {
	return 0, unix.ENOSYS
}
