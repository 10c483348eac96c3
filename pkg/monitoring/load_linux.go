package monitoring

import (
	"github.com/pkg/errors"

	"golang.org/x/sys/unix"
)

// loadScale is the fixed-point scale applied to sysinfo load averages.
const loadScale = 1 << 16

// readLoadAverage returns the one-minute load average.
func readLoadAverage() (float64, error) {
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		return 0, errors.Wrap(err, "unable to query system information")
	}
	return float64(info.Loads[0]) / loadScale, nil
}
