package monitoring

import (
	"github.com/pkg/errors"

	"github.com/osbridge-io/osbridge/pkg/sysctl"
)

// thermalLevelName is the sysctl reporting the CPU thermal level.
const thermalLevelName = "machdep.xcpm.cpu_thermal_level"

// readThermalLoad queries the CPU thermal level via sysctl.
func readThermalLoad() (int, error) {
	level, err := sysctl.Uint32(thermalLevelName)
	if err != nil {
		return 0, errors.Wrap(err, "unable to query thermal level")
	}
	return int(level), nil
}
