package monitoring

import (
	"github.com/pkg/errors"

	"github.com/osbridge-io/osbridge/pkg/sysctl"
)

// memoryPressureLevelName is the sysctl reporting the kernel's memory
// pressure level.
const memoryPressureLevelName = "kern.memorystatus_vm_pressure_level"

// Kernel memory status pressure levels.
const (
	kernelPressureNormal   = 1
	kernelPressureWarning  = 2
	kernelPressureCritical = 4
)

// readMemoryPressure queries the kernel's memory pressure level via sysctl.
func readMemoryPressure() (MemoryPressureLevel, bool, error) {
	level, err := sysctl.Uint32(memoryPressureLevelName)
	if err != nil {
		return 0, false, errors.Wrap(err, "unable to query memory pressure level")
	}
	switch level {
	case kernelPressureWarning:
		return MemoryPressureLevelWarning, true, nil
	case kernelPressureCritical:
		return MemoryPressureLevelCritical, true, nil
	default:
		return 0, false, nil
	}
}
