package monitoring

import (
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// memoryPressurePath is the PSI interface for memory stall information.
const memoryPressurePath = "/proc/pressure/memory"

// psiAverage extracts the avg10 value from a PSI line of the form
// "some avg10=0.00 avg60=0.00 avg300=0.00 total=0".
func psiAverage(line string) (float64, error) {
	for _, field := range strings.Fields(line) {
		if strings.HasPrefix(field, "avg10=") {
			return strconv.ParseFloat(strings.TrimPrefix(field, "avg10="), 64)
		}
	}
	return 0, errors.New("no avg10 field")
}

// classifyPressure maps PSI stall percentages onto a memory pressure level.
// Full stalls (all non-idle tasks blocked on memory) at or above the critical
// threshold indicate critical pressure; partial stalls at or above the
// warning threshold indicate warning pressure.
func classifyPressure(some, full, warningThreshold, criticalThreshold float64) (MemoryPressureLevel, bool) {
	if full >= criticalThreshold {
		return MemoryPressureLevelCritical, true
	} else if some >= warningThreshold {
		return MemoryPressureLevelWarning, true
	}
	return 0, false
}

// parseMemoryPressure parses PSI memory data and classifies it against the
// configured thresholds.
func parseMemoryPressure(data []byte, warningThreshold, criticalThreshold float64) (MemoryPressureLevel, bool, error) {
	var some, full float64
	var sawSome, sawFull bool
	for _, line := range strings.Split(string(data), "\n") {
		if strings.HasPrefix(line, "some ") {
			value, err := psiAverage(line)
			if err != nil {
				return 0, false, errors.Wrap(err, "unable to parse partial stall average")
			}
			some, sawSome = value, true
		} else if strings.HasPrefix(line, "full ") {
			value, err := psiAverage(line)
			if err != nil {
				return 0, false, errors.Wrap(err, "unable to parse full stall average")
			}
			full, sawFull = value, true
		}
	}
	if !sawSome || !sawFull {
		return 0, false, errors.New("incomplete pressure information")
	}
	level, active := classifyPressure(some, full, warningThreshold, criticalThreshold)
	return level, active, nil
}

// readMemoryPressure reads the kernel's PSI memory interface and classifies
// the current pressure level. Kernels without PSI support report an error.
func readMemoryPressure() (MemoryPressureLevel, bool, error) {
	data, err := os.ReadFile(memoryPressurePath)
	if err != nil {
		return 0, false, errors.Wrap(err, "unable to read pressure information")
	}
	return parseMemoryPressure(data,
		configuration.MemoryPressure.WarningThreshold,
		configuration.MemoryPressure.CriticalThreshold)
}
