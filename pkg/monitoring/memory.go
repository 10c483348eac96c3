package monitoring

import (
	"time"
)

// memoryPressureObservation records the most recent memory pressure level.
var memoryPressureObservation = newObservation()

// runMemoryPressureMonitoring polls the platform memory pressure measurement
// and delivers level transitions to the registered callback. Sustained
// pressure at an unchanged level coalesces into a single delivery. If the
// platform measurement is unavailable, the monitor parks without ever
// delivering an observation.
func runMemoryPressureMonitoring() {
	ticker := time.NewTicker(time.Duration(configuration.MemoryPressure.PollingInterval))
	defer ticker.Stop()

	var previousActive bool
	var previousLevel MemoryPressureLevel
	for {
		level, active, err := readMemoryPressure()
		if err != nil {
			logger.Debugf("memory pressure measurement unavailable: %v", err)
			return
		}
		if active && (!previousActive || level != previousLevel) {
			logger.Debugf("memory pressure event: %v", level)
			memoryPressureObservation.set(int(level))
			if memoryPressureCallback != nil {
				memoryPressureCallback(level)
			}
		}
		previousActive, previousLevel = active, level
		<-ticker.C
	}
}
