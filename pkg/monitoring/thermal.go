package monitoring

import (
	"time"
)

// thermalObservation records the most recent thermal load.
var thermalObservation = newObservation()

// ThermalLoad returns the most recently observed thermal load, or Unobserved
// if no observation has occurred or the platform doesn't support thermal
// measurement.
func ThermalLoad() int {
	return thermalObservation.current()
}

// runThermalMonitoring polls the platform thermal measurement and delivers
// load changes to the registered callback. Identical successive observations
// coalesce. If the platform measurement is unavailable, the monitor parks
// without ever delivering an observation.
func runThermalMonitoring() {
	ticker := time.NewTicker(time.Duration(configuration.Thermal.PollingInterval))
	defer ticker.Stop()

	previous := Unobserved
	for {
		load, err := readThermalLoad()
		if err != nil {
			logger.Debugf("thermal measurement unavailable: %v", err)
			return
		}
		if load != previous {
			previous = load
			thermalObservation.set(load)
			if thermalCallback != nil {
				thermalCallback(load)
			}
		}
		<-ticker.C
	}
}
