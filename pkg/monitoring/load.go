package monitoring

import (
	"runtime"
	"time"
)

// systemLoadAdvisoryObservation records the most recent advisory value.
var systemLoadAdvisoryObservation = newObservation()

// SystemLoadAdvisory returns the most recently observed system load advisory,
// or Unobserved if no observation has occurred or the platform doesn't
// support load measurement.
func SystemLoadAdvisory() int {
	return systemLoadAdvisoryObservation.current()
}

// advisoryForLoad maps a one-minute load average onto an advisory value
// relative to the number of available CPUs.
func advisoryForLoad(load float64, cpus int) int {
	if cpus < 1 {
		cpus = 1
	}
	ratio := load / float64(cpus)
	if ratio < 1.0 {
		return SystemLoadAdvisoryGreat
	} else if ratio < 2.0 {
		return SystemLoadAdvisoryOK
	}
	return SystemLoadAdvisoryBad
}

// runSystemLoadAdvisoryMonitoring polls the platform load average and
// delivers advisory changes to the registered callback. Identical successive
// advisories coalesce. If the platform measurement is unavailable, the
// monitor parks without ever delivering an observation.
func runSystemLoadAdvisoryMonitoring() {
	ticker := time.NewTicker(time.Duration(configuration.SystemLoadAdvisory.PollingInterval))
	defer ticker.Stop()

	previous := Unobserved
	for {
		load, err := readLoadAverage()
		if err != nil {
			logger.Debugf("load measurement unavailable: %v", err)
			return
		}
		advisory := advisoryForLoad(load, runtime.NumCPU())
		if advisory != previous {
			previous = advisory
			systemLoadAdvisoryObservation.set(advisory)
			if systemLoadAdvisoryCallback != nil {
				systemLoadAdvisoryCallback(advisory)
			}
		}
		<-ticker.C
	}
}
