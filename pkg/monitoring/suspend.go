package monitoring

import (
	"os"
	"os/signal"
	"time"

	"golang.org/x/sys/unix"
)

// deliverSuspension delivers a suspension event to the registered callback.
func deliverSuspension(reason SuspensionReason) {
	logger.Debugf("suspension event: %v", reason)
	if suspensionCallback != nil {
		suspensionCallback(reason)
	}
	suspensionObservation.set(int(reason))
}

// suspensionObservation records the most recent suspension event for
// observation index tracking.
var suspensionObservation = newObservation()

// runSuspensionSignalMonitoring observes SIGTSTP and SIGCONT. The Go runtime
// forwards signals onto a channel drained here, so delivery never executes in
// a signal handler context.
func runSuspensionSignalMonitoring() {
	signals := make(chan os.Signal, 16)
	signal.Notify(signals, unix.SIGTSTP, unix.SIGCONT)
	for received := range signals {
		if received == unix.SIGTSTP {
			deliverSuspension(SuspensionReasonSIGTSTP)
		} else {
			deliverSuspension(SuspensionReasonSIGCONT)
		}
	}
}

// runSleepWakeMonitoring detects system sleep/wake cycles by watching for
// wall-clock discontinuities: a monotonic ticker that fires after a gap much
// larger than its interval indicates that the system was asleep in between.
// This requires no platform notification service and therefore works
// uniformly across UNIX platforms.
func runSleepWakeMonitoring() {
	interval := time.Duration(configuration.Suspend.PollingInterval)
	gap := time.Duration(configuration.Suspend.SleepGap)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	previous := time.Now()
	for range ticker.C {
		// Grab the wall clock directly since tick values can lag after a
		// suspension.
		now := time.Now()
		if now.Sub(previous) > gap {
			deliverSuspension(SuspensionReasonSleep)
			deliverSuspension(SuspensionReasonWake)
		}
		previous = now
	}
}
