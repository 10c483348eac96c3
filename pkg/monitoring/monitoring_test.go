package monitoring

import (
	"testing"
	"time"

	"golang.org/x/sys/unix"
)

// TestEventOrdinals verifies the ordinal values relied upon by external
// event-reporting consumers.
func TestEventOrdinals(t *testing.T) {
	if SuspensionReasonSIGTSTP != 0 {
		t.Error("unexpected SIGTSTP ordinal:", SuspensionReasonSIGTSTP)
	}
	if SuspensionReasonSIGCONT != 1 {
		t.Error("unexpected SIGCONT ordinal:", SuspensionReasonSIGCONT)
	}
	if SuspensionReasonSleep != 2 {
		t.Error("unexpected sleep ordinal:", SuspensionReasonSleep)
	}
	if SuspensionReasonWake != 3 {
		t.Error("unexpected wake ordinal:", SuspensionReasonWake)
	}
	if MemoryPressureLevelWarning != 0 {
		t.Error("unexpected warning ordinal:", MemoryPressureLevelWarning)
	}
	if MemoryPressureLevelCritical != 1 {
		t.Error("unexpected critical ordinal:", MemoryPressureLevelCritical)
	}
}

// TestQueriesBeforeObservation verifies the sentinel returned by synchronous
// queries before any monitor has delivered an observation. The thermal and
// system load advisory monitors are never started by this test suite, so the
// sentinel holds regardless of test ordering.
func TestQueriesBeforeObservation(t *testing.T) {
	if load := ThermalLoad(); load != Unobserved {
		t.Error("thermal load observed without monitoring:", load)
	}
	if advisory := SystemLoadAdvisory(); advisory != Unobserved {
		t.Error("load advisory observed without monitoring:", advisory)
	}
}

// TestSuspensionSignalDelivery verifies that starting suspension monitoring is
// idempotent and that a SIGCONT signal yields exactly one callback invocation.
func TestSuspensionSignalDelivery(t *testing.T) {
	// Register a callback that forwards events for inspection.
	events := make(chan SuspensionReason, 16)
	RegisterSuspensionCallback(func(reason SuspensionReason) {
		events <- reason
	})

	// Start monitoring twice to exercise idempotency. A second registration of
	// the signal monitor would yield a duplicate delivery below.
	StartSuspensionMonitoring()
	StartSuspensionMonitoring()

	// Grab the observation index baseline.
	baseline := suspensionObservation.index()

	// Deliver SIGCONT to ourselves. It's harmless since we aren't stopped.
	if err := unix.Kill(unix.Getpid(), unix.SIGCONT); err != nil {
		t.Fatal("unable to signal test process:", err)
	}

	// Wait for the event.
	select {
	case reason := <-events:
		if reason != SuspensionReasonSIGCONT {
			t.Error("unexpected suspension reason:", reason)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("suspension event not delivered")
	}

	// Ensure that the observation index advanced and that the observation
	// records the delivered reason.
	if index := suspensionObservation.await(baseline); index <= baseline {
		t.Error("observation index did not advance")
	}
	if value := suspensionObservation.current(); value != int(SuspensionReasonSIGCONT) {
		t.Error("unexpected suspension observation:", value)
	}

	// Ensure that no duplicate delivery follows.
	select {
	case reason := <-events:
		t.Error("duplicate suspension event delivered:", reason)
	case <-time.After(250 * time.Millisecond):
	}
}

// TestRegistrationAfterStartPanics verifies enforcement of the registration
// ordering contract. It relies on suspension monitoring having been started by
// TestSuspensionSignalDelivery.
func TestRegistrationAfterStartPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("late registration did not panic")
		}
	}()
	RegisterSuspensionCallback(func(SuspensionReason) {})
}

// TestAdvisoryForLoad verifies the mapping from load averages onto advisory
// values.
func TestAdvisoryForLoad(t *testing.T) {
	tests := []struct {
		load     float64
		cpus     int
		expected int
	}{
		{0.0, 4, SystemLoadAdvisoryGreat},
		{3.9, 4, SystemLoadAdvisoryGreat},
		{4.0, 4, SystemLoadAdvisoryOK},
		{7.9, 4, SystemLoadAdvisoryOK},
		{8.0, 4, SystemLoadAdvisoryBad},
		{100.0, 4, SystemLoadAdvisoryBad},
		{0.5, 0, SystemLoadAdvisoryGreat},
	}
	for _, test := range tests {
		if advisory := advisoryForLoad(test.load, test.cpus); advisory != test.expected {
			t.Errorf("advisory for load %f on %d CPUs was %d, not %d",
				test.load, test.cpus, advisory, test.expected,
			)
		}
	}
}
