package monitoring

// SuspensionReason tags a delivered suspend/resume event. The ordinal values
// are relied upon by external event-reporting consumers and must not change.
type SuspensionReason int32

const (
	// SuspensionReasonSIGTSTP indicates that the process received SIGTSTP.
	SuspensionReasonSIGTSTP SuspensionReason = 0
	// SuspensionReasonSIGCONT indicates that the process received SIGCONT.
	SuspensionReasonSIGCONT SuspensionReason = 1
	// SuspensionReasonSleep indicates that the system went to sleep.
	SuspensionReasonSleep SuspensionReason = 2
	// SuspensionReasonWake indicates that the system woke from sleep.
	SuspensionReasonWake SuspensionReason = 3
)

// String provides a human-readable representation of a suspension reason.
func (r SuspensionReason) String() string {
	switch r {
	case SuspensionReasonSIGTSTP:
		return "SIGTSTP"
	case SuspensionReasonSIGCONT:
		return "SIGCONT"
	case SuspensionReasonSleep:
		return "sleep"
	case SuspensionReasonWake:
		return "wake"
	default:
		return "unknown"
	}
}

// MemoryPressureLevel tags a delivered memory pressure event. The ordinal
// values are relied upon by external event-reporting consumers and must not
// change. Ordering is meaningful: critical exceeds warning in severity.
type MemoryPressureLevel int32

const (
	// MemoryPressureLevelWarning indicates elevated memory pressure.
	MemoryPressureLevelWarning MemoryPressureLevel = 0
	// MemoryPressureLevelCritical indicates critical memory pressure.
	MemoryPressureLevelCritical MemoryPressureLevel = 1
)

// String provides a human-readable representation of a memory pressure level.
func (l MemoryPressureLevel) String() string {
	switch l {
	case MemoryPressureLevelWarning:
		return "warning"
	case MemoryPressureLevelCritical:
		return "critical"
	default:
		return "unknown"
	}
}

const (
	// SystemLoadAdvisoryBad indicates that the system is heavily loaded and
	// additional work should be deferred if possible.
	SystemLoadAdvisoryBad = 1
	// SystemLoadAdvisoryOK indicates moderate system load.
	SystemLoadAdvisoryOK = 2
	// SystemLoadAdvisoryGreat indicates that the system has capacity to
	// spare.
	SystemLoadAdvisoryGreat = 3
)

// Unobserved is the sentinel returned by synchronous query functions before
// any observation has occurred or where the platform doesn't support the
// measurement.
const Unobserved = -1
