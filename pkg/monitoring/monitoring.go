package monitoring

import (
	"sync"

	"github.com/osbridge-io/osbridge/pkg/logging"
)

// logger is the logger used by all monitors.
var logger = logging.RootLogger.Sublogger("monitoring")

// registrationLock guards callback registration and the started flags. After
// a monitor starts, its callback slot is frozen and read without locking by
// the delivery goroutine.
var registrationLock sync.Mutex

var (
	// suspensionCallback receives suspend/resume events.
	suspensionCallback func(SuspensionReason)
	// thermalCallback receives thermal load values.
	thermalCallback func(int)
	// memoryPressureCallback receives memory pressure levels.
	memoryPressureCallback func(MemoryPressureLevel)
	// systemLoadAdvisoryCallback receives system load advisory values.
	systemLoadAdvisoryCallback func(int)
)

var (
	// suspensionStarted, thermalStarted, memoryPressureStarted, and
	// systemLoadAdvisoryStarted record whether or not the corresponding
	// monitor has started, freezing its callback slot.
	suspensionStarted         bool
	thermalStarted            bool
	memoryPressureStarted     bool
	systemLoadAdvisoryStarted bool
)

var (
	// suspensionStart, thermalStart, memoryPressureStart, and
	// systemLoadAdvisoryStart guard one-time monitor initialization.
	suspensionStart         sync.Once
	thermalStart            sync.Once
	memoryPressureStart     sync.Once
	systemLoadAdvisoryStart sync.Once
)

// register stores a callback into the specified slot, enforcing that the
// corresponding monitor hasn't started. Registration after start indicates a
// broken initialization sequence in the calling layer.
func register(started *bool, store func()) {
	registrationLock.Lock()
	defer registrationLock.Unlock()
	if *started {
		panic("monitor callback registration after monitoring start")
	}
	store()
}

// markStarted records that a monitor has started.
func markStarted(started *bool) {
	registrationLock.Lock()
	defer registrationLock.Unlock()
	*started = true
}

// RegisterSuspensionCallback registers the callback for suspend/resume
// events. It must be invoked before StartSuspensionMonitoring.
func RegisterSuspensionCallback(callback func(SuspensionReason)) {
	register(&suspensionStarted, func() { suspensionCallback = callback })
}

// RegisterThermalCallback registers the callback for thermal events. It must
// be invoked before StartThermalMonitoring.
func RegisterThermalCallback(callback func(int)) {
	register(&thermalStarted, func() { thermalCallback = callback })
}

// RegisterMemoryPressureCallback registers the callback for memory pressure
// events. It must be invoked before StartMemoryPressureMonitoring.
func RegisterMemoryPressureCallback(callback func(MemoryPressureLevel)) {
	register(&memoryPressureStarted, func() { memoryPressureCallback = callback })
}

// RegisterSystemLoadAdvisoryCallback registers the callback for system load
// advisory events. It must be invoked before
// StartSystemLoadAdvisoryMonitoring.
func RegisterSystemLoadAdvisoryCallback(callback func(int)) {
	register(&systemLoadAdvisoryStarted, func() { systemLoadAdvisoryCallback = callback })
}

// StartSuspensionMonitoring starts suspend/resume monitoring. It is
// idempotent and non-blocking.
func StartSuspensionMonitoring() {
	suspensionStart.Do(func() {
		markStarted(&suspensionStarted)
		go runSuspensionSignalMonitoring()
		go runSleepWakeMonitoring()
	})
}

// StartThermalMonitoring starts thermal monitoring. It is idempotent and
// non-blocking.
func StartThermalMonitoring() {
	thermalStart.Do(func() {
		markStarted(&thermalStarted)
		go runThermalMonitoring()
	})
}

// StartMemoryPressureMonitoring starts memory pressure monitoring. It is
// idempotent and non-blocking.
func StartMemoryPressureMonitoring() {
	memoryPressureStart.Do(func() {
		markStarted(&memoryPressureStarted)
		go runMemoryPressureMonitoring()
	})
}

// StartSystemLoadAdvisoryMonitoring starts system load advisory monitoring.
// It is idempotent and non-blocking.
func StartSystemLoadAdvisoryMonitoring() {
	systemLoadAdvisoryStart.Do(func() {
		markStarted(&systemLoadAdvisoryStarted)
		go runSystemLoadAdvisoryMonitoring()
	})
}
