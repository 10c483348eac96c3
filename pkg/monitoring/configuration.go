package monitoring

import (
	"os"
	"time"

	"github.com/pkg/errors"

	"gopkg.in/yaml.v3"

	"github.com/osbridge-io/osbridge/pkg/encoding"
)

// Duration is a YAML-decodable wrapper around time.Duration, expressed in
// configuration files using Go duration syntax (e.g. "5s").
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.UnmarshalYAML.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var text string
	if err := value.Decode(&text); err != nil {
		return errors.Wrap(err, "unable to decode duration")
	}
	parsed, err := time.ParseDuration(text)
	if err != nil {
		return errors.Wrap(err, "unable to parse duration")
	}
	*d = Duration(parsed)
	return nil
}

// Configuration controls monitor polling cadences and thresholds.
type Configuration struct {
	// Suspend configures suspend/resume monitoring.
	Suspend struct {
		// PollingInterval is the clock-gap sampling interval.
		PollingInterval Duration `yaml:"pollingInterval"`
		// SleepGap is the minimum wall-clock discontinuity interpreted as a
		// sleep/wake cycle.
		SleepGap Duration `yaml:"sleepGap"`
	} `yaml:"suspend"`
	// Thermal configures thermal monitoring.
	Thermal struct {
		// PollingInterval is the thermal sampling interval.
		PollingInterval Duration `yaml:"pollingInterval"`
	} `yaml:"thermal"`
	// MemoryPressure configures memory pressure monitoring.
	MemoryPressure struct {
		// PollingInterval is the pressure sampling interval.
		PollingInterval Duration `yaml:"pollingInterval"`
		// WarningThreshold is the stall percentage at or above which warning
		// pressure is reported.
		WarningThreshold float64 `yaml:"warningThreshold"`
		// CriticalThreshold is the full-stall percentage at or above which
		// critical pressure is reported.
		CriticalThreshold float64 `yaml:"criticalThreshold"`
	} `yaml:"memoryPressure"`
	// SystemLoadAdvisory configures system load advisory monitoring.
	SystemLoadAdvisory struct {
		// PollingInterval is the load sampling interval.
		PollingInterval Duration `yaml:"pollingInterval"`
	} `yaml:"systemLoadAdvisory"`
}

// DefaultConfiguration returns the default monitoring configuration.
func DefaultConfiguration() *Configuration {
	configuration := &Configuration{}
	configuration.Suspend.PollingInterval = Duration(time.Second)
	configuration.Suspend.SleepGap = Duration(5 * time.Second)
	configuration.Thermal.PollingInterval = Duration(5 * time.Second)
	configuration.MemoryPressure.PollingInterval = Duration(2 * time.Second)
	configuration.MemoryPressure.WarningThreshold = 10.0
	configuration.MemoryPressure.CriticalThreshold = 5.0
	configuration.SystemLoadAdvisory.PollingInterval = Duration(5 * time.Second)
	return configuration
}

// LoadConfiguration loads a monitoring configuration from the specified YAML
// file, applying defaults for any unspecified values. A missing file yields
// the default configuration.
func LoadConfiguration(path string) (*Configuration, error) {
	configuration := DefaultConfiguration()
	if err := encoding.LoadAndUnmarshalYAML(path, configuration); err != nil {
		if os.IsNotExist(err) {
			return DefaultConfiguration(), nil
		}
		return nil, errors.Wrap(err, "unable to load monitoring configuration")
	}
	return configuration, nil
}

// configuration is the active monitoring configuration.
var configuration = DefaultConfiguration()

// SetConfiguration replaces the active monitoring configuration. Like
// callback registration, it must complete before any monitor is started.
func SetConfiguration(c *Configuration) {
	registrationLock.Lock()
	defer registrationLock.Unlock()
	if suspensionStarted || thermalStarted || memoryPressureStarted || systemLoadAdvisoryStarted {
		panic("monitoring configuration changed after monitoring start")
	}
	configuration = c
}
