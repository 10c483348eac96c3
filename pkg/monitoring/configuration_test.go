package monitoring

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestDefaultConfiguration verifies default polling cadences and thresholds.
func TestDefaultConfiguration(t *testing.T) {
	configuration := DefaultConfiguration()
	if time.Duration(configuration.Suspend.PollingInterval) != time.Second {
		t.Error("unexpected default suspend polling interval")
	}
	if time.Duration(configuration.Suspend.SleepGap) != 5*time.Second {
		t.Error("unexpected default sleep gap")
	}
	if time.Duration(configuration.Thermal.PollingInterval) != 5*time.Second {
		t.Error("unexpected default thermal polling interval")
	}
	if time.Duration(configuration.MemoryPressure.PollingInterval) != 2*time.Second {
		t.Error("unexpected default memory pressure polling interval")
	}
	if configuration.MemoryPressure.WarningThreshold != 10.0 {
		t.Error("unexpected default warning threshold")
	}
	if configuration.MemoryPressure.CriticalThreshold != 5.0 {
		t.Error("unexpected default critical threshold")
	}
	if time.Duration(configuration.SystemLoadAdvisory.PollingInterval) != 5*time.Second {
		t.Error("unexpected default load advisory polling interval")
	}
}

// TestLoadConfiguration verifies configuration loading and that unspecified
// values retain their defaults.
func TestLoadConfiguration(t *testing.T) {
	// Write a partial configuration.
	path := filepath.Join(t.TempDir(), "monitoring.yaml")
	contents := `suspend:
  sleepGap: "30s"
memoryPressure:
  warningThreshold: 25.5
`
	if err := os.WriteFile(path, []byte(contents), 0600); err != nil {
		t.Fatal("unable to write configuration:", err)
	}

	// Load it.
	configuration, err := LoadConfiguration(path)
	if err != nil {
		t.Fatal("unable to load configuration:", err)
	}

	// Verify specified values.
	if time.Duration(configuration.Suspend.SleepGap) != 30*time.Second {
		t.Error("sleep gap not loaded")
	}
	if configuration.MemoryPressure.WarningThreshold != 25.5 {
		t.Error("warning threshold not loaded")
	}

	// Verify that unspecified values retain their defaults.
	if time.Duration(configuration.Suspend.PollingInterval) != time.Second {
		t.Error("suspend polling interval default not retained")
	}
	if configuration.MemoryPressure.CriticalThreshold != 5.0 {
		t.Error("critical threshold default not retained")
	}
}

// TestLoadConfigurationMissing verifies that a missing configuration file
// yields defaults rather than an error.
func TestLoadConfigurationMissing(t *testing.T) {
	configuration, err := LoadConfiguration(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatal("missing configuration treated as error:", err)
	} else if configuration == nil {
		t.Fatal("missing configuration yielded nil")
	}
	if time.Duration(configuration.Thermal.PollingInterval) != 5*time.Second {
		t.Error("missing configuration did not yield defaults")
	}
}

// TestLoadConfigurationInvalidDuration verifies rejection of malformed
// duration values.
func TestLoadConfigurationInvalidDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "monitoring.yaml")
	if err := os.WriteFile(path, []byte("thermal:\n  pollingInterval: \"fast\"\n"), 0600); err != nil {
		t.Fatal("unable to write configuration:", err)
	}
	if _, err := LoadConfiguration(path); err == nil {
		t.Error("malformed duration not rejected")
	}
}

// TestLoadConfigurationUnknownKey verifies rejection of unknown configuration
// keys.
func TestLoadConfigurationUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "monitoring.yaml")
	if err := os.WriteFile(path, []byte("termal:\n  pollingInterval: \"5s\"\n"), 0600); err != nil {
		t.Fatal("unable to write configuration:", err)
	}
	if _, err := LoadConfiguration(path); err == nil {
		t.Error("unknown configuration key not rejected")
	}
}
