package monitoring

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// thermalZoneGlob matches sysfs thermal zone directories.
const thermalZoneGlob = "/sys/class/thermal/thermal_zone*"

// readZoneValue reads an integer value file within a thermal zone.
func readZoneValue(zone, name string) (int64, error) {
	data, err := os.ReadFile(filepath.Join(zone, name))
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
}

// criticalTripTemperature locates the zone's critical trip point temperature,
// in millidegrees.
func criticalTripTemperature(zone string) (int64, bool) {
	for point := 0; ; point++ {
		kind, err := os.ReadFile(filepath.Join(zone, fmt.Sprintf("trip_point_%d_type", point)))
		if err != nil {
			return 0, false
		}
		if strings.TrimSpace(string(kind)) != "critical" {
			continue
		}
		temperature, err := readZoneValue(zone, fmt.Sprintf("trip_point_%d_temp", point))
		if err != nil || temperature <= 0 {
			return 0, false
		}
		return temperature, true
	}
}

// readThermalLoad computes a 0-100 thermal load from sysfs thermal zones,
// taking the hottest zone relative to its critical trip point.
func readThermalLoad() (int, error) {
	zones, err := filepath.Glob(thermalZoneGlob)
	if err != nil || len(zones) == 0 {
		return 0, errors.New("no thermal zones available")
	}

	load := -1
	for _, zone := range zones {
		temperature, err := readZoneValue(zone, "temp")
		if err != nil || temperature <= 0 {
			continue
		}
		critical, ok := criticalTripTemperature(zone)
		if !ok {
			continue
		}
		zoneLoad := int(100 * temperature / critical)
		if zoneLoad > 100 {
			zoneLoad = 100
		}
		if zoneLoad > load {
			load = zoneLoad
		}
	}
	if load < 0 {
		return 0, errors.New("no readable thermal zones")
	}

	return load, nil
}
