package monitoring

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/osbridge-io/osbridge/pkg/sysctl"
)

// loadAverageName is the sysctl reporting kernel load averages.
const loadAverageName = "vm.loadavg"

// readLoadAverage returns the one-minute load average. The kernel reports
// load averages as an array of three fixed-point values followed by the
// scale factor.
func readLoadAverage() (float64, error) {
	data, err := sysctl.ByName(loadAverageName)
	if err != nil {
		return 0, errors.Wrap(err, "unable to query load averages")
	} else if len(data) < 12 {
		return 0, errors.New("truncated load average information")
	}
	average := binary.LittleEndian.Uint32(data[0:4])
	scale := uint64(65536)
	if len(data) >= 24 {
		scale = binary.LittleEndian.Uint64(data[16:24])
	}
	if scale == 0 {
		return 0, errors.New("invalid load average scale")
	}
	return float64(average) / float64(scale), nil
}
