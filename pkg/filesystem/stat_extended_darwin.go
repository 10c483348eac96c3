package filesystem

import (
	"golang.org/x/sys/unix"
)

// BirthTimeSupported indicates whether or not birth timestamps are available
// on this platform.
const BirthTimeSupported = true

// captureExtendedTimestamps records any platform-specific timestamps beyond
// the portable access/modification/change set.
func captureExtendedTimestamps(record *StatRecord, raw *unix.Stat_t) {
	record.birth = raw.Btim
	record.birthValid = true
}
