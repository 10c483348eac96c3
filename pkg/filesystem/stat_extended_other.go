//go:build linux || freebsd

package filesystem

import (
	"golang.org/x/sys/unix"
)

// BirthTimeSupported indicates whether or not birth timestamps are available
// on this platform.
const BirthTimeSupported = false

// captureExtendedTimestamps records any platform-specific timestamps beyond
// the portable access/modification/change set. There are none on this
// platform.
func captureExtendedTimestamps(record *StatRecord, raw *unix.Stat_t) {}
