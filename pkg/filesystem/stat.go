package filesystem

import (
	"time"

	"golang.org/x/sys/unix"
)

// TimeKind encodes the different timestamps recorded for a filesystem entry.
type TimeKind uint8

const (
	// TimeAccess represents an access timestamp.
	TimeAccess TimeKind = iota
	// TimeModification represents a modification timestamp.
	TimeModification
	// TimeChange represents a status change timestamp.
	TimeChange
)

// String provides a human-readable representation of a timestamp kind.
func (k TimeKind) String() string {
	switch k {
	case TimeAccess:
		return "access"
	case TimeModification:
		return "modification"
	case TimeChange:
		return "change"
	default:
		return "unknown"
	}
}

// StatRecord is a platform-normalized metadata snapshot of a filesystem
// entry. It is produced by the Stat, Lstat, and Fstatat functions, with the
// platform-specific conversion selected at build time.
type StatRecord struct {
	// Mode is the raw mode of the filesystem entry.
	Mode Mode
	// Links is the number of hard links to the filesystem entry.
	Links uint64
	// OwnerID is the ID of the entry's owning user.
	OwnerID uint32
	// GroupID is the ID of the entry's owning group.
	GroupID uint32
	// Size is the size of the filesystem entry in bytes.
	Size uint64
	// DeviceID is the device ID of the filesystem on which the entry
	// resides.
	DeviceID uint64
	// FileID is the file ID (inode number) of the filesystem entry.
	FileID uint64
	// access, modification, and change are the entry's timestamps. Their
	// nanosecond components are guaranteed to lie in [0, 1e9). On platforms
	// whose stat structures lack nanosecond resolution, the nanosecond
	// components are zero.
	access, modification, change unix.Timespec
	// birth is the entry's birth timestamp on platforms that record one, as
	// indicated by birthValid.
	birth      unix.Timespec
	birthValid bool
}

// BirthTime returns the entry's birth (creation) timestamp and whether or not
// it is available. Availability is platform-dependent, as indicated by
// BirthTimeSupported.
func (r *StatRecord) BirthTime() (time.Time, bool) {
	if !r.birthValid {
		return time.Time{}, false
	}
	return time.Unix(r.birth.Unix()), true
}

// timestamp returns the timestamp of the specified kind. Invalid kinds are an
// internal contract violation and terminate the process.
func (r *StatRecord) timestamp(kind TimeKind) unix.Timespec {
	switch kind {
	case TimeAccess:
		return r.access
	case TimeModification:
		return r.modification
	case TimeChange:
		return r.change
	default:
		panic("invalid timestamp kind")
	}
}

// Seconds returns the whole-second component of the timestamp of the
// specified kind.
func (r *StatRecord) Seconds(kind TimeKind) int64 {
	ts := r.timestamp(kind)
	seconds, _ := ts.Unix()
	return seconds
}

// Nanoseconds returns the sub-second nanosecond component of the timestamp of
// the specified kind. The result lies in [0, 1e9).
func (r *StatRecord) Nanoseconds(kind TimeKind) int64 {
	ts := r.timestamp(kind)
	_, nanoseconds := ts.Unix()
	return nanoseconds
}

// Time returns the timestamp of the specified kind as a time.Time value.
func (r *StatRecord) Time(kind TimeKind) time.Time {
	ts := r.timestamp(kind)
	return time.Unix(ts.Unix())
}
