//go:build linux || darwin || freebsd

package filesystem

import (
	"errors"

	"golang.org/x/sys/unix"
)

// AtSymlinkNoFollow is the flag value that makes Fstatat operate on symbolic
// links themselves rather than their targets.
const AtSymlinkNoFollow = unix.AT_SYMLINK_NOFOLLOW

// statRecordFromRaw converts a raw platform stat structure into a normalized
// StatRecord. The casts are required because field widths differ between
// platforms (e.g. 32-bit device IDs and 16-bit link counts on Darwin).
func statRecordFromRaw(raw *unix.Stat_t) *StatRecord {
	record := &StatRecord{
		Mode:         Mode(raw.Mode),
		Links:        uint64(raw.Nlink),
		OwnerID:      raw.Uid,
		GroupID:      raw.Gid,
		Size:         uint64(raw.Size),
		DeviceID:     uint64(raw.Dev),
		FileID:       uint64(raw.Ino),
		access:       raw.Atim,
		modification: raw.Mtim,
		change:       raw.Ctim,
	}
	captureExtendedTimestamps(record, raw)
	return record
}

// statRetryingOnEINTR is a wrapper around the stat system call that retries
// on EINTR errors and returns on the first successful call or non-EINTR
// error.
func statRetryingOnEINTR(path string, metadata *unix.Stat_t) error {
	for {
		err := unix.Stat(path, metadata)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		return err
	}
}

// lstatRetryingOnEINTR is a wrapper around the lstat system call that retries
// on EINTR errors and returns on the first successful call or non-EINTR
// error.
func lstatRetryingOnEINTR(path string, metadata *unix.Stat_t) error {
	for {
		err := unix.Lstat(path, metadata)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		return err
	}
}

// fstatatRetryingOnEINTR is a wrapper around the fstatat system call that
// retries on EINTR errors and returns on the first successful call or
// non-EINTR error.
func fstatatRetryingOnEINTR(directory int, path string, metadata *unix.Stat_t, flags int) error {
	for {
		err := unix.Fstatat(directory, path, metadata, flags)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		return err
	}
}

// Stat queries metadata for the filesystem entry at the specified path,
// following symbolic links. The underlying syscall variant with 64-bit inode
// metadata is selected per platform by the syscall bindings.
func Stat(path string) (*StatRecord, error) {
	var metadata unix.Stat_t
	if err := statRetryingOnEINTR(path, &metadata); err != nil {
		return nil, err
	}
	return statRecordFromRaw(&metadata), nil
}

// Lstat queries metadata for the filesystem entry at the specified path
// without following symbolic links.
func Lstat(path string) (*StatRecord, error) {
	var metadata unix.Stat_t
	if err := lstatRetryingOnEINTR(path, &metadata); err != nil {
		return nil, err
	}
	return statRecordFromRaw(&metadata), nil
}

// Fstatat queries metadata for the filesystem entry at the specified path,
// resolved relative to the specified directory file descriptor. The flags
// value accepts AtSymlinkNoFollow.
func Fstatat(directory int, path string, flags int) (*StatRecord, error) {
	var metadata unix.Stat_t
	if err := fstatatRetryingOnEINTR(directory, path, &metadata, flags); err != nil {
		return nil, err
	}
	return statRecordFromRaw(&metadata), nil
}
