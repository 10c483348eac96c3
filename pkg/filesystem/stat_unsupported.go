//go:build !(linux || darwin || freebsd)

package filesystem

import (
	"golang.org/x/sys/unix"
)

// AtSymlinkNoFollow is the flag value that makes Fstatat operate on symbolic
// links themselves rather than their targets. It has no effect on this
// platform.
const AtSymlinkNoFollow = 0

// BirthTimeSupported indicates whether or not birth timestamps are available
// on this platform.
const BirthTimeSupported = false

// Stat queries metadata for the filesystem entry at the specified path,
// following symbolic links. It is unsupported on this platform.
func Stat(path string) (*StatRecord, error) {
	return nil, unix.ENOSYS
}

// Lstat queries metadata for the filesystem entry at the specified path
// without following symbolic links. It is unsupported on this platform.
func Lstat(path string) (*StatRecord, error) {
	return nil, unix.ENOSYS
}

// Fstatat queries metadata for the filesystem entry at the specified path,
// resolved relative to the specified directory file descriptor. It is
// unsupported on this platform.
func Fstatat(directory int, path string, flags int) (*StatRecord, error) {
	return nil, unix.ENOSYS
}
