package filesystem

import (
	"golang.org/x/sys/unix"
)

// Mode is an opaque type representing a file mode. It is guaranteed to be
// convertable to a uint32 value. It is the raw underlying file mode from the
// stat structure (as opposed to the os package's FileMode implementation).
type Mode uint32

const (
	// ModeTypeMask is a bit mask that isolates type information. After
	// masking, the resulting value can be compared with any of the ModeType*
	// values (other than ModeTypeMask).
	ModeTypeMask = Mode(unix.S_IFMT)
	// ModeTypeDirectory represents a directory.
	ModeTypeDirectory = Mode(unix.S_IFDIR)
	// ModeTypeFile represents a regular file.
	ModeTypeFile = Mode(unix.S_IFREG)
	// ModeTypeSymbolicLink represents a symbolic link.
	ModeTypeSymbolicLink = Mode(unix.S_IFLNK)
	// ModePermissionsMask is a bit mask that isolates permission bits.
	ModePermissionsMask = Mode(unix.S_IRWXU | unix.S_IRWXG | unix.S_IRWXO)
)

// IsDirectory returns whether or not the mode represents a directory.
func (m Mode) IsDirectory() bool {
	return m&ModeTypeMask == ModeTypeDirectory
}

// IsRegularFile returns whether or not the mode represents a regular file.
func (m Mode) IsRegularFile() bool {
	return m&ModeTypeMask == ModeTypeFile
}

// IsSymbolicLink returns whether or not the mode represents a symbolic link.
func (m Mode) IsSymbolicLink() bool {
	return m&ModeTypeMask == ModeTypeSymbolicLink
}
