//go:build !(linux || darwin)

package filesystem

import (
	"golang.org/x/sys/unix"
)

// XattrSupported indicates whether or not extended attribute reads are
// supported on this platform.
const XattrSupported = false

// GetAttribute reads the extended attribute with the specified name from the
// filesystem entry at the specified path. It is unsupported on this platform.
func GetAttribute(path, name string, buffer []byte) (int, error) {
	return 0, unix.ENOSYS
}

// LGetAttribute reads the extended attribute with the specified name from the
// filesystem entry at the specified path. It is unsupported on this platform.
func LGetAttribute(path, name string, buffer []byte) (int, error) {
	return 0, unix.ENOSYS
}
