//go:build linux || darwin

package filesystem

import (
	"errors"

	"golang.org/x/sys/unix"

	"github.com/osbridge-io/osbridge/pkg/syserror"
)

// XattrSupported indicates whether or not extended attribute reads are
// supported on this platform.
const XattrSupported = true

// GetAttribute reads the extended attribute with the specified name from the
// filesystem entry at the specified path, following symbolic links, and
// returns the number of bytes written to the buffer. If the attribute does
// not exist, it returns syserror.ErrNoAttribute; any other failure returns
// the underlying error number. Passing a nil buffer queries the attribute's
// size.
func GetAttribute(path, name string, buffer []byte) (int, error) {
	for {
		size, err := unix.Getxattr(path, name, buffer)
		if errors.Is(err, unix.EINTR) {
			continue
		} else if errors.Is(err, syserror.ErrNoAttribute) {
			return 0, syserror.ErrNoAttribute
		}
		return size, err
	}
}

// LGetAttribute reads the extended attribute with the specified name from the
// filesystem entry at the specified path without following symbolic links. It
// otherwise behaves like GetAttribute.
func LGetAttribute(path, name string, buffer []byte) (int, error) {
	for {
		size, err := unix.Lgetxattr(path, name, buffer)
		if errors.Is(err, unix.EINTR) {
			continue
		} else if errors.Is(err, syserror.ErrNoAttribute) {
			return 0, syserror.ErrNoAttribute
		}
		return size, err
	}
}
