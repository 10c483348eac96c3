//go:build darwin || freebsd || openbsd || netbsd

package syserror

import (
	"golang.org/x/sys/unix"
)

// ErrNoAttribute is the error number indicating that an extended attribute
// does not exist on a filesystem entry. Darwin and the BSDs lack ENODATA, so
// the analogous ENOATTR is used instead.
const ErrNoAttribute = unix.ENOATTR
