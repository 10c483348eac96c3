package syserror

import (
	"golang.org/x/sys/unix"
)

// ErrNoAttribute is the error number indicating that an extended attribute
// does not exist on a filesystem entry.
const ErrNoAttribute = unix.ENODATA
