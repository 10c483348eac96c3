// Package syserror translates UNIX error numbers into human-readable messages
// and semantic error kinds suitable for mapping onto a host I/O error
// taxonomy. Translation never fails: unknown error numbers degrade to the
// platform's generic description.
package syserror

import (
	"fmt"
	"syscall"

	"golang.org/x/sys/unix"
)

// Message returns a display string combining the specified context message
// with the platform's standard description of the specified error number. If
// the context message is empty, only the error description is returned.
func Message(number syscall.Errno, context string) string {
	if context == "" {
		return number.Error()
	}
	return context + ": " + number.Error()
}

// Name returns the symbolic name of the specified error number (e.g.
// "ENOENT"). If the error number has no known name on this platform, a
// numeric representation is returned.
func Name(number syscall.Errno) string {
	if name := unix.ErrnoName(number); name != "" {
		return name
	}
	return fmt.Sprintf("errno %d", int(number))
}
