package syserror

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// Kind classifies a UNIX error number into the semantic categories used by
// the host runtime's I/O error taxonomy.
type Kind uint8

const (
	// KindIO represents a generic I/O error.
	KindIO Kind = iota
	// KindNotFound represents a missing filesystem entry.
	KindNotFound
	// KindPermission represents a permission or access error.
	KindPermission
	// KindExists represents an already-existing filesystem entry.
	KindExists
	// KindUnsupported represents an operation that isn't supported on this
	// platform.
	KindUnsupported
)

// String provides a human-readable representation of an error kind.
func (k Kind) String() string {
	switch k {
	case KindIO:
		return "I/O error"
	case KindNotFound:
		return "not found"
	case KindPermission:
		return "permission denied"
	case KindExists:
		return "already exists"
	case KindUnsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

// Classify maps a UNIX error number to the error kind that the caller should
// surface. Unknown error numbers classify as generic I/O errors rather than
// failing.
func Classify(number syscall.Errno) Kind {
	switch number {
	case unix.ENOENT, unix.ENOTDIR:
		return KindNotFound
	case unix.EACCES, unix.EPERM:
		return KindPermission
	case unix.EEXIST:
		return KindExists
	case unix.ENOSYS, unix.ENOTSUP:
		return KindUnsupported
	default:
		return KindIO
	}
}
