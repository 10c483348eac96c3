//go:build !darwin

package sysctl

import (
	"golang.org/x/sys/unix"
)

// Supported indicates whether or not named sysctl queries are supported on
// this platform.
const Supported = false

// ByName performs a raw sysctl query for the specified name. It is
// unsupported on this platform.
func ByName(name string) ([]byte, error) {
	return nil, unix.ENOSYS
}

// Uint32 performs a sysctl query for the specified name and decodes the
// result as a 32-bit unsigned integer. It is unsupported on this platform.
func Uint32(name string) (uint32, error) {
	return 0, unix.ENOSYS
}

// Uint64 performs a sysctl query for the specified name and decodes the
// result as a 64-bit unsigned integer. It is unsupported on this platform.
func Uint64(name string) (uint64, error) {
	return 0, unix.ENOSYS
}

// String performs a sysctl query for the specified name and decodes the
// result as a string. It is unsupported on this platform.
func String(name string) (string, error) {
	return "", unix.ENOSYS
}
