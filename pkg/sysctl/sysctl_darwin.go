package sysctl

import (
	"github.com/pkg/errors"

	"golang.org/x/sys/unix"
)

// Supported indicates whether or not named sysctl queries are supported on
// this platform.
const Supported = true

// ByName performs a raw sysctl query for the specified name.
func ByName(name string) ([]byte, error) {
	return unix.SysctlRaw(name)
}

// Uint32 performs a sysctl query for the specified name and decodes the
// result as a 32-bit unsigned integer.
func Uint32(name string) (uint32, error) {
	return unix.SysctlUint32(name)
}

// Uint64 performs a sysctl query for the specified name and decodes the
// result as a 64-bit unsigned integer.
func Uint64(name string) (uint64, error) {
	return unix.SysctlUint64(name)
}

// String performs a sysctl query for the specified name and decodes the
// result as a string.
func String(name string) (string, error) {
	result, err := unix.Sysctl(name)
	if err != nil {
		return "", errors.Wrap(err, "unable to query sysctl")
	}
	return result, nil
}
