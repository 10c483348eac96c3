//go:build !darwin

package sysctl

import (
	"errors"
	"testing"

	"golang.org/x/sys/unix"
)

// TestUnsupportedSentinel verifies that named sysctl queries report ENOSYS on
// platforms without support rather than crashing.
func TestUnsupportedSentinel(t *testing.T) {
	if _, err := ByName("kern.ostype"); !errors.Is(err, unix.ENOSYS) {
		t.Error("raw query did not report ENOSYS:", err)
	}
	if _, err := Uint32("kern.osrevision"); !errors.Is(err, unix.ENOSYS) {
		t.Error("uint32 query did not report ENOSYS:", err)
	}
	if Supported {
		t.Error("platform incorrectly reports sysctl support")
	}
}
