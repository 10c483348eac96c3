package sysctl

import (
	"testing"
)

// TestKernelOSType verifies that a basic named query returns a sensible
// result on Darwin.
func TestKernelOSType(t *testing.T) {
	if osType, err := String("kern.ostype"); err != nil {
		t.Fatal("unable to query kern.ostype:", err)
	} else if osType != "Darwin" {
		t.Error("unexpected kernel OS type:", osType)
	}
}
