//go:build linux || darwin

package filesystem

import (
	"bytes"
	"errors"
	"testing"

	"golang.org/x/sys/unix"

	"github.com/osbridge-io/osbridge/pkg/syserror"
)

// testAttributeName is the attribute name used for read/write tests. The
// user namespace is required on Linux for attributes on regular files.
const testAttributeName = "user.osbridge-test"

// TestAttributeAbsent verifies that reading an attribute that was never set
// reports tagged absence rather than failure.
func TestAttributeAbsent(t *testing.T) {
	// Create a test file.
	path := createTestFile(t)

	// Read a never-set attribute.
	buffer := make([]byte, 64)
	if _, err := GetAttribute(path, testAttributeName, buffer); err == nil {
		t.Fatal("read of never-set attribute succeeded")
	} else if !errors.Is(err, syserror.ErrNoAttribute) {
		t.Error("read of never-set attribute reported failure instead of absence:", err)
	}

	// Verify identical behavior for the non-following variant.
	if _, err := LGetAttribute(path, testAttributeName, buffer); !errors.Is(err, syserror.ErrNoAttribute) {
		t.Error("non-following read of never-set attribute reported failure instead of absence:", err)
	}
}

// TestAttributeRoundTrip verifies that a set attribute reads back with its
// size and contents, and that undersized buffers surface the platform's
// native truncation error.
func TestAttributeRoundTrip(t *testing.T) {
	// Create a test file and set an attribute. Some filesystems (and some CI
	// environments) don't support extended attributes, in which case there's
	// nothing to test.
	path := createTestFile(t)
	value := []byte("attribute value")
	if err := unix.Setxattr(path, testAttributeName, value, 0); err != nil {
		t.Skip("extended attributes unsupported on test filesystem:", err)
	}

	// Read the attribute back.
	buffer := make([]byte, 64)
	size, err := GetAttribute(path, testAttributeName, buffer)
	if err != nil {
		t.Fatal("attribute read failed:", err)
	}
	if size != len(value) || !bytes.Equal(buffer[:size], value) {
		t.Error("attribute value mismatch")
	}

	// Verify size probing.
	if size, err := SizeAttribute(path, testAttributeName); err != nil {
		t.Fatal("attribute size probe failed:", err)
	} else if size != len(value) {
		t.Error("unexpected attribute size:", size)
	}
	if size, err := LSizeAttribute(path, testAttributeName); err != nil {
		t.Fatal("non-following attribute size probe failed:", err)
	} else if size != len(value) {
		t.Error("unexpected non-following attribute size:", size)
	}

	// Verify native truncation semantics for undersized buffers.
	if _, err := GetAttribute(path, testAttributeName, make([]byte, 1)); !errors.Is(err, unix.ERANGE) {
		t.Error("undersized buffer did not report ERANGE:", err)
	}
}
