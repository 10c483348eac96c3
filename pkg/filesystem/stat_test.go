//go:build linux || darwin || freebsd

package filesystem

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/sys/unix"
)

// createTestFile creates a file with some content in a temporary directory
// and returns its path.
func createTestFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "entry")
	if err := os.WriteFile(path, []byte("contents"), 0600); err != nil {
		t.Fatal("unable to create test file:", err)
	}
	return path
}

// TestStatLstatAgreeOnRegularFile verifies that stat and lstat report
// identical records for a regular file that isn't a symbolic link.
func TestStatLstatAgreeOnRegularFile(t *testing.T) {
	// Create a test file.
	path := createTestFile(t)

	// Query metadata both ways.
	statRecord, err := Stat(path)
	if err != nil {
		t.Fatal("stat failed:", err)
	}
	lstatRecord, err := Lstat(path)
	if err != nil {
		t.Fatal("lstat failed:", err)
	}

	// Compare records.
	if *statRecord != *lstatRecord {
		t.Error("stat and lstat records differ for regular file")
	}
	if !statRecord.Mode.IsRegularFile() {
		t.Error("stat record does not indicate a regular file")
	}
}

// TestLstatReportsSymbolicLink verifies that lstat reports the link itself.
func TestLstatReportsSymbolicLink(t *testing.T) {
	// Create a test file and a symbolic link to it.
	target := createTestFile(t)
	link := filepath.Join(filepath.Dir(target), "link")
	if err := os.Symlink(target, link); err != nil {
		t.Fatal("unable to create symbolic link:", err)
	}

	// Verify that lstat sees the link and stat sees the target.
	if record, err := Lstat(link); err != nil {
		t.Fatal("lstat failed:", err)
	} else if !record.Mode.IsSymbolicLink() {
		t.Error("lstat record does not indicate a symbolic link")
	}
	if record, err := Stat(link); err != nil {
		t.Fatal("stat failed:", err)
	} else if !record.Mode.IsRegularFile() {
		t.Error("stat record does not indicate a regular file")
	}
}

// TestFreshFileTimestamps verifies that access and modification timestamps of
// a freshly created file lie within a small bound of the observed wall-clock
// time, and that nanosecond components respect their invariant range.
func TestFreshFileTimestamps(t *testing.T) {
	// Record the wall-clock time and create a test file.
	before := time.Now().Add(-10 * time.Second).Unix()
	path := createTestFile(t)
	after := time.Now().Add(10 * time.Second).Unix()

	// Query metadata.
	record, err := Stat(path)
	if err != nil {
		t.Fatal("stat failed:", err)
	}

	// Verify timestamp bounds and nanosecond invariants.
	for _, kind := range []TimeKind{TimeAccess, TimeModification, TimeChange} {
		seconds := record.Seconds(kind)
		if seconds < before || seconds > after {
			t.Errorf("%s timestamp out of bounds: %d not in [%d, %d]", kind, seconds, before, after)
		}
		if nanoseconds := record.Nanoseconds(kind); nanoseconds < 0 || nanoseconds >= 1e9 {
			t.Errorf("%s nanoseconds out of range: %d", kind, nanoseconds)
		}
	}
}

// TestFstatat verifies directory-relative metadata queries, including the
// AtSymlinkNoFollow flag.
func TestFstatat(t *testing.T) {
	// Create a test file and open its parent directory.
	path := createTestFile(t)
	directory, err := unix.Open(filepath.Dir(path), unix.O_RDONLY|unix.O_DIRECTORY, 0)
	if err != nil {
		t.Fatal("unable to open directory:", err)
	}
	defer unix.Close(directory)

	// Query metadata relative to the directory and compare against a direct
	// stat query.
	relative, err := Fstatat(directory, filepath.Base(path), 0)
	if err != nil {
		t.Fatal("fstatat failed:", err)
	}
	direct, err := Stat(path)
	if err != nil {
		t.Fatal("stat failed:", err)
	}
	if *relative != *direct {
		t.Error("fstatat and stat records differ")
	}

	// Verify that queries for missing entries fail.
	if _, err := Fstatat(directory, "missing", 0); err == nil {
		t.Error("fstatat succeeded for missing entry")
	}
}

// TestStatRecordSize verifies that sizes are reported faithfully.
func TestStatRecordSize(t *testing.T) {
	path := createTestFile(t)
	record, err := Stat(path)
	if err != nil {
		t.Fatal("stat failed:", err)
	}
	if record.Size != uint64(len("contents")) {
		t.Error("unexpected size in stat record:", record.Size)
	}
}
