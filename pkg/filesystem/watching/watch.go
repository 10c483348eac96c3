// Package watching provides metadata change watching for filesystem trees,
// using native OS notification where available and falling back to
// stat-based polling elsewhere. Events coalesce through a non-blocking
// strobe channel.
package watching

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"

	"github.com/osbridge-io/osbridge/pkg/filesystem"
)

const (
	// DefaultPollingInterval is the default interval for the polling
	// fallback.
	DefaultPollingInterval = 10 * time.Second
)

// metadataEqual returns whether or not two stat records agree on the fields
// that indicate content change. Access and status change timestamps are
// excluded because they churn without content modification.
func metadataEqual(first, second *filesystem.StatRecord) bool {
	return first.Mode == second.Mode &&
		first.Size == second.Size &&
		first.Seconds(filesystem.TimeModification) == second.Seconds(filesystem.TimeModification) &&
		first.Nanoseconds(filesystem.TimeModification) == second.Nanoseconds(filesystem.TimeModification)
}

// poll scans the tree rooted at the specified path and compares the resulting
// stat record population against an existing snapshot.
func poll(root string, existing map[string]*filesystem.StatRecord) (map[string]*filesystem.StatRecord, bool, error) {
	// Create our result map.
	result := make(map[string]*filesystem.StatRecord, len(existing))

	// Create a walk visitor that records and compares metadata. The walk
	// provides its own stat information, but we re-query through the stat
	// facade so that comparisons operate on normalized records.
	changed := false
	visitor := func(path string, _ os.FileInfo, err error) error {
		// If there's an error, pass it forward.
		if err != nil {
			return err
		}

		// Query and insert the record for this path.
		record, err := filesystem.Lstat(path)
		if err != nil {
			return err
		}
		result[path] = record

		// Compare the record for this path.
		if previous, ok := existing[path]; !ok {
			changed = true
		} else if !metadataEqual(record, previous) {
			changed = true
		}

		// Success.
		return nil
	}

	// Perform the walk. If it fails, don't return a partial map.
	if err := filepath.Walk(root, visitor); err != nil {
		return nil, false, errors.Wrap(err, "unable to perform filesystem walk")
	}

	// Watch for deletions, which won't appear in the path-wise comparison.
	if len(result) != len(existing) {
		changed = true
	}

	// Done.
	return result, changed, nil
}

// Watch watches the tree rooted at the specified path for metadata changes,
// strobing the events channel (in a non-blocking fashion) each time a change
// is detected. It uses native watching where supported, falling back to
// polling at the specified interval. It runs until the context is cancelled.
func Watch(ctx context.Context, root string, events chan struct{}, pollingInterval time.Duration) error {
	// Validate the polling interval.
	if pollingInterval <= 0 {
		pollingInterval = DefaultPollingInterval
	}

	// Attempt to use native watching on this path. This will only return on
	// failure to establish the watch or on cancellation.
	watchNative(ctx, root, events)

	// If native watching failed, check (in a non-blocking fashion) whether it
	// was due to cancellation. If so, then we don't want to fall back to
	// polling and can save some setup.
	select {
	case <-ctx.Done():
		return errors.New("watch cancelled")
	default:
	}

	// Perform an initial scan to establish a baseline. If it fails, we start
	// with an empty baseline and let the polling loop retry.
	contents, _, _ := poll(root, nil)

	// Create a timer to regulate polling.
	timer := time.NewTimer(pollingInterval)
	defer timer.Stop()

	// Loop and poll for changes, watching for cancellation.
	for {
		select {
		case <-timer.C:
			// Perform a scan. We have to assume that errors here are due to
			// concurrent modifications, so we just continue polling.
			newContents, changed, err := poll(root, contents)
			if err == nil {
				// Forward any change in a non-blocking fashion and store the
				// new contents.
				if changed {
					select {
					case events <- struct{}{}:
					default:
					}
				}
				contents = newContents
			}

			// Reset the timer.
			timer.Reset(pollingInterval)
		case <-ctx.Done():
			return errors.New("watch cancelled")
		}
	}
}
