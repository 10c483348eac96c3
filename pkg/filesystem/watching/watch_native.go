//go:build linux || darwin

package watching

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/rjeczalik/notify"
)

const (
	// watchEventsBufferSize is the capacity to use for the internal native
	// events channel.
	watchEventsBufferSize = 25
)

// watchNative establishes a recursive native watch on the specified root and
// forwards change strobes to the events channel in a non-blocking fashion. It
// returns on cancellation or if the watch can't be established.
func watchNative(ctx context.Context, root string, events chan struct{}) error {
	// Create a native events channel.
	nativeEvents := make(chan notify.EventInfo, watchEventsBufferSize)

	// Create a recursive watch on the root. Ensure that it's stopped when
	// we're done.
	watchPath := fmt.Sprintf("%s/...", root)
	if err := notify.Watch(watchPath, nativeEvents, notify.All); err != nil {
		return errors.Wrap(err, "unable to create watcher")
	}
	defer notify.Stop(nativeEvents)

	// Poll for the next event or cancellation, forwarding events in a
	// non-blocking manner.
	for {
		select {
		case <-nativeEvents:
			select {
			case events <- struct{}{}:
			default:
			}
		case <-ctx.Done():
			return errors.New("watch cancelled")
		}
	}
}
