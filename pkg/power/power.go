// Package power provides a process-wide, nestable sleep inhibition stack.
// Sleep is disabled while at least one push is outstanding; the platform
// inhibitor is acquired on the first push and released on the last pop.
// Pushes and pops must be balanced by the caller.
package power

import (
	"sync"

	"github.com/pkg/errors"
)

// ErrUnsupported indicates that sleep inhibition isn't supported on this
// platform (or that the platform's inhibition service is unavailable).
var ErrUnsupported = errors.New("sleep inhibition not supported")

// inhibitor represents a held platform sleep inhibitor.
type inhibitor interface {
	// release releases the inhibitor, re-enabling sleep.
	release() error
}

// acquireInhibitor acquires the platform sleep inhibitor. It is a variable so
// that tests can substitute a mock implementation.
var acquireInhibitor = acquirePlatformInhibitor

var (
	// inhibitionLock guards inhibitionDepth and heldInhibitor. Pushes and
	// pops may arrive from concurrent build execution threads.
	inhibitionLock sync.Mutex
	// inhibitionDepth is the number of outstanding inhibition requests.
	inhibitionDepth int
	// heldInhibitor is the platform inhibitor held while inhibitionDepth is
	// nonzero.
	heldInhibitor inhibitor
)

// PushDisableSleep registers an inhibition request, acquiring the platform
// inhibitor on the transition from zero outstanding requests to one. It
// returns ErrUnsupported (rather than failing fatally) where no platform
// inhibitor exists.
func PushDisableSleep() error {
	// Acquire the stack lock and ensure its release.
	inhibitionLock.Lock()
	defer inhibitionLock.Unlock()

	// If this is the first outstanding request, acquire the platform
	// inhibitor.
	if inhibitionDepth == 0 {
		held, err := acquireInhibitor()
		if err != nil {
			return err
		}
		heldInhibitor = held
	}

	// Record the request.
	inhibitionDepth++

	// Success.
	return nil
}

// PopDisableSleep releases an inhibition request, releasing the platform
// inhibitor on the transition from one outstanding request to zero. An
// unbalanced pop indicates a broken caller and terminates the process.
func PopDisableSleep() error {
	// Acquire the stack lock and ensure its release.
	inhibitionLock.Lock()
	defer inhibitionLock.Unlock()

	// An unbalanced pop can only arise from a programming error in the
	// calling layer.
	if inhibitionDepth == 0 {
		panic("sleep inhibition stack underflow")
	}

	// Release the request and, if it was the last one, the platform
	// inhibitor.
	inhibitionDepth--
	if inhibitionDepth == 0 {
		held := heldInhibitor
		heldInhibitor = nil
		if err := held.release(); err != nil {
			return errors.Wrap(err, "unable to release sleep inhibitor")
		}
	}

	// Success.
	return nil
}

// SleepDisabled returns whether or not at least one inhibition request is
// currently outstanding.
func SleepDisabled() bool {
	inhibitionLock.Lock()
	defer inhibitionLock.Unlock()
	return inhibitionDepth > 0
}

// WhileSleepDisabled invokes the specified function with sleep disabled,
// guaranteeing release of the inhibition request on all exit paths. If the
// platform doesn't support sleep inhibition, the function is still invoked,
// just without inhibition.
func WhileSleepDisabled(run func() error) error {
	// Attempt to disable sleep. Unsupported platforms proceed without
	// inhibition; any other acquisition failure is reported.
	if err := PushDisableSleep(); err == nil {
		defer PopDisableSleep()
	} else if !errors.Is(err, ErrUnsupported) {
		return errors.Wrap(err, "unable to disable sleep")
	}

	// Invoke the function.
	return run()
}
