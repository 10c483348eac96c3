package monitoring

import (
	"sync"

	"github.com/osbridge-io/osbridge/pkg/state"
)

// observation stores the most recently observed value for a monitor kind. It
// is safe for concurrent access and tracks observation indices so that
// consumers (and tests) can await new observations without polling.
type observation struct {
	// lock guards value and valid.
	lock sync.RWMutex
	// value is the most recently observed value.
	value int
	// valid indicates whether or not any observation has occurred.
	valid bool
	// tracker notifies waiters of new observations.
	tracker *state.Tracker
}

// newObservation creates an empty observation store.
func newObservation() *observation {
	return &observation{
		tracker: state.NewTracker(),
	}
}

// set records a new observed value and notifies waiters.
func (o *observation) set(value int) {
	o.lock.Lock()
	o.value = value
	o.valid = true
	o.lock.Unlock()
	o.tracker.NotifyOfChange()
}

// current returns the most recently observed value, or Unobserved if no
// observation has occurred.
func (o *observation) current() int {
	o.lock.RLock()
	defer o.lock.RUnlock()
	if !o.valid {
		return Unobserved
	}
	return o.value
}

// index returns the current observation index.
func (o *observation) index() uint64 {
	return o.tracker.Index()
}

// await blocks until the observation index differs from the previous index
// and returns the new index.
func (o *observation) await(previousIndex uint64) uint64 {
	index, _ := o.tracker.WaitForChange(previousIndex)
	return index
}
