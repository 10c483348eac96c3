package power

import (
	"os/exec"

	"github.com/pkg/errors"
)

// caffeinatePath is the path to the system caffeinate utility.
const caffeinatePath = "/usr/bin/caffeinate"

// caffeinateInhibitor is an inhibitor backed by a caffeinate child process.
// The process asserts against display, idle, disk, and system sleep for as
// long as it runs.
type caffeinateInhibitor struct {
	// process is the running caffeinate process.
	process *exec.Cmd
}

// release implements inhibitor.release.
func (i *caffeinateInhibitor) release() error {
	if err := i.process.Process.Kill(); err != nil {
		return errors.Wrap(err, "unable to terminate caffeinate")
	}
	i.process.Wait()
	return nil
}

// acquirePlatformInhibitor starts a caffeinate process to assert against
// sleep. This avoids a cgo dependency on the IOKit power assertion APIs.
func acquirePlatformInhibitor() (inhibitor, error) {
	process := exec.Command(caffeinatePath, "-dims")
	if err := process.Start(); err != nil {
		return nil, errors.Wrap(ErrUnsupported, "unable to start caffeinate")
	}
	return &caffeinateInhibitor{process: process}, nil
}
