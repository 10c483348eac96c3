package power

import (
	"github.com/pkg/errors"

	"github.com/godbus/dbus/v5"

	"golang.org/x/sys/unix"
)

// logindInhibitor is an inhibitor backed by a systemd-logind inhibitor lock.
// logind re-enables sleep when the lock's file descriptor is closed.
type logindInhibitor struct {
	// descriptor is the inhibitor lock file descriptor.
	descriptor int
}

// release implements inhibitor.release.
func (i *logindInhibitor) release() error {
	return unix.Close(i.descriptor)
}

// acquirePlatformInhibitor acquires a block-mode sleep and idle inhibitor
// lock from systemd-logind. Systems without a reachable logind (including
// non-systemd systems) report ErrUnsupported.
func acquirePlatformInhibitor() (inhibitor, error) {
	// Connect to the system bus. The shared connection is used because only
	// the returned inhibitor lock descriptor needs to outlive this call.
	connection, err := dbus.SystemBus()
	if err != nil {
		return nil, errors.Wrap(ErrUnsupported, "system bus unavailable")
	}

	// Request the inhibitor lock.
	var descriptor dbus.UnixFD
	manager := connection.Object("org.freedesktop.login1", "/org/freedesktop/login1")
	call := manager.Call("org.freedesktop.login1.Manager.Inhibit", 0,
		"sleep:idle", "osbridge", "build in progress", "block")
	if err := call.Store(&descriptor); err != nil {
		return nil, errors.Wrap(ErrUnsupported, "logind inhibit unavailable")
	}

	// Success.
	return &logindInhibitor{descriptor: int(descriptor)}, nil
}
