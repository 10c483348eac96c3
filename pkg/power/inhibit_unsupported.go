//go:build !(linux || darwin)

package power

// acquirePlatformInhibitor acquires the platform sleep inhibitor. No
// inhibition mechanism exists on this platform.
func acquirePlatformInhibitor() (inhibitor, error) {
	return nil, ErrUnsupported
}
