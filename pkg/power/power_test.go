package power

import (
	"errors"
	"testing"
)

// mockInhibitor is an inhibitor that records its release.
type mockInhibitor struct {
	// released indicates whether or not the inhibitor has been released.
	released bool
}

// release implements inhibitor.release.
func (i *mockInhibitor) release() error {
	i.released = true
	return nil
}

// withMockInhibitor substitutes a mock platform inhibitor for the duration of
// a test and returns accessors for the acquisition count and the most
// recently acquired inhibitor.
func withMockInhibitor(t *testing.T) (func() int, func() *mockInhibitor) {
	t.Helper()
	previous := acquireInhibitor
	var acquisitions int
	var current *mockInhibitor
	acquireInhibitor = func() (inhibitor, error) {
		acquisitions++
		current = &mockInhibitor{}
		return current, nil
	}
	t.Cleanup(func() {
		acquireInhibitor = previous
	})
	return func() int { return acquisitions }, func() *mockInhibitor { return current }
}

// TestBalancedPushPop verifies that K pushes followed by K pops acquire the
// platform inhibitor exactly once and release it at the end.
func TestBalancedPushPop(t *testing.T) {
	acquisitions, current := withMockInhibitor(t)

	// Push and pop a nested stack.
	const depth = 5
	for i := 0; i < depth; i++ {
		if err := PushDisableSleep(); err != nil {
			t.Fatal("push failed:", err)
		}
	}
	if !SleepDisabled() {
		t.Error("sleep not disabled after pushes")
	}
	for i := 0; i < depth; i++ {
		if err := PopDisableSleep(); err != nil {
			t.Fatal("pop failed:", err)
		}
	}

	// Verify final state.
	if SleepDisabled() {
		t.Error("sleep still disabled after balanced pops")
	}
	if acquisitions() != 1 {
		t.Error("unexpected inhibitor acquisition count:", acquisitions())
	}
	if !current().released {
		t.Error("inhibitor not released after balanced pops")
	}
}

// TestUnbalancedStackHoldsInhibition verifies that K pushes and K-1 pops
// leave sleep disabled.
func TestUnbalancedStackHoldsInhibition(t *testing.T) {
	_, current := withMockInhibitor(t)

	// Push three times and pop twice.
	for i := 0; i < 3; i++ {
		if err := PushDisableSleep(); err != nil {
			t.Fatal("push failed:", err)
		}
	}
	for i := 0; i < 2; i++ {
		if err := PopDisableSleep(); err != nil {
			t.Fatal("pop failed:", err)
		}
	}

	// Verify that inhibition is still held, then restore balance.
	if !SleepDisabled() {
		t.Error("sleep not disabled with outstanding request")
	}
	if current().released {
		t.Error("inhibitor released with outstanding request")
	}
	if err := PopDisableSleep(); err != nil {
		t.Fatal("final pop failed:", err)
	}
}

// TestUnderflowPanics verifies that an unbalanced pop terminates the process
// via panic, since it indicates a broken calling layer.
func TestUnderflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("unbalanced pop did not panic")
		}
	}()
	PopDisableSleep()
}

// TestWhileSleepDisabled verifies that the guarded scope helper releases
// inhibition on all exit paths and still invokes the function on unsupported
// platforms.
func TestWhileSleepDisabled(t *testing.T) {
	_, current := withMockInhibitor(t)

	// Verify release on the normal path.
	invoked := false
	if err := WhileSleepDisabled(func() error {
		invoked = true
		if !SleepDisabled() {
			t.Error("sleep not disabled inside guarded scope")
		}
		return nil
	}); err != nil {
		t.Fatal("guarded scope failed:", err)
	}
	if !invoked {
		t.Error("guarded scope did not invoke function")
	}
	if SleepDisabled() || !current().released {
		t.Error("inhibition not released after guarded scope")
	}

	// Verify release on the error path.
	expected := errors.New("build failed")
	if err := WhileSleepDisabled(func() error { return expected }); !errors.Is(err, expected) {
		t.Error("guarded scope did not propagate error:", err)
	}
	if SleepDisabled() {
		t.Error("inhibition not released after failing guarded scope")
	}
}

// TestWhileSleepDisabledUnsupported verifies that the guarded scope helper
// still runs on platforms without inhibition support.
func TestWhileSleepDisabledUnsupported(t *testing.T) {
	previous := acquireInhibitor
	acquireInhibitor = func() (inhibitor, error) {
		return nil, ErrUnsupported
	}
	t.Cleanup(func() {
		acquireInhibitor = previous
	})

	invoked := false
	if err := WhileSleepDisabled(func() error {
		invoked = true
		return nil
	}); err != nil {
		t.Fatal("guarded scope failed on unsupported platform:", err)
	}
	if !invoked {
		t.Error("guarded scope did not invoke function on unsupported platform")
	}
}
