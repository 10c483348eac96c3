//go:build !(linux || darwin)

package watching

import (
	"context"

	"github.com/pkg/errors"
)

// watchNative establishes a recursive native watch on the specified root. It
// is unsupported on this platform, so callers fall back to polling.
func watchNative(ctx context.Context, root string, events chan struct{}) error {
	return errors.New("native watching not supported on this platform")
}
