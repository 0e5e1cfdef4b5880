package exec

import "context"

// cancelled reports whether execution should stop: either the context
// passed to Execute was cancelled, or Cancel() was called on this
// Executor. Checked at chunk boundaries, never mid-chunk, so no partial
// chunk result is ever observed by a caller.
func (e *Executor) cancelled(ctx context.Context) bool {
	if e.cancel.Load() {
		return true
	}
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}
