package cancel

import "sync/atomic"

// Signal is a shared cooperative cancellation flag.
//
// A Signal is created unset and moves to cancelled exactly once; it never
// resets. The same *Signal may be handed to any number of goroutines and
// host callers: every holder observes the same state, and any holder may
// cancel. The flag is a single atomic word, so no locking is involved on
// either side.
//
// Cancellation is cooperative. Setting the flag does not interrupt anything
// by itself; operations poll it at their declared checkpoints and abandon
// work when they observe it set.
type Signal struct {
	cancelled atomic.Bool
}

// New returns a fresh, unset Signal.
func New() *Signal {
	return &Signal{}
}

// Cancel sets the flag. It is idempotent and safe to call from any
// goroutine; once set, every subsequent IsCancelled observation reports
// true.
func (s *Signal) Cancel() {
	s.cancelled.Store(true)
}

// IsCancelled reports whether Cancel has been called on this Signal.
//
// Each call is a snapshot: a cancellation issued between two checkpoints is
// visible at the later checkpoint, not retroactively at the earlier one.
func (s *Signal) IsCancelled() bool {
	return s.cancelled.Load()
}
