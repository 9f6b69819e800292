package periodic

import (
	"sync/atomic"
	"time"
)

// Handle is a running periodic task. It is the only way to stop the task.
//
// A Handle is single use: Cancel stops the task and waits for it, and every
// later call to Cancel returns ErrAlreadyCancelled.
type Handle struct {
	name      string
	stackSize uint64
	period    time.Duration

	// cancelled is read by the loop at the top of every iteration. Once true it stays true.
	cancelled atomic.Bool
	// consumed guards Cancel against a second use of the handle.
	consumed atomic.Bool

	wake chan struct{} // closed by Cancel to interrupt the sleep
	done chan struct{} // closed when the goroutine exits

	// err is written by the loop before done is closed.
	err error

	invocations atomic.Uint64
}

// Cancel tells the task to stop, interrupts any sleep in progress and blocks
// until the task goroutine has exited.
//
// An invocation already in progress is allowed to complete. Cancel does not
// time out: it waits however long that invocation takes.
//
// Cancel returns nil if the goroutine exited cleanly, or a *JoinError if the
// func panicked or called runtime.Goexit at any point before. A task whose
// func panicked reports that only here.
//
// After the first call to Cancel returns the func is never invoked again.
// A concurrent second call returns ErrAlreadyCancelled immediately, possibly
// while the first is still waiting on an invocation; that return carries no
// such guarantee.
func (h *Handle) Cancel() error {

	if !h.consumed.CompareAndSwap(false, true) {
		return ErrAlreadyCancelled
	}

	h.cancelled.Store(true)
	close(h.wake)
	<-h.done

	return h.err
}

// Done returns a channel that is closed when the task goroutine has exited,
// either after Cancel or because the func terminated it abnormally.
func (h *Handle) Done() <-chan struct{} {

	return h.done
}

// Stopped returns true if the task goroutine has exited, otherwise false.
func (h *Handle) Stopped() bool {

	select {
	case <-h.done:
		return true
	default:
		return false
	}
}

// Name returns the normalized task name (may be empty).
func (h *Handle) Name() string { return h.name }

// StackSize returns the stack size recorded by Builder.StackSize, or zero.
func (h *Handle) StackSize() uint64 { return h.stackSize }

// Period returns the period captured at spawn.
func (h *Handle) Period() time.Duration { return h.period }

// Invocations returns the number of invocations of the func that have returned.
func (h *Handle) Invocations() uint64 {

	return h.invocations.Load()
}
