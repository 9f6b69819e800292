// Package periodic runs a func on its own goroutine at a fixed period until cancelled. Example usages:
//
//	// 1. Defaults.
//	h, err := periodic.Spawn(time.Second, func() {
//		// ... do some work here
//	})
//	if err != nil {
//		// handle error
//	}
//
//	// ..... after some time .....
//	if err := h.Cancel(); err != nil {
//		// the func panicked at some point
//	}
//
//
//	// 2. Configured.
//	h, err := periodic.NewBuilder().
//		Name("cache-refresh").
//		Logger(logger).
//		Spawn(10*time.Second, refreshCache)
//
// The func is invoked immediately, then again after each period. Invocations
// never overlap and are never interrupted. The period is measured from the end
// of one invocation to the start of the next; there is no drift correction.
//
// Cancel sets the cancellation flag, wakes the goroutine if it is sleeping and
// waits for it to exit. If cancellation races with the start of an invocation,
// that one invocation still runs. None run after Cancel returns.
//
// A panic in the func stops the loop. It is logged and counted, but the caller
// only receives it as a *JoinError from Cancel; a task that is never cancelled
// never reports it.
package periodic
