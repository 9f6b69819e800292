package periodic

import (
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// loop is the invoke-then-sleep state machine run by the task goroutine.
// It is RUNNING until it observes the cancellation flag, then STOPPED.
type loop struct {
	h      *Handle
	fn     func()
	log    *slog.Logger
	metric string

	invocations prometheus.Counter
}

func (l *loop) run() {

	l.invocations = invocationsCounter.WithLabelValues(l.metric)

	var clean bool
	defer func() {
		if !clean {
			// Either a panic unwinding through here, or runtime.Goexit (recover returns nil).
			p := recover()
			jerr := &JoinError{Name: l.h.name, Value: p, Stack: debug.Stack(), exited: p == nil}
			l.h.err = jerr
			panicsCounter.WithLabelValues(l.metric).Inc()
			l.log.Error("periodic task terminated abnormally", "err", jerr, "stack", string(jerr.Stack))
		} else {
			l.log.Debug("periodic task stopped", "invocations", l.h.invocations.Load())
		}
		runningLoops.Dec()
		close(l.h.done)
	}()

	// A stale read only delays stopping by one invocation and sleep.
	for !l.h.cancelled.Load() {
		l.fn()
		l.h.invocations.Add(1)
		l.invocations.Inc()
		l.sleep()
	}
	clean = true
}

// sleep suspends for the period, returning early once the wake channel is closed.
func (l *loop) sleep() {

	if l.h.period <= 0 {
		return
	}
	t := time.NewTimer(l.h.period)
	defer t.Stop()
	select {
	case <-t.C:
	case <-l.h.wake:
	}
}
