package periodic

import (
	"context"
	"log/slog"
	"runtime/pprof"
	"time"
)

// Builder holds the optional configuration of a periodic task.
// Setters return the builder for chaining; the last write wins.
type Builder struct {
	name      string
	stackSize uint64
	logger    *slog.Logger
}

// NewBuilder returns a Builder with no name, no stack size and the default logger.
func NewBuilder() *Builder {

	return &Builder{}
}

// Name sets the name of the goroutine running the task. Any string is accepted
// as is. The name is attached to the goroutine as the pprof label "periodic"
// and to logs and metrics.
func (b *Builder) Name(name string) *Builder {

	b.name = name
	return b
}

// StackSize records the requested stack size in bytes.
//
// Goroutine stacks grow on demand and cannot be sized up front, so the value
// is only carried on the Handle and in logs.
func (b *Builder) StackSize(bytes uint64) *Builder {

	b.stackSize = bytes
	return b
}

// Logger sets the logger. If not set, slog.Default() is used.
func (b *Builder) Logger(l *slog.Logger) *Builder {

	b.logger = l
	return b
}

// Spawn repeatedly executes fn, with a period of p, until the returned Handle is cancelled.
//
// fn is invoked on a new goroutine, first immediately and then after every
// sleep of p. fn must be safe to call from that goroutine. A zero period
// invokes fn back to back.
//
// Spawn fails with a *SpawnError when fn is nil or p is negative. Nothing is
// started in that case.
func (b *Builder) Spawn(p time.Duration, fn func()) (*Handle, error) {

	name := b.name
	if fn == nil {
		return nil, &SpawnError{Name: name, Err: ErrNilFunc}
	}
	if p < 0 {
		return nil, &SpawnError{Name: name, Err: ErrNegativePeriod}
	}

	log := b.logger
	if log == nil {
		log = slog.Default()
	}
	log = log.With("system", "periodic")
	if name != "" {
		log = log.With("task", name)
	}

	h := &Handle{
		name:      name,
		stackSize: b.stackSize,
		period:    p,
		wake:      make(chan struct{}),
		done:      make(chan struct{}),
	}
	l := &loop{
		h:      h,
		fn:     fn,
		log:    log,
		metric: metricLabel(name),
	}

	runningLoops.Inc()
	log.Debug("starting periodic task", "period", p, "stack_size", b.stackSize)

	labels := pprof.Labels("periodic", metricLabel(name))
	go pprof.Do(context.Background(), labels, func(context.Context) {
		l.run()
	})

	return h, nil
}

// Spawn is shorthand for NewBuilder().Spawn(p, fn).
func Spawn(p time.Duration, fn func()) (*Handle, error) {

	return NewBuilder().Spawn(p, fn)
}
