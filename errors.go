package periodic

import (
	"errors"
	"fmt"
)

var (
	// ErrNilFunc is returned by Spawn when the callable is nil.
	ErrNilFunc = errors.New("periodic: nil func")
	// ErrNegativePeriod is returned by Spawn when the period is below zero.
	ErrNegativePeriod = errors.New("periodic: negative period")

	// ErrAlreadyCancelled is returned by Cancel when the handle was already used.
	ErrAlreadyCancelled = errors.New("periodic: task already cancelled")

	// ErrPanicked indicates the loop terminated because the callable panicked.
	ErrPanicked = errors.New("periodic: func panicked")
	// ErrExited indicates the loop terminated because the callable called runtime.Goexit.
	ErrExited = errors.New("periodic: func exited goroutine")
)

// SpawnError is returned by Spawn when a task could not be started.
// No goroutine is running and no handle exists when it is returned.
type SpawnError struct {
	Name string
	Err  error
}

func (e *SpawnError) Error() string {

	if e.Name == "" {
		return fmt.Sprintf("periodic: spawn: %v", e.Err)
	}
	return fmt.Sprintf("periodic: spawn %q: %v", e.Name, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }

// JoinError is returned by Cancel when the background goroutine terminated
// abnormally. By the time it is observed the goroutine is gone.
type JoinError struct {
	Name string
	// Value is the recovered panic value. Nil when the func called runtime.Goexit.
	Value any
	// Stack is the stack of the panicking goroutine, captured at recovery.
	Stack []byte

	exited bool
}

func (e *JoinError) Error() string {

	var what string
	if e.exited {
		what = "func exited goroutine"
	} else {
		what = fmt.Sprintf("func panicked: %v", e.Value)
	}
	if e.Name == "" {
		return "periodic: " + what
	}
	return fmt.Sprintf("periodic: task %q: %s", e.Name, what)
}

func (e *JoinError) Unwrap() error {

	if e.exited {
		return ErrExited
	}
	return ErrPanicked
}
