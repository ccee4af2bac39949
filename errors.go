package disgear

import (
	"errors"
	"fmt"

	"github.com/disgear/disgear/event"
)

// Sentinel errors for the core.
var (
	// ErrNotRunning is returned when Dispatch is called before Start or
	// after Stop.
	ErrNotRunning = errors.New("dispatcher is not running")

	// ErrAlreadyRunning is returned when Start is called twice.
	ErrAlreadyRunning = errors.New("dispatcher is already running")

	// ErrNilEvent is returned when a nil event is dispatched.
	ErrNilEvent = errors.New("event cannot be nil")

	// ErrInvalidKind is returned when a registration names an empty kind.
	ErrInvalidKind = errors.New("invalid event kind")

	// ErrNilHandler is returned when a nil handler is registered.
	ErrNilHandler = errors.New("handler cannot be nil")

	// ErrNilGear is returned when a nil gear is attached or detached.
	ErrNilGear = errors.New("gear cannot be nil")

	// ErrAlreadyAttached is returned when attaching a gear that already
	// has a parent. Detach it first.
	ErrAlreadyAttached = errors.New("gear is already attached")

	// ErrNotAttached is returned when detaching a gear that is not a
	// child of the receiver.
	ErrNotAttached = errors.New("gear is not attached")

	// ErrCyclicAttach is returned when attaching a gear to itself or to
	// one of its own descendants.
	ErrCyclicAttach = errors.New("attachment would create a cycle")
)

// HandlerError wraps an error returned by a listener, attributed to the
// gear and kind it fired for.
type HandlerError struct {
	// Gear is the name of the node owning the listener.
	Gear string

	// Kind is the event kind the listener fired for.
	Kind event.Kind

	// Err is the error the listener returned.
	Err error
}

// Error implements the error interface.
func (e *HandlerError) Error() string {
	return fmt.Sprintf("listener error on gear %q for %s: %v", e.Gear, e.Kind, e.Err)
}

// Unwrap returns the listener's error.
func (e *HandlerError) Unwrap() error {
	return e.Err
}

// PanicError wraps a listener panic, attributed to the gear and kind it
// fired for.
type PanicError struct {
	// Gear is the name of the node owning the listener.
	Gear string

	// Kind is the event kind the listener fired for.
	Kind event.Kind

	// Value is the value passed to panic().
	Value any

	// Stack is the stack trace at the time of the panic.
	Stack []byte
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("listener panic on gear %q for %s: %v", e.Gear, e.Kind, e.Value)
}
