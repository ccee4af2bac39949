package dispatch

import (
	"context"
	"time"
)

// Handler is the type-erased handler the engine executes.
// It mirrors the core's handler shape to avoid a circular import.
type Handler interface {
	Handle(ctx context.Context, event any) error
}

// HandlerFunc is a function adapter for Handler.
type HandlerFunc func(ctx context.Context, event any) error

// Handle implements the Handler interface.
func (f HandlerFunc) Handle(ctx context.Context, event any) error {
	return f(ctx, event)
}

// Result is the outcome of one handler invocation.
type Result struct {
	// Success is true if the handler completed without error or panic.
	Success bool

	// Error is the error returned by the handler, if any.
	Error error

	// Panicked is true if the handler panicked.
	Panicked bool

	// PanicValue is the value passed to panic(), if Panicked is true.
	PanicValue any

	// PanicStack is the stack trace at the point of panic.
	PanicStack []byte

	// Duration is how long the handler took to execute.
	Duration time.Duration

	// Skipped is true if the handler was not executed (context cancelled).
	Skipped bool
}

// IsSuccess returns true if the invocation completed cleanly.
func (r Result) IsSuccess() bool {
	return r.Success && !r.Panicked && r.Error == nil
}

// IsError returns true if the handler returned an error (not a panic).
func (r Result) IsError() bool {
	return r.Error != nil && !r.Panicked
}

// IsPanic returns true if the handler panicked.
func (r Result) IsPanic() bool {
	return r.Panicked
}

// Callback receives the Result of a completed invocation.
type Callback func(Result)

// PanicHandler is called when a handler panics during execution.
// It receives the event being processed, the panic value, and the stack.
type PanicHandler func(event any, panicValue any, stack []byte)

// defaultPanicHandler is a no-op; panics are still captured in the Result.
func defaultPanicHandler(event any, panicValue any, stack []byte) {
}
