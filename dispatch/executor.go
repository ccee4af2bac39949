package dispatch

import (
	"context"
	"runtime/debug"
	"time"
)

// Executor runs handler invocations with panic recovery and timing.
type Executor struct {
	panicHandler PanicHandler
}

// NewExecutor creates an executor with the given options.
func NewExecutor(opts ...ExecutorOption) *Executor {
	e := &Executor{
		panicHandler: defaultPanicHandler,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExecutorOption configures an Executor.
type ExecutorOption func(*Executor)

// WithExecutorPanicHandler sets the panic handler for the executor.
func WithExecutorPanicHandler(h PanicHandler) ExecutorOption {
	return func(e *Executor) {
		if h != nil {
			e.panicHandler = h
		}
	}
}

// Execute runs one handler invocation and returns its Result.
// Panics are recovered, never propagated to the caller.
func (e *Executor) Execute(ctx context.Context, event any, handler Handler) (result Result) {
	// A context cancelled before execution skips the invocation.
	select {
	case <-ctx.Done():
		return Result{
			Error:   ctx.Err(),
			Skipped: true,
		}
	default:
	}

	start := time.Now()

	defer func() {
		result.Duration = time.Since(start)

		if r := recover(); r != nil {
			stack := debug.Stack()

			result.Success = false
			result.Panicked = true
			result.PanicValue = r
			result.PanicStack = stack

			// The panic handler must not be able to crash the process
			// either.
			func() {
				defer func() { _ = recover() }()
				e.panicHandler(event, r, stack)
			}()
		}
	}()

	if err := handler.Handle(ctx, event); err != nil {
		result.Error = err
		return result
	}

	result.Success = true
	return result
}
