package dispatch

import "errors"

// Sentinel errors for the dispatch package.
var (
	// ErrAlreadyRunning is returned when Start is called on a running pool.
	ErrAlreadyRunning = errors.New("worker pool is already running")

	// ErrNotRunning is returned when operations are attempted on a stopped pool.
	ErrNotRunning = errors.New("worker pool is not running")

	// ErrQueueFull is returned when the queue cannot accept more invocations.
	ErrQueueFull = errors.New("invocation queue is full")
)
