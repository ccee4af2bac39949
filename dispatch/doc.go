// Package dispatch provides the execution engine behind the dispatcher:
// panic-isolated handler invocation, a bounded asynchronous worker pool,
// and a synchronous path for deterministic delivery.
//
// # Executor
//
// Executor runs a single handler invocation. It recovers panics, captures
// the stack trace, and reports the outcome as a Result. A misbehaving
// handler can fail or panic without affecting any other invocation.
//
// # Pool
//
// Pool is a bounded worker pool. Invocations are enqueued and executed by a
// fixed set of workers; a full queue rejects with ErrQueueFull rather than
// blocking the producer. Stop drains queued invocations before returning,
// bounded by the caller's context.
//
// Each enqueued invocation may carry a completion callback, which the pool
// invokes with the Result after execution. The core uses this to attribute
// failures to the originating gear and event kind.
//
// # Cancellation
//
// There is no cancellation of an invocation once scheduled: each runs to
// completion or failure independently. A context cancelled before execution
// starts skips the invocation.
package dispatch
