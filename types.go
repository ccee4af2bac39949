package disgear

import (
	"context"
	"log/slog"

	"github.com/disgear/disgear/event"
)

// Handler is the interface for event listeners.
type Handler interface {
	// Handle processes one event. Handlers run concurrently with other
	// listeners and must not mutate the event.
	Handle(ctx context.Context, ev event.Event) error
}

// HandlerFunc is a function adapter for Handler.
type HandlerFunc func(ctx context.Context, ev event.Event) error

// Handle implements the Handler interface.
func (f HandlerFunc) Handle(ctx context.Context, ev event.Event) error {
	return f(ctx, ev)
}

// As adapts a statically-typed handler to the type-erased Handler.
// Events of a different concrete type are skipped silently; the dispatcher
// only routes events whose kind matches the registration, so a mismatch
// means a mis-registered kind, which Listen rules out.
func As[T event.Event](fn func(ctx context.Context, ev T) error) Handler {
	return HandlerFunc(func(ctx context.Context, ev event.Event) error {
		if typed, ok := ev.(T); ok {
			return fn(ctx, typed)
		}
		return nil
	})
}

// FilterFunc is a predicate applied before a listener fires.
// Return true to deliver the event. A rejected event does not consume a
// once-listener.
type FilterFunc func(ev event.Event) bool

// Node is anything listeners can be registered on: a Gear or the
// Dispatcher root.
type Node interface {
	// AddListener registers a handler for a kind and returns its handle.
	AddListener(kind event.Kind, h Handler, opts ...ListenOption) (*Listener, error)
}

// Listen registers a statically-typed listener, resolving the event kind
// from the handler's parameter type.
func Listen[T event.Event](n Node, fn func(ctx context.Context, ev T) error, opts ...ListenOption) (*Listener, error) {
	return n.AddListener(event.KindOf[T](), As(fn), opts...)
}

// Failure describes one listener failure for the reporting collaborator.
type Failure struct {
	// Gear is the name of the node owning the listener.
	Gear string

	// Kind is the event kind being delivered.
	Kind event.Kind

	// Event is the event being delivered.
	Event event.Event

	// Err is the listener's error, or a scheduling error such as
	// dispatch.ErrQueueFull. Nil when the listener panicked.
	Err error

	// PanicValue is the recovered panic value, nil unless the listener
	// panicked.
	PanicValue any

	// PanicStack is the stack trace captured at the panic.
	PanicStack []byte
}

// AsError folds the failure into a single error: a *PanicError for
// panics, a *HandlerError otherwise. Useful for failure handlers that
// forward into error-based reporting pipelines.
func (f Failure) AsError() error {
	if f.PanicValue != nil {
		return &PanicError{
			Gear:  f.Gear,
			Kind:  f.Kind,
			Value: f.PanicValue,
			Stack: f.PanicStack,
		}
	}
	return &HandlerError{
		Gear: f.Gear,
		Kind: f.Kind,
		Err:  f.Err,
	}
}

// FailureHandler receives listener failures. It must be safe for
// concurrent use; it is called from worker goroutines.
type FailureHandler func(f Failure)

// defaultFailureHandler logs failures with slog.
func defaultFailureHandler(f Failure) {
	if f.PanicValue != nil {
		slog.Error("listener panic",
			"gear", f.Gear,
			"kind", f.Kind.String(),
			"panic", f.PanicValue,
		)
		return
	}
	slog.Error("listener failure",
		"gear", f.Gear,
		"kind", f.Kind.String(),
		"error", f.Err,
	)
}

// Stats is a snapshot of dispatcher counters.
type Stats struct {
	// EventsDispatched is the number of Dispatch calls accepted.
	EventsDispatched uint64

	// ListenersInvoked is the number of listener invocations scheduled.
	ListenersInvoked uint64

	// ListenerErrors is the number of invocations that returned an error.
	ListenerErrors uint64

	// ListenerPanics is the number of invocations that panicked.
	ListenerPanics uint64

	// InvocationsDropped is the number of invocations rejected by a full
	// queue.
	InvocationsDropped uint64

	// InvocationsSkipped is the number of invocations skipped because
	// their context was cancelled before execution.
	InvocationsSkipped uint64

	// QueueDepth is the current worker-pool backlog.
	QueueDepth int
}
