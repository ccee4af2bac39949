package disgear

import (
	"context"
	"sync/atomic"

	"github.com/disgear/disgear/config"
	"github.com/disgear/disgear/dispatch"
	"github.com/disgear/disgear/event"
)

// Dispatcher is the root node of the gear tree and the entry point for
// inbound events. It owns its own listener table (inherited from the
// embedded Gear) and a worker pool that executes listener invocations.
//
// Dispatch schedules every matching invocation and returns; it never waits
// for listeners, so the transport's read loop is never blocked by listener
// work. In sync mode listeners run inline instead.
type Dispatcher struct {
	*Gear

	queueSize      int
	workerCount    int
	syncMode       bool
	failureHandler FailureHandler

	pool     *dispatch.Pool
	executor *dispatch.Executor
	running  atomic.Bool

	// Stats
	eventsDispatched atomic.Uint64
	invoked          atomic.Uint64
	errCount         atomic.Uint64
	panicCount       atomic.Uint64
	dropped          atomic.Uint64
	skipped          atomic.Uint64
}

// New creates a dispatcher with the given options.
func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		Gear:           NewGear("dispatcher"),
		queueSize:      config.DefaultQueueSize,
		workerCount:    config.DefaultWorkers,
		failureHandler: defaultFailureHandler,
	}
	for _, opt := range opts {
		opt(d)
	}

	d.executor = dispatch.NewExecutor()
	d.pool = dispatch.NewPool(
		dispatch.WithQueueSize(d.queueSize),
		dispatch.WithWorkers(d.workerCount),
	)

	return d
}

// Start makes the dispatcher accept events, launching the worker pool
// unless sync delivery is configured.
func (d *Dispatcher) Start() error {
	if !d.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	if !d.syncMode {
		if err := d.pool.Start(); err != nil {
			d.running.Store(false)
			return err
		}
	}
	return nil
}

// Stop stops accepting events and drains invocations already scheduled,
// bounded by ctx. Listeners in flight run to completion; there is no
// cancellation of scheduled work.
func (d *Dispatcher) Stop(ctx context.Context) error {
	if !d.running.CompareAndSwap(true, false) {
		return ErrNotRunning
	}
	if !d.syncMode {
		return d.pool.Stop(ctx)
	}
	return nil
}

// IsRunning returns true between Start and Stop.
func (d *Dispatcher) IsRunning() bool {
	return d.running.Load()
}

// Dispatch fans one event out to every matching listener on the dispatcher
// and all attached gears, transitively. The traversal set and each node's
// matching listeners are fixed before any handler runs; once-listeners are
// consumed at that point, so a concurrent dispatch of the same kind cannot
// fire them again.
//
// Dispatch returns once every invocation has been scheduled. Listener
// failures are never returned here; they go to the FailureHandler.
func (d *Dispatcher) Dispatch(ctx context.Context, ev event.Event) error {
	if !d.running.Load() {
		return ErrNotRunning
	}
	if ev == nil {
		return ErrNilEvent
	}
	if !ev.Kind().IsValid() {
		return ErrInvalidKind
	}

	d.eventsDispatched.Add(1)

	for _, inv := range d.Gear.collect(ev) {
		d.schedule(ctx, ev, inv)
	}
	return nil
}

// schedule hands one invocation to the execution engine.
func (d *Dispatcher) schedule(ctx context.Context, ev event.Event, inv invocation) {
	d.invoked.Add(1)

	h := dispatch.HandlerFunc(func(ctx context.Context, e any) error {
		return inv.reg.handler.Handle(ctx, e.(event.Event))
	})

	if d.syncMode {
		d.record(inv, ev, d.executor.Execute(ctx, ev, h))
		return
	}

	err := d.pool.Enqueue(ctx, ev, h, func(res dispatch.Result) {
		d.record(inv, ev, res)
	})
	if err != nil {
		d.dropped.Add(1)
		d.failureHandler(Failure{
			Gear:  inv.gear,
			Kind:  ev.Kind(),
			Event: ev,
			Err:   err,
		})
	}
}

// record translates an execution Result into counters and failure reports.
func (d *Dispatcher) record(inv invocation, ev event.Event, res dispatch.Result) {
	switch {
	case res.Panicked:
		d.panicCount.Add(1)
		d.failureHandler(Failure{
			Gear:       inv.gear,
			Kind:       ev.Kind(),
			Event:      ev,
			PanicValue: res.PanicValue,
			PanicStack: res.PanicStack,
		})
	case res.Skipped:
		d.skipped.Add(1)
	case res.Error != nil:
		d.errCount.Add(1)
		d.failureHandler(Failure{
			Gear:  inv.gear,
			Kind:  ev.Kind(),
			Event: ev,
			Err:   res.Error,
		})
	}
}

// Stats returns a snapshot of dispatcher counters.
func (d *Dispatcher) Stats() Stats {
	s := Stats{
		EventsDispatched:   d.eventsDispatched.Load(),
		ListenersInvoked:   d.invoked.Load(),
		ListenerErrors:     d.errCount.Load(),
		ListenerPanics:     d.panicCount.Load(),
		InvocationsDropped: d.dropped.Load(),
		InvocationsSkipped: d.skipped.Load(),
	}
	if !d.syncMode {
		s.QueueDepth = d.pool.QueueDepth()
	}
	return s
}
