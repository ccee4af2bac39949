package dispatch

import (
	"context"
	"sync"
	"sync/atomic"
)

// Pool executes handler invocations asynchronously on a fixed set of
// workers. The queue is bounded; a full queue rejects rather than blocking
// the producer.
type Pool struct {
	queueSize   int
	workerCount int

	mu      sync.Mutex // serializes queue creation, sends and teardown
	queue   chan task
	running atomic.Bool
	wg      sync.WaitGroup

	panicHandler PanicHandler

	// Stats
	enqueued  atomic.Uint64
	processed atomic.Uint64
	succeeded atomic.Uint64
	failed    atomic.Uint64
	panicked  atomic.Uint64
	dropped   atomic.Uint64
}

// task is one queued invocation.
type task struct {
	ctx     context.Context
	event   any
	handler Handler
	done    Callback
}

// NewPool creates a worker pool with the given options.
func NewPool(opts ...PoolOption) *Pool {
	p := &Pool{
		queueSize:    1024,
		workerCount:  8,
		panicHandler: defaultPanicHandler,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithQueueSize sets the invocation queue capacity.
func WithQueueSize(size int) PoolOption {
	return func(p *Pool) {
		if size > 0 {
			p.queueSize = size
		}
	}
}

// WithWorkers sets the number of worker goroutines.
func WithWorkers(count int) PoolOption {
	return func(p *Pool) {
		if count > 0 {
			p.workerCount = count
		}
	}
}

// WithPoolPanicHandler sets the panic handler for pooled execution.
func WithPoolPanicHandler(h PanicHandler) PoolOption {
	return func(p *Pool) {
		if h != nil {
			p.panicHandler = h
		}
	}
}

// Start launches the workers.
func (p *Pool) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running.Load() {
		return ErrAlreadyRunning
	}

	p.queue = make(chan task, p.queueSize)
	p.running.Store(true)

	for i := 0; i < p.workerCount; i++ {
		p.wg.Add(1)
		go p.worker()
	}

	return nil
}

// Stop drains queued invocations and stops the workers.
// It returns early with the context's error if the drain outlives ctx.
func (p *Pool) Stop(ctx context.Context) error {
	p.mu.Lock()
	if !p.running.Load() {
		p.mu.Unlock()
		return ErrNotRunning
	}

	p.running.Store(false)
	close(p.queue)
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// IsRunning returns true while the pool accepts invocations.
func (p *Pool) IsRunning() bool {
	return p.running.Load()
}

// Enqueue schedules one invocation. done, if non-nil, is called with the
// Result after execution. Returns ErrQueueFull when the queue is at
// capacity and ErrNotRunning after Stop.
func (p *Pool) Enqueue(ctx context.Context, event any, handler Handler, done Callback) error {
	t := task{
		ctx:     ctx,
		event:   event,
		handler: handler,
		done:    done,
	}

	// The send must not race Stop's close of the queue; the mutex keeps a
	// concurrent Stop from closing the channel between the running check
	// and the send.
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.running.Load() {
		return ErrNotRunning
	}

	select {
	case p.queue <- t:
		p.enqueued.Add(1)
		return nil
	default:
		p.dropped.Add(1)
		return ErrQueueFull
	}
}

// worker executes queued invocations until the queue is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	executor := NewExecutor(WithExecutorPanicHandler(p.panicHandler))

	for t := range p.queue {
		p.processed.Add(1)

		result := executor.Execute(t.ctx, t.event, t.handler)

		switch {
		case result.Panicked:
			p.panicked.Add(1)
		case result.Error != nil:
			p.failed.Add(1)
		case result.Success:
			p.succeeded.Add(1)
		}

		if t.done != nil {
			func() {
				defer func() { _ = recover() }()
				t.done(result)
			}()
		}
	}
}

// QueueDepth returns the number of invocations waiting in the queue.
func (p *Pool) QueueDepth() int {
	if !p.running.Load() {
		return 0
	}
	return len(p.queue)
}

// PoolStats is a snapshot of pool counters.
type PoolStats struct {
	// Enqueued is the total number of accepted invocations.
	Enqueued uint64

	// Processed is the total number of executed invocations.
	Processed uint64

	// Succeeded is the number of invocations that completed cleanly.
	Succeeded uint64

	// Failed is the number of invocations whose handler returned an error
	// or whose context was cancelled before execution.
	Failed uint64

	// Panicked is the number of invocations whose handler panicked.
	Panicked uint64

	// Dropped is the number of invocations rejected with a full queue.
	Dropped uint64

	// QueueDepth is the current queue backlog.
	QueueDepth int
}

// Stats returns a snapshot of the pool counters.
func (p *Pool) Stats() PoolStats {
	return PoolStats{
		Enqueued:   p.enqueued.Load(),
		Processed:  p.processed.Load(),
		Succeeded:  p.succeeded.Load(),
		Failed:     p.failed.Load(),
		Panicked:   p.panicked.Load(),
		Dropped:    p.dropped.Load(),
		QueueDepth: p.QueueDepth(),
	}
}
