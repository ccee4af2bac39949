package disgear

import "github.com/disgear/disgear/config"

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithQueueSize sets the invocation queue capacity of the worker pool.
func WithQueueSize(size int) Option {
	return func(d *Dispatcher) {
		if size > 0 {
			d.queueSize = size
		}
	}
}

// WithWorkerCount sets the number of worker goroutines.
func WithWorkerCount(count int) Option {
	return func(d *Dispatcher) {
		if count > 0 {
			d.workerCount = count
		}
	}
}

// WithSyncDelivery executes listeners inline in the Dispatch call instead
// of scheduling them on the worker pool. Delivery order becomes fully
// deterministic; intended for tests and simple single-goroutine bots.
func WithSyncDelivery() Option {
	return func(d *Dispatcher) {
		d.syncMode = true
	}
}

// WithFailureHandler sets the collaborator that receives listener
// failures. The default logs with slog.
func WithFailureHandler(h FailureHandler) Option {
	return func(d *Dispatcher) {
		if h != nil {
			d.failureHandler = h
		}
	}
}

// WithConfig applies file-driven dispatcher tuning.
func WithConfig(cfg *config.Config) Option {
	return func(d *Dispatcher) {
		if cfg == nil {
			return
		}
		if cfg.Dispatch.QueueSize > 0 {
			d.queueSize = cfg.Dispatch.QueueSize
		}
		if cfg.Dispatch.Workers > 0 {
			d.workerCount = cfg.Dispatch.Workers
		}
		d.syncMode = cfg.Dispatch.SyncDelivery
	}
}
