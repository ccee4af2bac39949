package disgear

import "github.com/disgear/disgear/event"

// Listener is the handle returned by a registration. It removes exactly
// the registration that produced it.
type Listener struct {
	id    string
	kind  event.Kind
	owner *table
}

// ID returns the unique registration id.
func (l *Listener) ID() string {
	return l.id
}

// Kind returns the event kind the listener is registered for.
func (l *Listener) Kind() event.Kind {
	return l.kind
}

// Remove unregisters the listener. Removing an already-removed listener is
// a no-op, so teardown paths can call it unconditionally.
func (l *Listener) Remove() {
	l.owner.remove(l.id)
}

// ListenOption configures a registration.
type ListenOption func(*listenConfig)

type listenConfig struct {
	once   bool
	filter FilterFunc
}

// WithOnce removes the registration after its first invocation. The
// listener fires for at most one event, even across concurrent dispatches
// of the same kind.
func WithOnce() ListenOption {
	return func(c *listenConfig) {
		c.once = true
	}
}

// WithFilter delivers only events the predicate accepts. A rejected event
// does not consume a once-listener.
func WithFilter(f FilterFunc) ListenOption {
	return func(c *listenConfig) {
		c.filter = f
	}
}
