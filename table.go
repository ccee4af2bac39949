package disgear

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/disgear/disgear/event"
)

// registration binds one kind to one handler within a table.
type registration struct {
	id      string
	kind    event.Kind
	handler Handler
	filter  FilterFunc
	once    bool

	// claimed guards once-registrations: of any number of concurrent
	// dispatches, exactly one wins the claim and fires the listener.
	claimed atomic.Bool
}

// claim marks a once-registration as consumed. Returns true for the one
// caller that wins.
func (r *registration) claim() bool {
	return r.claimed.CompareAndSwap(false, true)
}

// table is a node's listener table: kind to ordered registrations.
// Insertion order is invocation order. The table is safe for concurrent
// use; reads iterate snapshots.
type table struct {
	mu   sync.RWMutex
	regs map[event.Kind][]*registration
}

func newTable() *table {
	return &table{
		regs: make(map[event.Kind][]*registration),
	}
}

// add appends a registration for kind and returns it.
func (t *table) add(kind event.Kind, h Handler, once bool, filter FilterFunc) *registration {
	r := &registration{
		id:      uuid.NewString(),
		kind:    kind,
		handler: h,
		filter:  filter,
		once:    once,
	}

	t.mu.Lock()
	t.regs[kind] = append(t.regs[kind], r)
	t.mu.Unlock()

	return r
}

// remove deletes a registration by id. Returns false if absent; removal is
// idempotent by design.
func (t *table) remove(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	for kind, regs := range t.regs {
		for i, r := range regs {
			if r.id != id {
				continue
			}
			t.regs[kind] = append(regs[:i:i], regs[i+1:]...)
			if len(t.regs[kind]) == 0 {
				delete(t.regs, kind)
			}
			return true
		}
	}
	return false
}

// removeKind deletes every registration for kind. Returns the number
// removed.
func (t *table) removeKind(kind event.Kind) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	n := len(t.regs[kind])
	delete(t.regs, kind)
	return n
}

// lookup returns a snapshot of the registrations for kind, in insertion
// order. Safe to iterate while the table mutates.
func (t *table) lookup(kind event.Kind) []*registration {
	t.mu.RLock()
	defer t.mu.RUnlock()

	regs := t.regs[kind]
	if len(regs) == 0 {
		return nil
	}
	snap := make([]*registration, len(regs))
	copy(snap, regs)
	return snap
}

// collect returns the registrations that should fire for ev, in insertion
// order, consuming once-registrations as it goes. A once-registration is
// removed from the table before the caller schedules it, so a concurrent
// dispatch of the same kind observes it gone (or loses the claim).
func (t *table) collect(kind event.Kind, ev event.Event) []*registration {
	snap := t.lookup(kind)
	if snap == nil {
		return nil
	}

	fire := make([]*registration, 0, len(snap))
	for _, r := range snap {
		if r.filter != nil && !r.filter(ev) {
			continue
		}
		if r.once {
			if !r.claim() {
				continue
			}
			t.remove(r.id)
		}
		fire = append(fire, r)
	}
	return fire
}

// count returns the number of registrations for kind.
func (t *table) count(kind event.Kind) int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.regs[kind])
}

// kinds returns every kind with at least one registration.
func (t *table) kinds() []event.Kind {
	t.mu.RLock()
	defer t.mu.RUnlock()

	kinds := make([]event.Kind, 0, len(t.regs))
	for k := range t.regs {
		kinds = append(kinds, k)
	}
	return kinds
}
