package disgear

import (
	"sync"

	"github.com/disgear/disgear/event"
)

// Gear is a composable unit of listeners: its own listener table plus the
// child gears attached beneath it. Gears form a tree under the dispatcher
// root; a gear has at most one parent at a time.
//
// A detached gear is fully functional on its own: listeners can be
// registered, children attached, and the subtree dispatched into directly
// in tests. Attaching it to a running tree routes only events that arrive
// after the attachment.
type Gear struct {
	name  string
	table *table

	mu       sync.Mutex // guards children and parent
	children []*Gear
	parent   *Gear
}

// NewGear creates an empty gear. The name attributes listener failures and
// need not be unique.
func NewGear(name string) *Gear {
	return &Gear{
		name:  name,
		table: newTable(),
	}
}

// Name returns the gear's name.
func (g *Gear) Name() string {
	return g.name
}

// AddListener registers a handler for a kind on this gear's own table.
// Configuration problems (empty kind, nil handler) surface here, never at
// dispatch time. Duplicate handlers for the same kind are permitted and
// each fires independently.
func (g *Gear) AddListener(kind event.Kind, h Handler, opts ...ListenOption) (*Listener, error) {
	if !kind.IsValid() {
		return nil, ErrInvalidKind
	}
	if h == nil {
		return nil, ErrNilHandler
	}

	var cfg listenConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	r := g.table.add(kind, h, cfg.once, cfg.filter)
	return &Listener{id: r.id, kind: kind, owner: g.table}, nil
}

// RemoveAll unregisters every listener for kind on this gear's own table
// and returns the number removed. Children are unaffected.
func (g *Gear) RemoveAll(kind event.Kind) int {
	return g.table.removeKind(kind)
}

// ListenerCount returns the number of listeners for kind on this gear's
// own table.
func (g *Gear) ListenerCount(kind event.Kind) int {
	return g.table.count(kind)
}

// Kinds returns every kind with at least one listener on this gear's own
// table.
func (g *Gear) Kinds() []event.Kind {
	return g.table.kinds()
}

// AttachGear attaches child beneath this gear. The child's listeners, and
// those of its whole subtree, receive events from the next dispatch on.
//
// Attaching fails with ErrAlreadyAttached if the child already has a
// parent, and with ErrCyclicAttach if child is the receiver or one of its
// ancestors. Attachment never replays events.
func (g *Gear) AttachGear(child *Gear) error {
	if child == nil {
		return ErrNilGear
	}
	if child == g {
		return ErrCyclicAttach
	}

	// Claim the child's parent slot first; this serializes competing
	// attachments of the same gear.
	child.mu.Lock()
	if child.parent != nil {
		child.mu.Unlock()
		return ErrAlreadyAttached
	}
	child.parent = g
	child.mu.Unlock()

	// The child must not be an ancestor of the receiver. Walk upward;
	// with the child's parent slot claimed, any cycle passes through it.
	for node := g.Parent(); node != nil; node = node.Parent() {
		if node == child {
			child.mu.Lock()
			child.parent = nil
			child.mu.Unlock()
			return ErrCyclicAttach
		}
	}

	g.mu.Lock()
	g.children = append(g.children, child)
	g.mu.Unlock()

	return nil
}

// DetachGear removes child from this gear. The detached subtree stops
// receiving events but remains valid: it can be reattached elsewhere or
// used standalone.
//
// Detaching a gear that is not a child of the receiver returns
// ErrNotAttached; that situation indicates a bookkeeping bug in the caller.
func (g *Gear) DetachGear(child *Gear) error {
	if child == nil {
		return ErrNilGear
	}

	g.mu.Lock()
	idx := -1
	for i, c := range g.children {
		if c == child {
			idx = i
			break
		}
	}
	if idx < 0 {
		g.mu.Unlock()
		return ErrNotAttached
	}
	g.children = append(g.children[:idx:idx], g.children[idx+1:]...)
	g.mu.Unlock()

	child.mu.Lock()
	child.parent = nil
	child.mu.Unlock()

	return nil
}

// Children returns a snapshot of the attached children, in attachment
// order.
func (g *Gear) Children() []*Gear {
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(g.children) == 0 {
		return nil
	}
	snap := make([]*Gear, len(g.children))
	copy(snap, g.children)
	return snap
}

// Parent returns the gear this gear is attached to, or nil.
func (g *Gear) Parent() *Gear {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.parent
}

// walk visits the gear and its subtree pre-order, in attachment order.
// Children are snapshotted per node, so structural mutation from inside fn
// (or from listeners) never corrupts the traversal.
func (g *Gear) walk(fn func(*Gear)) {
	fn(g)
	for _, c := range g.Children() {
		c.walk(fn)
	}
}

// invocation is one scheduled listener firing, attributed to its node.
type invocation struct {
	gear string
	reg  *registration
}

// collect gathers every invocation the subtree owes for ev, pre-order,
// consuming once-registrations. The returned slice is fixed before any
// handler runs; registrations or attachments made by handlers only affect
// later dispatches.
func (g *Gear) collect(ev event.Event) []invocation {
	kind := ev.Kind()

	var out []invocation
	g.walk(func(node *Gear) {
		for _, r := range node.table.collect(kind, ev) {
			out = append(out, invocation{gear: node.name, reg: r})
		}
	})
	return out
}
