package disgear

import (
	"context"
	"fmt"

	"github.com/disgear/disgear/event"
)

// Binding is one declarative listener: a kind, a handler bound to the
// declaring instance, and the registration options.
type Binding struct {
	// Kind is the event kind to register for.
	Kind event.Kind

	// Handler is the bound handler.
	Handler Handler

	// Options configure the registration.
	Options []ListenOption
}

// Binder declares a gear's listeners at the type level. NewGearFrom
// instantiates the bindings into the gear's table exactly once, at
// construction.
type Binder interface {
	// GearName returns the gear's name.
	GearName() string

	// Bindings returns the listeners to instantiate. Methods used in
	// bindings are bound to the receiver, so each constructed gear
	// listens on its own instance.
	Bindings() []Binding
}

// Bind builds a Binding from a statically-typed method, resolving the kind
// from the parameter type.
func Bind[T event.Event](fn func(ctx context.Context, ev T) error, opts ...ListenOption) Binding {
	return Binding{
		Kind:    event.KindOf[T](),
		Handler: As(fn),
		Options: opts,
	}
}

// BindOnce is Bind with once semantics.
func BindOnce[T event.Event](fn func(ctx context.Context, ev T) error, opts ...ListenOption) Binding {
	return Bind(fn, append(opts, WithOnce())...)
}

// NewGearFrom constructs a gear from a Binder, registering every binding.
// A malformed binding (empty kind, nil handler) fails construction
// immediately; nothing is deferred to dispatch time.
func NewGearFrom(b Binder) (*Gear, error) {
	g := NewGear(b.GearName())
	for i, binding := range b.Bindings() {
		if _, err := g.AddListener(binding.Kind, binding.Handler, binding.Options...); err != nil {
			return nil, fmt.Errorf("binding %d on gear %q: %w", i, g.Name(), err)
		}
	}
	return g, nil
}
