// Package disgear routes gateway events to listeners organized in a tree of
// attachable components called gears.
//
// The transport layer hands the dispatcher already-decoded events; the
// dispatcher fans each event out across its own listeners and every attached
// gear, recursively. Listeners are keyed by event kind, invoked in
// registration order within a node, and isolated from one another: a failing
// or panicking listener never prevents the rest from running.
//
// # Listeners
//
// Register listeners on the dispatcher or on a gear, either type-erased by
// kind or statically typed through the generic helper:
//
//	d := disgear.New()
//	d.Start()
//	defer d.Stop(context.Background())
//
//	disgear.Listen(d, func(ctx context.Context, ev events.MessageCreate) error {
//	    fmt.Println(ev.Author.Username, ":", ev.Content)
//	    return nil
//	})
//
// Registration returns a *Listener handle; Remove unregisters it. A
// once-listener fires at most one time, even across concurrent dispatches of
// the same kind:
//
//	disgear.Listen(d, onFirstReady, disgear.WithOnce())
//
// # Gears
//
// A Gear is a detachable set of listeners plus its own attached child
// gears. Gears compose features that can be attached, detached, reattached
// elsewhere, and tested in isolation:
//
//	moderation := disgear.NewGear("moderation")
//	disgear.Listen(moderation, onMessageCreate)
//	disgear.Listen(moderation, onGuildBanAdd)
//
//	if err := d.AttachGear(moderation); err != nil { ... }
//
// The attachment relation is a tree: a gear has at most one parent, and
// attaching a gear to itself or one of its descendants fails. Attaching
// never replays past events; detaching removes the whole subtree from
// future dispatches while leaving it usable standalone.
//
// Declarative gears list their listeners as bindings instantiated once at
// construction:
//
//	type Greeter struct{ log *slog.Logger }
//
//	func (gr *Greeter) GearName() string { return "greeter" }
//	func (gr *Greeter) Bindings() []disgear.Binding {
//	    return []disgear.Binding{
//	        disgear.Bind(gr.onMemberJoin),
//	        disgear.BindOnce(gr.onReady),
//	    }
//	}
//
//	g, err := disgear.NewGearFrom(&Greeter{log: logger})
//
// # Dispatch
//
// Dispatch schedules every matching invocation on a worker pool and returns;
// it never blocks the transport on listener work. WithSyncDelivery switches
// to inline execution for deterministic tests and simple bots. Listener
// failures are reported to the configured FailureHandler with the
// originating gear and event kind.
//
// Registration, removal, attach and detach are safe to call from inside a
// running listener: an in-flight dispatch iterates snapshots and never
// observes partial mutation.
package disgear
