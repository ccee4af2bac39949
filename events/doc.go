// Package events defines the typed gateway events and registers their
// decoders with the event registry.
//
// Each event declares its wire-level kind as a constant next to the struct.
// Events whose payload is a full domain entity embed a pointer to it, so the
// entity's fields read directly off the event:
//
//	disgear.Listen(g, func(ctx context.Context, ev events.MessageCreate) error {
//	    fmt.Println(ev.Author.Username, ev.Content)
//	    return nil
//	})
//
// The embedded entity is shared with the application's cache layer, not
// owned by the event. Fields the typed structs do not surface remain
// reachable through ev.Raw().
//
// Importing this package (directly or blank) installs every decoder:
//
//	import _ "github.com/disgear/disgear/events"
package events
