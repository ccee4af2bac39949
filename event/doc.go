// Package event defines the event model shared by the dispatcher and the
// transport layer: the Kind tag, the Event interface, the immutable Raw
// payload, and the registry that maps kinds to typed decoders.
//
// # Kinds
//
// A Kind is the wire-level name of a gateway occurrence ("MESSAGE_CREATE",
// "GUILD_DELETE", ...). Listeners are keyed by Kind; typed event structs
// declare their Kind as a constant next to their definition.
//
// # Raw payloads
//
// Every event carries the unprocessed source payload as a Raw value. Raw is
// an immutable JSON document with gjson path access for fields the typed
// decoders do not surface:
//
//	ev.Raw().Get("author.username").String()
//
// # Registry
//
// The transport hands the registry a kind and a raw payload; the registry
// returns the typed event registered for that kind, or Unknown if no decoder
// is registered. Decoders are registered explicitly at init time:
//
//	event.Register(KindMessageCreate, decodeMessageCreate)
//
// Registration of a duplicate kind panics: it is a programming error and is
// surfaced immediately rather than at dispatch time.
package event
