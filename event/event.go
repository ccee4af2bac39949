package event

// Event is an immutable description of one gateway occurrence.
// Implementations are value types: the dispatcher copies them freely and
// listeners must not retain references expecting later mutation.
type Event interface {
	// Kind returns the event's wire-level tag.
	Kind() Kind

	// Raw returns the unprocessed source payload.
	Raw() Raw
}

// Base carries the raw payload for typed events to embed.
// It provides the Raw half of the Event interface; the concrete type
// provides Kind.
type Base struct {
	raw Raw
}

// NewBase creates a Base wrapping the given payload.
func NewBase(raw Raw) Base {
	return Base{raw: raw}
}

// Raw returns the unprocessed source payload.
func (b Base) Raw() Raw {
	return b.raw
}

// Unknown is the fallback event for kinds with no registered decoder.
// It still exposes the full raw payload, so listeners subscribed to the
// kind can read fields by path.
type Unknown struct {
	Base
	kind Kind
}

// NewUnknown creates an Unknown event for the given kind and payload.
func NewUnknown(kind Kind, raw Raw) Unknown {
	return Unknown{Base: NewBase(raw), kind: kind}
}

// Kind returns the wire-level tag the payload arrived with.
func (u Unknown) Kind() Kind {
	return u.kind
}
