package event

import (
	"fmt"
	"sort"
	"sync"
)

// Decoder builds a typed event from a raw payload.
// A decoder must not retain or mutate the payload beyond the call.
type Decoder func(raw Raw) (Event, error)

// registry maps kinds to their decoders. Kinds are registered once, at init
// time, by the packages that define the typed event structs.
type registry struct {
	mu       sync.RWMutex
	decoders map[Kind]Decoder
}

var defaultRegistry = &registry{
	decoders: make(map[Kind]Decoder),
}

// Register installs a decoder for a kind.
// Registering the same kind twice panics: two decoders for one kind is a
// configuration bug that must surface at startup, not at dispatch time.
func Register(kind Kind, dec Decoder) {
	if !kind.IsValid() {
		panic("event: Register with empty kind")
	}
	if dec == nil {
		panic(fmt.Sprintf("event: Register(%q) with nil decoder", kind))
	}

	defaultRegistry.mu.Lock()
	defer defaultRegistry.mu.Unlock()

	if _, dup := defaultRegistry.decoders[kind]; dup {
		panic(fmt.Sprintf("event: duplicate decoder for kind %q", kind))
	}
	defaultRegistry.decoders[kind] = dec
}

// Registered returns true if a decoder is installed for the kind.
func Registered(kind Kind) bool {
	defaultRegistry.mu.RLock()
	defer defaultRegistry.mu.RUnlock()

	_, ok := defaultRegistry.decoders[kind]
	return ok
}

// Kinds returns every registered kind, sorted.
func Kinds() []Kind {
	defaultRegistry.mu.RLock()
	defer defaultRegistry.mu.RUnlock()

	kinds := make([]Kind, 0, len(defaultRegistry.decoders))
	for k := range defaultRegistry.decoders {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Decode builds the typed event registered for kind from raw.
// Kinds with no registered decoder decode to Unknown; the payload is still
// routable and readable by path. A decoder error is returned to the caller
// (the transport layer), never delivered to listeners.
func Decode(kind Kind, raw Raw) (Event, error) {
	defaultRegistry.mu.RLock()
	dec, ok := defaultRegistry.decoders[kind]
	defaultRegistry.mu.RUnlock()

	if !ok {
		return NewUnknown(kind, raw), nil
	}

	ev, err := dec(raw)
	if err != nil {
		return nil, fmt.Errorf("decoding %s event: %w", kind, err)
	}
	return ev, nil
}
