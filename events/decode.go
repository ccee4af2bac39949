package events

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/disgear/disgear/event"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// unmarshal decodes a raw payload into v.
func unmarshal(raw event.Raw, v any) error {
	return json.Unmarshal(raw, v)
}

// decodeInto adapts a payload struct constructor into an event.Decoder.
// The constructor receives the decoded payload and the raw bytes and
// assembles the typed event.
func decodeInto[P any](build func(p *P, raw event.Raw) event.Event) event.Decoder {
	return func(raw event.Raw) (event.Event, error) {
		p := new(P)
		if err := unmarshal(raw, p); err != nil {
			return nil, err
		}
		return build(p, raw), nil
	}
}
