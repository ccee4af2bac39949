package event

import (
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Raw is the unprocessed JSON payload an event was built from.
// Raw values are immutable: accessors never modify the underlying bytes and
// Set returns a new Raw, leaving the original untouched.
type Raw []byte

// RawOf copies data into a new Raw.
// The caller keeps ownership of data; later mutation does not affect the Raw.
func RawOf(data []byte) Raw {
	if len(data) == 0 {
		return nil
	}
	r := make(Raw, len(data))
	copy(r, data)
	return r
}

// RawString creates a Raw from a JSON string literal.
func RawString(s string) Raw {
	return Raw(s)
}

// Get returns the value at a gjson path, e.g. "author.username" or
// "mentions.#.id". The result's Exists method reports presence.
func (r Raw) Get(path string) gjson.Result {
	return gjson.GetBytes(r, path)
}

// Exists returns true if a value is present at the given path.
func (r Raw) Exists(path string) bool {
	return r.Get(path).Exists()
}

// String returns the payload as a JSON string.
func (r Raw) String() string {
	return string(r)
}

// Bytes returns a copy of the payload bytes.
func (r Raw) Bytes() []byte {
	if r == nil {
		return nil
	}
	b := make([]byte, len(r))
	copy(b, r)
	return b
}

// IsValid returns true if the payload is well-formed JSON.
func (r Raw) IsValid() bool {
	return len(r) > 0 && gjson.ValidBytes(r)
}

// Set returns a new Raw with the value at path replaced.
// The receiver is never modified.
func (r Raw) Set(path string, value any) (Raw, error) {
	out, err := sjson.SetBytes(r.Bytes(), path, value)
	if err != nil {
		return nil, err
	}
	return Raw(out), nil
}

// Delete returns a new Raw with the value at path removed.
// The receiver is never modified.
func (r Raw) Delete(path string) (Raw, error) {
	out, err := sjson.DeleteBytes(r.Bytes(), path)
	if err != nil {
		return nil, err
	}
	return Raw(out), nil
}
