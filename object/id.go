package object

import (
	"bytes"
	"strconv"
	"time"
)

// Epoch is the millisecond timestamp the gateway's snowflake ids count from
// (2015-01-01T00:00:00Z).
const Epoch int64 = 1420070400000

// ID is a snowflake identifier. The gateway encodes snowflakes as JSON
// strings to avoid 53-bit precision loss; ID accepts both string and number
// forms on decode and always encodes as a string.
type ID uint64

// ParseID parses a decimal snowflake string.
func ParseID(s string) (ID, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return ID(n), nil
}

// String returns the decimal form of the id.
func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// IsZero returns true for the zero id.
func (id ID) IsZero() bool {
	return id == 0
}

// Time returns the creation time embedded in the snowflake.
func (id ID) Time() time.Time {
	ms := int64(id>>22) + Epoch
	return time.UnixMilli(ms).UTC()
}

// MarshalJSON encodes the id as a decimal string.
func (id ID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + id.String() + `"`), nil
}

// UnmarshalJSON decodes a snowflake from a string, a number, or null.
func (id *ID) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*id = 0
		return nil
	}
	s := string(bytes.Trim(data, `"`))
	if s == "" {
		*id = 0
		return nil
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return err
	}
	*id = ID(n)
	return nil
}
