package event

// Kind identifies what category of occurrence an Event represents.
// Values follow the gateway's wire names, e.g. "MESSAGE_CREATE".
type Kind string

// String returns the kind as a string.
func (k Kind) String() string {
	return string(k)
}

// IsValid returns true if the kind is non-empty.
func (k Kind) IsValid() bool {
	return k != ""
}

// KindOf resolves the Kind a typed event reports, without an instance.
// It relies on Kind() being a constant method on the event type's zero value.
func KindOf[T Event]() Kind {
	var zero T
	return zero.Kind()
}
