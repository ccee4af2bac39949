package event

import (
	"errors"
	"strings"
	"testing"
)

// pingEvent is a minimal typed event for registry tests.
type pingEvent struct {
	Base
	Seq int64
}

func (pingEvent) Kind() Kind { return "TEST_PING" }

func TestKindOf(t *testing.T) {
	if got := KindOf[pingEvent](); got != "TEST_PING" {
		t.Errorf("KindOf[pingEvent]() = %q, want %q", got, "TEST_PING")
	}
	if got := KindOf[Unknown](); got != "" {
		t.Errorf("KindOf[Unknown]() = %q, want empty", got)
	}
}

func TestRegisterAndDecode(t *testing.T) {
	Register("TEST_PING", func(raw Raw) (Event, error) {
		return pingEvent{Base: NewBase(raw), Seq: raw.Get("seq").Int()}, nil
	})

	raw := RawString(`{"seq": 9}`)
	ev, err := Decode("TEST_PING", raw)
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}

	ping, ok := ev.(pingEvent)
	if !ok {
		t.Fatalf("Decode() returned %T, want pingEvent", ev)
	}
	if ping.Seq != 9 {
		t.Errorf("Seq = %d, want 9", ping.Seq)
	}
	if ping.Kind() != "TEST_PING" {
		t.Errorf("Kind() = %q, want %q", ping.Kind(), "TEST_PING")
	}
	if got := ping.Raw().Get("seq").Int(); got != 9 {
		t.Errorf("Raw().Get(seq) = %d, want 9", got)
	}
}

func TestDecode_UnregisteredKind(t *testing.T) {
	raw := RawString(`{"payload": true}`)

	ev, err := Decode("TEST_NEVER_REGISTERED", raw)
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}

	unk, ok := ev.(Unknown)
	if !ok {
		t.Fatalf("Decode() returned %T, want Unknown", ev)
	}
	if unk.Kind() != "TEST_NEVER_REGISTERED" {
		t.Errorf("Kind() = %q, want the wire tag", unk.Kind())
	}
	if !unk.Raw().Get("payload").Bool() {
		t.Error("expected raw payload to survive on Unknown")
	}
}

func TestDecode_DecoderError(t *testing.T) {
	wantErr := errors.New("bad payload")
	Register("TEST_FAILING", func(raw Raw) (Event, error) {
		return nil, wantErr
	})

	_, err := Decode("TEST_FAILING", RawString(`{}`))
	if !errors.Is(err, wantErr) {
		t.Errorf("Decode() error = %v, want wrapped %v", err, wantErr)
	}
	if err == nil || !strings.Contains(err.Error(), "TEST_FAILING") {
		t.Errorf("Decode() error %v does not name the kind", err)
	}
}

func TestRegister_Duplicate_Panics(t *testing.T) {
	dec := func(raw Raw) (Event, error) { return NewUnknown("TEST_DUP", raw), nil }

	Register("TEST_DUP", dec)

	defer func() {
		if recover() == nil {
			t.Error("expected duplicate Register to panic")
		}
	}()
	Register("TEST_DUP", dec)
}

func TestRegister_EmptyKind_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected Register with empty kind to panic")
		}
	}()
	Register("", func(raw Raw) (Event, error) { return nil, nil })
}

func TestRegister_NilDecoder_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected Register with nil decoder to panic")
		}
	}()
	Register("TEST_NIL_DECODER", nil)
}

func TestRegisteredAndKinds(t *testing.T) {
	Register("TEST_LISTED_B", func(raw Raw) (Event, error) { return NewUnknown("TEST_LISTED_B", raw), nil })
	Register("TEST_LISTED_A", func(raw Raw) (Event, error) { return NewUnknown("TEST_LISTED_A", raw), nil })

	if !Registered("TEST_LISTED_A") {
		t.Error("expected TEST_LISTED_A to be registered")
	}
	if Registered("TEST_LISTED_MISSING") {
		t.Error("expected TEST_LISTED_MISSING to be unregistered")
	}

	kinds := Kinds()
	posA, posB := -1, -1
	for i, k := range kinds {
		switch k {
		case "TEST_LISTED_A":
			posA = i
		case "TEST_LISTED_B":
			posB = i
		}
	}
	if posA < 0 || posB < 0 {
		t.Fatalf("Kinds() = %v, missing test kinds", kinds)
	}
	if posA > posB {
		t.Errorf("Kinds() not sorted: TEST_LISTED_A at %d after TEST_LISTED_B at %d", posA, posB)
	}
}
