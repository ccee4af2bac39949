package event

import (
	"testing"
)

const sampleMessage = `{
	"id": "1234",
	"content": "hello",
	"author": {"id": "42", "username": "orbit"},
	"mentions": [{"id": "7"}, {"id": "8"}]
}`

func TestRaw_Get(t *testing.T) {
	raw := RawString(sampleMessage)

	tests := []struct {
		name string
		path string
		want string
	}{
		{"top-level", "content", "hello"},
		{"nested", "author.username", "orbit"},
		{"array element", "mentions.1.id", "8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := raw.Get(tt.path).String()
			if got != tt.want {
				t.Errorf("Get(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestRaw_Exists(t *testing.T) {
	raw := RawString(sampleMessage)

	if !raw.Exists("author.id") {
		t.Error("expected author.id to exist")
	}
	if raw.Exists("author.avatar") {
		t.Error("expected author.avatar to be absent")
	}
}

func TestRaw_Set_DoesNotMutateOriginal(t *testing.T) {
	raw := RawString(`{"content":"hello"}`)

	updated, err := raw.Set("content", "edited")
	if err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	if got := raw.Get("content").String(); got != "hello" {
		t.Errorf("original mutated: content = %q", got)
	}
	if got := updated.Get("content").String(); got != "edited" {
		t.Errorf("updated content = %q, want %q", got, "edited")
	}
}

func TestRaw_Delete(t *testing.T) {
	raw := RawString(`{"content":"hello","tts":true}`)

	updated, err := raw.Delete("tts")
	if err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}

	if !raw.Exists("tts") {
		t.Error("original mutated: tts removed")
	}
	if updated.Exists("tts") {
		t.Error("expected tts to be deleted from the copy")
	}
}

func TestRawOf_Copies(t *testing.T) {
	src := []byte(`{"n":1}`)
	raw := RawOf(src)

	src[5] = '2'

	if got := raw.Get("n").Int(); got != 1 {
		t.Errorf("Raw aliased caller's buffer: n = %d, want 1", got)
	}
}

func TestRaw_Bytes_Copies(t *testing.T) {
	raw := RawString(`{"n":1}`)

	b := raw.Bytes()
	b[5] = '2'

	if got := raw.Get("n").Int(); got != 1 {
		t.Errorf("Bytes() aliased the payload: n = %d, want 1", got)
	}
}

func TestRaw_IsValid(t *testing.T) {
	if !RawString(`{"ok":true}`).IsValid() {
		t.Error("expected valid JSON to be valid")
	}
	if RawString(`{"ok":`).IsValid() {
		t.Error("expected truncated JSON to be invalid")
	}
	if Raw(nil).IsValid() {
		t.Error("expected nil Raw to be invalid")
	}
}
