package disgear

import (
	"context"
	"testing"

	"github.com/disgear/disgear/event"
)

// pingEvent and pongEvent are minimal typed events for routing tests.
type pingEvent struct {
	event.Base
	Seq int
}

func (pingEvent) Kind() event.Kind { return "PING" }

type pongEvent struct {
	event.Base
}

func (pongEvent) Kind() event.Kind { return "PONG" }

// nopHandler ignores every event.
var nopHandler = HandlerFunc(func(ctx context.Context, ev event.Event) error {
	return nil
})

// newSyncDispatcher builds a started dispatcher that runs listeners inline,
// for deterministic assertions.
func newSyncDispatcher(t *testing.T, opts ...Option) *Dispatcher {
	t.Helper()

	d := New(append([]Option{WithSyncDelivery()}, opts...)...)
	if err := d.Start(); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	t.Cleanup(func() {
		if d.IsRunning() {
			if err := d.Stop(context.Background()); err != nil {
				t.Errorf("Stop() failed: %v", err)
			}
		}
	})
	return d
}
