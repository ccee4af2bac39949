package events

import (
	"github.com/disgear/disgear/event"
	"github.com/disgear/disgear/object"
)

// Thread event kinds.
const (
	// KindThreadCreate fires when a thread is created or the client is
	// added to one.
	KindThreadCreate event.Kind = "THREAD_CREATE"

	// KindThreadUpdate fires when a thread is edited.
	KindThreadUpdate event.Kind = "THREAD_UPDATE"

	// KindThreadDelete fires when a thread is deleted.
	KindThreadDelete event.Kind = "THREAD_DELETE"
)

// ThreadCreate fires when a thread is created, or when the client gains
// access to an existing one. Threads are channels on the wire; the thread's
// fields read off the embedded *object.Channel.
type ThreadCreate struct {
	event.Base
	*object.Channel

	// NewlyCreated is true for a brand-new thread, false when the client
	// was added to an existing one.
	NewlyCreated bool
}

// Kind returns KindThreadCreate.
func (ThreadCreate) Kind() event.Kind { return KindThreadCreate }

// ThreadUpdate fires when a thread is edited (name, archive state, ...).
type ThreadUpdate struct {
	event.Base
	*object.Channel
}

// Kind returns KindThreadUpdate.
func (ThreadUpdate) Kind() event.Kind { return KindThreadUpdate }

// ThreadDelete fires when a thread is deleted. Only identifiers survive.
type ThreadDelete struct {
	event.Base

	// ThreadID is the deleted thread.
	ThreadID object.ID

	// GuildID is the owning guild.
	GuildID object.ID

	// ParentID is the channel the thread belonged to.
	ParentID object.ID

	// Type is the thread's channel type.
	Type object.ChannelType
}

// Kind returns KindThreadDelete.
func (ThreadDelete) Kind() event.Kind { return KindThreadDelete }

type threadCreatePayload struct {
	object.Channel
	NewlyCreated bool `json:"newly_created"`
}

type threadDeletePayload struct {
	ID       object.ID          `json:"id"`
	GuildID  object.ID          `json:"guild_id"`
	ParentID object.ID          `json:"parent_id"`
	Type     object.ChannelType `json:"type"`
}

func init() {
	event.Register(KindThreadCreate, decodeInto(func(p *threadCreatePayload, raw event.Raw) event.Event {
		return ThreadCreate{
			Base:         event.NewBase(raw),
			Channel:      &p.Channel,
			NewlyCreated: p.NewlyCreated,
		}
	}))
	event.Register(KindThreadUpdate, decodeInto(func(c *object.Channel, raw event.Raw) event.Event {
		return ThreadUpdate{Base: event.NewBase(raw), Channel: c}
	}))
	event.Register(KindThreadDelete, decodeInto(func(p *threadDeletePayload, raw event.Raw) event.Event {
		return ThreadDelete{
			Base:     event.NewBase(raw),
			ThreadID: p.ID,
			GuildID:  p.GuildID,
			ParentID: p.ParentID,
			Type:     p.Type,
		}
	}))
}
