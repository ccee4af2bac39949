package events

import (
	"github.com/disgear/disgear/event"
	"github.com/disgear/disgear/object"
)

// Channel event kinds.
const (
	// KindChannelCreate fires when a channel is created.
	KindChannelCreate event.Kind = "CHANNEL_CREATE"

	// KindChannelUpdate fires when a channel is edited.
	KindChannelUpdate event.Kind = "CHANNEL_UPDATE"

	// KindChannelDelete fires when a channel is deleted.
	KindChannelDelete event.Kind = "CHANNEL_DELETE"

	// KindChannelPinsUpdate fires when a channel's pins change.
	KindChannelPinsUpdate event.Kind = "CHANNEL_PINS_UPDATE"
)

// ChannelCreate fires when a channel is created in a guild the client can
// see, or when a DM channel is opened.
type ChannelCreate struct {
	event.Base
	*object.Channel
}

// Kind returns KindChannelCreate.
func (ChannelCreate) Kind() event.Kind { return KindChannelCreate }

// ChannelUpdate fires when a channel is edited.
type ChannelUpdate struct {
	event.Base
	*object.Channel
}

// Kind returns KindChannelUpdate.
func (ChannelUpdate) Kind() event.Kind { return KindChannelUpdate }

// ChannelDelete fires when a channel is deleted.
type ChannelDelete struct {
	event.Base
	*object.Channel
}

// Kind returns KindChannelDelete.
func (ChannelDelete) Kind() event.Kind { return KindChannelDelete }

// ChannelPinsUpdate fires when a message is pinned or unpinned.
// It does not fire for deletion of a pinned message.
type ChannelPinsUpdate struct {
	event.Base

	// GuildID is the owning guild, zero for direct messages.
	GuildID object.ID

	// ChannelID is the channel whose pins changed.
	ChannelID object.ID

	// LastPinTimestamp is the RFC 3339 time of the most recent pin.
	LastPinTimestamp string
}

// Kind returns KindChannelPinsUpdate.
func (ChannelPinsUpdate) Kind() event.Kind { return KindChannelPinsUpdate }

type channelPinsPayload struct {
	GuildID          object.ID `json:"guild_id"`
	ChannelID        object.ID `json:"channel_id"`
	LastPinTimestamp string    `json:"last_pin_timestamp"`
}

func init() {
	event.Register(KindChannelCreate, decodeInto(func(c *object.Channel, raw event.Raw) event.Event {
		return ChannelCreate{Base: event.NewBase(raw), Channel: c}
	}))
	event.Register(KindChannelUpdate, decodeInto(func(c *object.Channel, raw event.Raw) event.Event {
		return ChannelUpdate{Base: event.NewBase(raw), Channel: c}
	}))
	event.Register(KindChannelDelete, decodeInto(func(c *object.Channel, raw event.Raw) event.Event {
		return ChannelDelete{Base: event.NewBase(raw), Channel: c}
	}))
	event.Register(KindChannelPinsUpdate, decodeInto(func(p *channelPinsPayload, raw event.Raw) event.Event {
		return ChannelPinsUpdate{
			Base:             event.NewBase(raw),
			GuildID:          p.GuildID,
			ChannelID:        p.ChannelID,
			LastPinTimestamp: p.LastPinTimestamp,
		}
	}))
}
