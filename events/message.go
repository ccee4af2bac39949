package events

import (
	"github.com/disgear/disgear/event"
	"github.com/disgear/disgear/object"
)

// Message event kinds.
const (
	// KindMessageCreate fires when a message is posted.
	KindMessageCreate event.Kind = "MESSAGE_CREATE"

	// KindMessageUpdate fires when a message is edited.
	KindMessageUpdate event.Kind = "MESSAGE_UPDATE"

	// KindMessageDelete fires when a single message is deleted.
	KindMessageDelete event.Kind = "MESSAGE_DELETE"

	// KindMessageDeleteBulk fires when messages are deleted in bulk.
	KindMessageDeleteBulk event.Kind = "MESSAGE_DELETE_BULK"

	// KindReactionAdd fires when a reaction is added to a message.
	KindReactionAdd event.Kind = "MESSAGE_REACTION_ADD"

	// KindReactionRemove fires when a reaction is removed from a message.
	KindReactionRemove event.Kind = "MESSAGE_REACTION_REMOVE"
)

// MessageCreate fires when a message is posted. The client's own messages
// arrive through this event as well; handlers that reply should check the
// author to avoid loops.
type MessageCreate struct {
	event.Base
	*object.Message
}

// Kind returns KindMessageCreate.
func (MessageCreate) Kind() event.Kind { return KindMessageCreate }

// MessageUpdate fires when a message is edited. Payloads can be partial:
// only the message id and channel id are guaranteed present.
type MessageUpdate struct {
	event.Base
	*object.Message
}

// Kind returns KindMessageUpdate.
func (MessageUpdate) Kind() event.Kind { return KindMessageUpdate }

// MessageDelete fires when a single message is deleted. Only identifiers
// survive deletion; the content is gone unless the application cached it.
type MessageDelete struct {
	event.Base

	// MessageID is the deleted message.
	MessageID object.ID

	// ChannelID is the channel the message was in.
	ChannelID object.ID

	// GuildID is the owning guild, zero for direct messages.
	GuildID object.ID
}

// Kind returns KindMessageDelete.
func (MessageDelete) Kind() event.Kind { return KindMessageDelete }

// MessageDeleteBulk fires when messages are deleted in bulk.
type MessageDeleteBulk struct {
	event.Base

	// MessageIDs are the deleted messages.
	MessageIDs []object.ID

	// ChannelID is the channel the messages were in.
	ChannelID object.ID

	// GuildID is the owning guild.
	GuildID object.ID
}

// Kind returns KindMessageDeleteBulk.
func (MessageDeleteBulk) Kind() event.Kind { return KindMessageDeleteBulk }

// ReactionAdd fires when a reaction is added to a message.
type ReactionAdd struct {
	event.Base

	// UserID is the reacting user.
	UserID object.ID

	// ChannelID is the channel holding the message.
	ChannelID object.ID

	// MessageID is the message reacted to.
	MessageID object.ID

	// GuildID is the owning guild, zero for direct messages.
	GuildID object.ID

	// Member is the reacting user's guild profile, when guild-bound.
	Member *object.Member

	// Emoji is the reaction emoji.
	Emoji object.Emoji
}

// Kind returns KindReactionAdd.
func (ReactionAdd) Kind() event.Kind { return KindReactionAdd }

// ReactionRemove fires when a reaction is removed from a message.
type ReactionRemove struct {
	event.Base

	// UserID is the user whose reaction was removed.
	UserID object.ID

	// ChannelID is the channel holding the message.
	ChannelID object.ID

	// MessageID is the message the reaction was on.
	MessageID object.ID

	// GuildID is the owning guild, zero for direct messages.
	GuildID object.ID

	// Emoji is the removed emoji.
	Emoji object.Emoji
}

// Kind returns KindReactionRemove.
func (ReactionRemove) Kind() event.Kind { return KindReactionRemove }

type messageDeletePayload struct {
	ID        object.ID `json:"id"`
	ChannelID object.ID `json:"channel_id"`
	GuildID   object.ID `json:"guild_id"`
}

type messageDeleteBulkPayload struct {
	IDs       []object.ID `json:"ids"`
	ChannelID object.ID   `json:"channel_id"`
	GuildID   object.ID   `json:"guild_id"`
}

type reactionPayload struct {
	UserID    object.ID      `json:"user_id"`
	ChannelID object.ID      `json:"channel_id"`
	MessageID object.ID      `json:"message_id"`
	GuildID   object.ID      `json:"guild_id"`
	Member    *object.Member `json:"member"`
	Emoji     object.Emoji   `json:"emoji"`
}

func init() {
	event.Register(KindMessageCreate, decodeInto(func(m *object.Message, raw event.Raw) event.Event {
		return MessageCreate{Base: event.NewBase(raw), Message: m}
	}))
	event.Register(KindMessageUpdate, decodeInto(func(m *object.Message, raw event.Raw) event.Event {
		return MessageUpdate{Base: event.NewBase(raw), Message: m}
	}))
	event.Register(KindMessageDelete, decodeInto(func(p *messageDeletePayload, raw event.Raw) event.Event {
		return MessageDelete{
			Base:      event.NewBase(raw),
			MessageID: p.ID,
			ChannelID: p.ChannelID,
			GuildID:   p.GuildID,
		}
	}))
	event.Register(KindMessageDeleteBulk, decodeInto(func(p *messageDeleteBulkPayload, raw event.Raw) event.Event {
		return MessageDeleteBulk{
			Base:       event.NewBase(raw),
			MessageIDs: p.IDs,
			ChannelID:  p.ChannelID,
			GuildID:    p.GuildID,
		}
	}))
	event.Register(KindReactionAdd, decodeInto(func(p *reactionPayload, raw event.Raw) event.Event {
		return ReactionAdd{
			Base:      event.NewBase(raw),
			UserID:    p.UserID,
			ChannelID: p.ChannelID,
			MessageID: p.MessageID,
			GuildID:   p.GuildID,
			Member:    p.Member,
			Emoji:     p.Emoji,
		}
	}))
	event.Register(KindReactionRemove, decodeInto(func(p *reactionPayload, raw event.Raw) event.Event {
		return ReactionRemove{
			Base:      event.NewBase(raw),
			UserID:    p.UserID,
			ChannelID: p.ChannelID,
			MessageID: p.MessageID,
			GuildID:   p.GuildID,
			Emoji:     p.Emoji,
		}
	}))
}
