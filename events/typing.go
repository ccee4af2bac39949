package events

import (
	"time"

	"github.com/disgear/disgear/event"
	"github.com/disgear/disgear/object"
)

// KindTypingStart fires when a user starts typing in a channel.
const KindTypingStart event.Kind = "TYPING_START"

// TypingStart fires when a user starts typing in a channel.
type TypingStart struct {
	event.Base

	// ChannelID is the channel being typed in.
	ChannelID object.ID

	// GuildID is the owning guild, zero for direct messages.
	GuildID object.ID

	// UserID is the typing user.
	UserID object.ID

	// StartedAt is when typing started.
	StartedAt time.Time

	// Member is the typing user's guild profile, when guild-bound.
	Member *object.Member
}

// Kind returns KindTypingStart.
func (TypingStart) Kind() event.Kind { return KindTypingStart }

type typingStartPayload struct {
	ChannelID object.ID      `json:"channel_id"`
	GuildID   object.ID      `json:"guild_id"`
	UserID    object.ID      `json:"user_id"`
	Timestamp int64          `json:"timestamp"`
	Member    *object.Member `json:"member"`
}

func init() {
	event.Register(KindTypingStart, decodeInto(func(p *typingStartPayload, raw event.Raw) event.Event {
		return TypingStart{
			Base:      event.NewBase(raw),
			ChannelID: p.ChannelID,
			GuildID:   p.GuildID,
			UserID:    p.UserID,
			StartedAt: time.Unix(p.Timestamp, 0).UTC(),
			Member:    p.Member,
		}
	}))
}
