package events

import (
	"github.com/disgear/disgear/event"
	"github.com/disgear/disgear/object"
)

// Invite event kinds.
const (
	// KindInviteCreate fires when a channel invite is created.
	KindInviteCreate event.Kind = "INVITE_CREATE"

	// KindInviteDelete fires when a channel invite is revoked or expires.
	KindInviteDelete event.Kind = "INVITE_DELETE"
)

// InviteCreate fires when an invite to a channel is created.
type InviteCreate struct {
	event.Base

	// ChannelID is the channel the invite points to.
	ChannelID object.ID

	// GuildID is the owning guild.
	GuildID object.ID

	// Code is the unique invite code.
	Code string

	// Inviter is the creating user, if any.
	Inviter *object.User

	// MaxAge is the invite lifetime in seconds, 0 for unlimited.
	MaxAge int

	// MaxUses is the use limit, 0 for unlimited.
	MaxUses int

	// Temporary is true if the invite grants temporary membership.
	Temporary bool
}

// Kind returns KindInviteCreate.
func (InviteCreate) Kind() event.Kind { return KindInviteCreate }

// InviteDelete fires when an invite is revoked or expires.
type InviteDelete struct {
	event.Base

	// ChannelID is the channel the invite pointed to.
	ChannelID object.ID

	// GuildID is the owning guild.
	GuildID object.ID

	// Code is the deleted invite code.
	Code string
}

// Kind returns KindInviteDelete.
func (InviteDelete) Kind() event.Kind { return KindInviteDelete }

type invitePayload struct {
	ChannelID object.ID    `json:"channel_id"`
	GuildID   object.ID    `json:"guild_id"`
	Code      string       `json:"code"`
	Inviter   *object.User `json:"inviter"`
	MaxAge    int          `json:"max_age"`
	MaxUses   int          `json:"max_uses"`
	Temporary bool         `json:"temporary"`
}

func init() {
	event.Register(KindInviteCreate, decodeInto(func(p *invitePayload, raw event.Raw) event.Event {
		return InviteCreate{
			Base:      event.NewBase(raw),
			ChannelID: p.ChannelID,
			GuildID:   p.GuildID,
			Code:      p.Code,
			Inviter:   p.Inviter,
			MaxAge:    p.MaxAge,
			MaxUses:   p.MaxUses,
			Temporary: p.Temporary,
		}
	}))
	event.Register(KindInviteDelete, decodeInto(func(p *invitePayload, raw event.Raw) event.Event {
		return InviteDelete{
			Base:      event.NewBase(raw),
			ChannelID: p.ChannelID,
			GuildID:   p.GuildID,
			Code:      p.Code,
		}
	}))
}
