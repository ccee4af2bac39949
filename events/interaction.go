package events

import (
	"github.com/disgear/disgear/event"
	"github.com/disgear/disgear/object"
)

// KindInteractionCreate fires when a user invokes an application command
// or component.
const KindInteractionCreate event.Kind = "INTERACTION_CREATE"

// InteractionType is the wire interaction type discriminator.
type InteractionType int

// Interaction types.
const (
	InteractionTypePing         InteractionType = 1
	InteractionTypeCommand      InteractionType = 2
	InteractionTypeComponent    InteractionType = 3
	InteractionTypeAutocomplete InteractionType = 4
	InteractionTypeModalSubmit  InteractionType = 5
)

// InteractionCreate fires when a user invokes an application command,
// presses a component, or submits a modal. The full command payload stays
// in Raw(); this event surfaces the routing fields.
type InteractionCreate struct {
	event.Base

	// InteractionID is the interaction snowflake.
	InteractionID object.ID

	// ApplicationID is the owning application.
	ApplicationID object.ID

	// Type is the interaction type discriminator.
	Type InteractionType

	// GuildID is the originating guild, zero for direct messages.
	GuildID object.ID

	// ChannelID is the originating channel.
	ChannelID object.ID

	// Member is the invoking member, when guild-bound.
	Member *object.Member

	// User is the invoking user, for direct-message invocations.
	User *object.User

	// Token is the continuation token for responding.
	Token string
}

// Kind returns KindInteractionCreate.
func (InteractionCreate) Kind() event.Kind { return KindInteractionCreate }

type interactionPayload struct {
	ID            object.ID       `json:"id"`
	ApplicationID object.ID       `json:"application_id"`
	Type          InteractionType `json:"type"`
	GuildID       object.ID       `json:"guild_id"`
	ChannelID     object.ID       `json:"channel_id"`
	Member        *object.Member  `json:"member"`
	User          *object.User    `json:"user"`
	Token         string          `json:"token"`
}

func init() {
	event.Register(KindInteractionCreate, decodeInto(func(p *interactionPayload, raw event.Raw) event.Event {
		return InteractionCreate{
			Base:          event.NewBase(raw),
			InteractionID: p.ID,
			ApplicationID: p.ApplicationID,
			Type:          p.Type,
			GuildID:       p.GuildID,
			ChannelID:     p.ChannelID,
			Member:        p.Member,
			User:          p.User,
			Token:         p.Token,
		}
	}))
}
