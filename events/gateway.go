package events

import (
	"github.com/disgear/disgear/event"
	"github.com/disgear/disgear/object"
)

// Connection lifecycle event kinds.
const (
	// KindReady fires once the gateway session is established.
	KindReady event.Kind = "READY"

	// KindResumed fires when a dropped session is resumed.
	KindResumed event.Kind = "RESUMED"

	// KindUserUpdate fires when the client user's account changes.
	KindUserUpdate event.Kind = "USER_UPDATE"

	// KindPresenceUpdate fires when a member's presence changes.
	KindPresenceUpdate event.Kind = "PRESENCE_UPDATE"
)

// Ready fires once the session is established and carries the initial
// state: the client user and the guilds the session will receive.
type Ready struct {
	event.Base

	// Version is the gateway protocol version.
	Version int

	// User is the connected client account.
	User *object.User

	// SessionID identifies the session for later resumes.
	SessionID string

	// Guilds are the (initially unavailable) guilds of the session.
	Guilds []*object.Guild
}

// Kind returns KindReady.
func (Ready) Kind() event.Kind { return KindReady }

// Resumed fires after a dropped connection is resumed. It has no payload
// beyond the raw envelope.
type Resumed struct {
	event.Base
}

// Kind returns KindResumed.
func (Resumed) Kind() event.Kind { return KindResumed }

// UserUpdate fires when the client user's account settings change.
// The event exposes the updated account through the embedded *object.User.
type UserUpdate struct {
	event.Base
	*object.User
}

// Kind returns KindUserUpdate.
func (UserUpdate) Kind() event.Kind { return KindUserUpdate }

// PresenceUpdate fires when a guild member's presence changes.
type PresenceUpdate struct {
	event.Base

	// User is the member whose presence changed. Usually partial: only the
	// id is guaranteed.
	User *object.User

	// GuildID is the guild the presence applies to.
	GuildID object.ID

	// Status is "online", "idle", "dnd" or "offline".
	Status string
}

// Kind returns KindPresenceUpdate.
func (PresenceUpdate) Kind() event.Kind { return KindPresenceUpdate }

type readyPayload struct {
	Version   int             `json:"v"`
	User      *object.User    `json:"user"`
	SessionID string          `json:"session_id"`
	Guilds    []*object.Guild `json:"guilds"`
}

type presencePayload struct {
	User    *object.User `json:"user"`
	GuildID object.ID    `json:"guild_id"`
	Status  string       `json:"status"`
}

func init() {
	event.Register(KindReady, decodeInto(func(p *readyPayload, raw event.Raw) event.Event {
		return Ready{
			Base:      event.NewBase(raw),
			Version:   p.Version,
			User:      p.User,
			SessionID: p.SessionID,
			Guilds:    p.Guilds,
		}
	}))
	event.Register(KindResumed, func(raw event.Raw) (event.Event, error) {
		return Resumed{Base: event.NewBase(raw)}, nil
	})
	event.Register(KindUserUpdate, decodeInto(func(u *object.User, raw event.Raw) event.Event {
		return UserUpdate{Base: event.NewBase(raw), User: u}
	}))
	event.Register(KindPresenceUpdate, decodeInto(func(p *presencePayload, raw event.Raw) event.Event {
		return PresenceUpdate{
			Base:    event.NewBase(raw),
			User:    p.User,
			GuildID: p.GuildID,
			Status:  p.Status,
		}
	}))
}
