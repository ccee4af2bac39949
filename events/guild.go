package events

import (
	"github.com/disgear/disgear/event"
	"github.com/disgear/disgear/object"
)

// Guild event kinds.
const (
	// KindGuildCreate fires when a guild becomes available to the session.
	KindGuildCreate event.Kind = "GUILD_CREATE"

	// KindGuildUpdate fires when guild settings change.
	KindGuildUpdate event.Kind = "GUILD_UPDATE"

	// KindGuildDelete fires when the client leaves a guild or the guild
	// becomes unavailable.
	KindGuildDelete event.Kind = "GUILD_DELETE"

	// KindGuildBanAdd fires when a user is banned.
	KindGuildBanAdd event.Kind = "GUILD_BAN_ADD"

	// KindGuildBanRemove fires when a ban is lifted.
	KindGuildBanRemove event.Kind = "GUILD_BAN_REMOVE"

	// KindGuildMemberJoin fires when a user joins a guild.
	KindGuildMemberJoin event.Kind = "GUILD_MEMBER_ADD"

	// KindGuildMemberRemove fires when a user leaves or is removed.
	KindGuildMemberRemove event.Kind = "GUILD_MEMBER_REMOVE"

	// KindGuildMemberUpdate fires when a member's profile changes.
	KindGuildMemberUpdate event.Kind = "GUILD_MEMBER_UPDATE"

	// KindGuildRoleCreate fires when a role is created.
	KindGuildRoleCreate event.Kind = "GUILD_ROLE_CREATE"

	// KindGuildRoleUpdate fires when a role is edited.
	KindGuildRoleUpdate event.Kind = "GUILD_ROLE_UPDATE"

	// KindGuildRoleDelete fires when a role is deleted.
	KindGuildRoleDelete event.Kind = "GUILD_ROLE_DELETE"
)

// GuildCreate fires when a guild becomes available: on session start for
// each guild, on outage recovery, and when the client joins a new guild.
type GuildCreate struct {
	event.Base
	*object.Guild
}

// Kind returns KindGuildCreate.
func (GuildCreate) Kind() event.Kind { return KindGuildCreate }

// GuildUpdate fires when guild settings change.
type GuildUpdate struct {
	event.Base
	*object.Guild
}

// Kind returns KindGuildUpdate.
func (GuildUpdate) Kind() event.Kind { return KindGuildUpdate }

// GuildDelete fires when a guild stops being available. Unavailable
// distinguishes an outage (true) from the client being removed (false).
type GuildDelete struct {
	event.Base

	// GuildID is the affected guild.
	GuildID object.ID

	// Unavailable is true when the guild went down with an outage rather
	// than the client leaving.
	Unavailable bool
}

// Kind returns KindGuildDelete.
func (GuildDelete) Kind() event.Kind { return KindGuildDelete }

// GuildBanAdd fires when a user is banned from a guild.
type GuildBanAdd struct {
	event.Base

	// GuildID is the banning guild.
	GuildID object.ID

	// User is the banned user.
	User *object.User
}

// Kind returns KindGuildBanAdd.
func (GuildBanAdd) Kind() event.Kind { return KindGuildBanAdd }

// GuildBanRemove fires when a ban is lifted.
type GuildBanRemove struct {
	event.Base

	// GuildID is the guild the ban was lifted in.
	GuildID object.ID

	// User is the unbanned user.
	User *object.User
}

// Kind returns KindGuildBanRemove.
func (GuildBanRemove) Kind() event.Kind { return KindGuildBanRemove }

// GuildMemberJoin fires when a user joins a guild. The event exposes the
// new member's profile through the embedded *object.Member.
type GuildMemberJoin struct {
	event.Base
	*object.Member
}

// Kind returns KindGuildMemberJoin.
func (GuildMemberJoin) Kind() event.Kind { return KindGuildMemberJoin }

// GuildMemberRemove fires when a user leaves a guild, is kicked, or is
// banned.
type GuildMemberRemove struct {
	event.Base

	// GuildID is the guild the user left.
	GuildID object.ID

	// User is the departed user.
	User *object.User
}

// Kind returns KindGuildMemberRemove.
func (GuildMemberRemove) Kind() event.Kind { return KindGuildMemberRemove }

// GuildMemberUpdate fires when a member's guild profile changes.
type GuildMemberUpdate struct {
	event.Base
	*object.Member
}

// Kind returns KindGuildMemberUpdate.
func (GuildMemberUpdate) Kind() event.Kind { return KindGuildMemberUpdate }

// GuildRoleCreate fires when a role is created.
type GuildRoleCreate struct {
	event.Base

	// GuildID is the owning guild.
	GuildID object.ID

	// Role is the new role.
	Role *object.Role
}

// Kind returns KindGuildRoleCreate.
func (GuildRoleCreate) Kind() event.Kind { return KindGuildRoleCreate }

// GuildRoleUpdate fires when a role is edited.
type GuildRoleUpdate struct {
	event.Base

	// GuildID is the owning guild.
	GuildID object.ID

	// Role is the updated role.
	Role *object.Role
}

// Kind returns KindGuildRoleUpdate.
func (GuildRoleUpdate) Kind() event.Kind { return KindGuildRoleUpdate }

// GuildRoleDelete fires when a role is deleted.
type GuildRoleDelete struct {
	event.Base

	// GuildID is the owning guild.
	GuildID object.ID

	// RoleID is the deleted role.
	RoleID object.ID
}

// Kind returns KindGuildRoleDelete.
func (GuildRoleDelete) Kind() event.Kind { return KindGuildRoleDelete }

type guildDeletePayload struct {
	ID          object.ID `json:"id"`
	Unavailable bool      `json:"unavailable"`
}

type guildUserPayload struct {
	GuildID object.ID    `json:"guild_id"`
	User    *object.User `json:"user"`
}

type guildRolePayload struct {
	GuildID object.ID    `json:"guild_id"`
	Role    *object.Role `json:"role"`
	RoleID  object.ID    `json:"role_id"`
}

func init() {
	event.Register(KindGuildCreate, decodeInto(func(g *object.Guild, raw event.Raw) event.Event {
		return GuildCreate{Base: event.NewBase(raw), Guild: g}
	}))
	event.Register(KindGuildUpdate, decodeInto(func(g *object.Guild, raw event.Raw) event.Event {
		return GuildUpdate{Base: event.NewBase(raw), Guild: g}
	}))
	event.Register(KindGuildDelete, decodeInto(func(p *guildDeletePayload, raw event.Raw) event.Event {
		return GuildDelete{Base: event.NewBase(raw), GuildID: p.ID, Unavailable: p.Unavailable}
	}))
	event.Register(KindGuildBanAdd, decodeInto(func(p *guildUserPayload, raw event.Raw) event.Event {
		return GuildBanAdd{Base: event.NewBase(raw), GuildID: p.GuildID, User: p.User}
	}))
	event.Register(KindGuildBanRemove, decodeInto(func(p *guildUserPayload, raw event.Raw) event.Event {
		return GuildBanRemove{Base: event.NewBase(raw), GuildID: p.GuildID, User: p.User}
	}))
	event.Register(KindGuildMemberJoin, decodeInto(func(m *object.Member, raw event.Raw) event.Event {
		return GuildMemberJoin{Base: event.NewBase(raw), Member: m}
	}))
	event.Register(KindGuildMemberRemove, decodeInto(func(p *guildUserPayload, raw event.Raw) event.Event {
		return GuildMemberRemove{Base: event.NewBase(raw), GuildID: p.GuildID, User: p.User}
	}))
	event.Register(KindGuildMemberUpdate, decodeInto(func(m *object.Member, raw event.Raw) event.Event {
		return GuildMemberUpdate{Base: event.NewBase(raw), Member: m}
	}))
	event.Register(KindGuildRoleCreate, decodeInto(func(p *guildRolePayload, raw event.Raw) event.Event {
		return GuildRoleCreate{Base: event.NewBase(raw), GuildID: p.GuildID, Role: p.Role}
	}))
	event.Register(KindGuildRoleUpdate, decodeInto(func(p *guildRolePayload, raw event.Raw) event.Event {
		return GuildRoleUpdate{Base: event.NewBase(raw), GuildID: p.GuildID, Role: p.Role}
	}))
	event.Register(KindGuildRoleDelete, decodeInto(func(p *guildRolePayload, raw event.Raw) event.Event {
		return GuildRoleDelete{Base: event.NewBase(raw), GuildID: p.GuildID, RoleID: p.RoleID}
	}))
}
