package object

// User is a gateway user account.
type User struct {
	// ID is the user's snowflake.
	ID ID `json:"id"`

	// Username is the account name, unique per discriminator.
	Username string `json:"username"`

	// Discriminator is the legacy 4-digit tag ("0" for migrated accounts).
	Discriminator string `json:"discriminator"`

	// GlobalName is the display name, if set.
	GlobalName string `json:"global_name"`

	// Avatar is the avatar image hash.
	Avatar string `json:"avatar"`

	// Bot is true for OAuth2 application accounts.
	Bot bool `json:"bot"`

	// System is true for official system accounts.
	System bool `json:"system"`
}

// DisplayName returns the name to show for the user: the global display
// name when present, the username otherwise.
func (u *User) DisplayName() string {
	if u.GlobalName != "" {
		return u.GlobalName
	}
	return u.Username
}

// Member is a user's guild-scoped profile.
type Member struct {
	// User is the underlying account. May be nil in partial payloads.
	User *User `json:"user"`

	// Nick is the guild-specific nickname.
	Nick string `json:"nick"`

	// RoleIDs are the member's role snowflakes.
	RoleIDs []ID `json:"roles"`

	// JoinedAt is the RFC 3339 join timestamp.
	JoinedAt string `json:"joined_at"`

	// Pending is true while membership screening is incomplete.
	Pending bool `json:"pending"`

	// GuildID is the owning guild. Not always present on the wire; the
	// event decoders fill it in from the envelope when available.
	GuildID ID `json:"guild_id"`
}

// DisplayName returns the nickname when set, the user display name otherwise.
func (m *Member) DisplayName() string {
	if m.Nick != "" {
		return m.Nick
	}
	if m.User != nil {
		return m.User.DisplayName()
	}
	return ""
}
