package object

// Guild is a server the client is a member of.
type Guild struct {
	// ID is the guild snowflake.
	ID ID `json:"id"`

	// Name is the guild name.
	Name string `json:"name"`

	// Icon is the icon image hash.
	Icon string `json:"icon"`

	// OwnerID is the owning user's snowflake.
	OwnerID ID `json:"owner_id"`

	// MemberCount is the approximate member total, when the payload has it.
	MemberCount int `json:"member_count"`

	// Unavailable is true when the guild is offline due to an outage.
	Unavailable bool `json:"unavailable"`

	// Large is true when the guild exceeds the large-guild threshold.
	Large bool `json:"large"`
}

// Role is a guild permission role.
type Role struct {
	// ID is the role snowflake.
	ID ID `json:"id"`

	// Name is the role name.
	Name string `json:"name"`

	// Color is the RGB color integer.
	Color int `json:"color"`

	// Position is the role's place in the guild hierarchy.
	Position int `json:"position"`

	// Permissions is the permission bitset, string-encoded on the wire.
	Permissions string `json:"permissions"`

	// Managed is true for roles owned by an integration.
	Managed bool `json:"managed"`

	// Mentionable is true if members can mention the role.
	Mentionable bool `json:"mentionable"`
}
