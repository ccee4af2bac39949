package object

// ChannelType is the wire channel type discriminator.
type ChannelType int

// Channel types the event layer distinguishes.
const (
	ChannelTypeGuildText     ChannelType = 0
	ChannelTypeDM            ChannelType = 1
	ChannelTypeGuildVoice    ChannelType = 2
	ChannelTypeGroupDM       ChannelType = 3
	ChannelTypeGuildCategory ChannelType = 4
	ChannelTypeGuildNews     ChannelType = 5
	ChannelTypeNewsThread    ChannelType = 10
	ChannelTypePublicThread  ChannelType = 11
	ChannelTypePrivateThread ChannelType = 12
	ChannelTypeGuildForum    ChannelType = 15
)

// IsThread returns true for thread channel types.
func (t ChannelType) IsThread() bool {
	switch t {
	case ChannelTypeNewsThread, ChannelTypePublicThread, ChannelTypePrivateThread:
		return true
	}
	return false
}

// Channel is a text, voice or category channel.
type Channel struct {
	// ID is the channel snowflake.
	ID ID `json:"id"`

	// Type is the channel type discriminator.
	Type ChannelType `json:"type"`

	// GuildID is the owning guild, zero for DM channels.
	GuildID ID `json:"guild_id"`

	// Name is the channel name, empty for DM channels.
	Name string `json:"name"`

	// Topic is the channel topic.
	Topic string `json:"topic"`

	// Position is the sorting position within the guild.
	Position int `json:"position"`

	// ParentID is the owning category, if any.
	ParentID ID `json:"parent_id"`

	// NSFW is true for age-restricted channels.
	NSFW bool `json:"nsfw"`

	// LastMessageID is the most recent message snowflake.
	LastMessageID ID `json:"last_message_id"`
}

// IsGuild returns true for guild-bound channels.
func (c *Channel) IsGuild() bool {
	return !c.GuildID.IsZero()
}
