package object

// Message is a message posted to a channel.
type Message struct {
	// ID is the message snowflake.
	ID ID `json:"id"`

	// ChannelID is the channel the message was posted to.
	ChannelID ID `json:"channel_id"`

	// GuildID is the owning guild, zero for direct messages.
	GuildID ID `json:"guild_id"`

	// Author is the posting user. Nil for some webhook payloads.
	Author *User `json:"author"`

	// Member is the author's guild profile, when the message is guild-bound.
	Member *Member `json:"member"`

	// Content is the message text.
	Content string `json:"content"`

	// Timestamp is the RFC 3339 creation timestamp.
	Timestamp string `json:"timestamp"`

	// EditedTimestamp is the RFC 3339 edit timestamp, empty if never edited.
	EditedTimestamp string `json:"edited_timestamp"`

	// TTS is true for text-to-speech messages.
	TTS bool `json:"tts"`

	// MentionEveryone is true if the message mentions @everyone.
	MentionEveryone bool `json:"mention_everyone"`

	// Mentions are the users mentioned in the message.
	Mentions []*User `json:"mentions"`

	// Pinned is true if the message is pinned in its channel.
	Pinned bool `json:"pinned"`

	// Type is the wire message type (0 = default).
	Type int `json:"type"`
}

// InGuild returns true if the message belongs to a guild channel.
func (m *Message) InGuild() bool {
	return !m.GuildID.IsZero()
}

// Emoji is a reaction emoji, either unicode or custom.
type Emoji struct {
	// ID is the custom emoji snowflake, zero for unicode emoji.
	ID ID `json:"id"`

	// Name is the emoji name, or the unicode literal.
	Name string `json:"name"`

	// Animated is true for animated custom emoji.
	Animated bool `json:"animated"`
}

// IsCustom returns true for guild-uploaded emoji.
func (e *Emoji) IsCustom() bool {
	return !e.ID.IsZero()
}
