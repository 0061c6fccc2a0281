package message

// Message is the platform's echo of a created message. The dispatch layer
// treats it as an opaque pass-through result; fields follow the open
// API's message schema.
type Message struct {
	ID               string        `json:"id"`
	ChannelID        string        `json:"channel_id,omitempty"`
	GuildID          string        `json:"guild_id,omitempty"`
	Content          string        `json:"content,omitempty"`
	Timestamp        string        `json:"timestamp,omitempty"`
	EditedTimestamp  string        `json:"edited_timestamp,omitempty"`
	MentionEveryone  bool          `json:"mention_everyone,omitempty"`
	Author           *User         `json:"author,omitempty"`
	Member           *Member       `json:"member,omitempty"`
	Mentions         []*User       `json:"mentions,omitempty"`
	Attachments      []*Attachment `json:"attachments,omitempty"`
	Embeds           []*Embed      `json:"embeds,omitempty"`
	Ark              *Ark          `json:"ark,omitempty"`
	Pinned           bool          `json:"pinned,omitempty"`
	TTS              bool          `json:"tts,omitempty"`
	MessageReference *Reference    `json:"message_reference,omitempty"`
	SeqInChannel     string        `json:"seq_in_channel,omitempty"`
}

// User identifies a platform account.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
	Bot      bool   `json:"bot,omitempty"`
}

// Member is guild-scoped user state.
type Member struct {
	Nick     string   `json:"nick,omitempty"`
	Roles    []string `json:"roles,omitempty"`
	JoinedAt string   `json:"joined_at,omitempty"`
}

// Attachment is a file attached to a message.
type Attachment struct {
	ID          string `json:"id,omitempty"`
	ContentType string `json:"content_type,omitempty"`
	FileName    string `json:"filename,omitempty"`
	Height      int    `json:"height,omitempty"`
	Width       int    `json:"width,omitempty"`
	Size        int    `json:"size,omitempty"`
	URL         string `json:"url,omitempty"`
}

// Embed is a rich-card payload.
type Embed struct {
	Title       string          `json:"title,omitempty"`
	Description string          `json:"description,omitempty"`
	Prompt      string          `json:"prompt,omitempty"`
	Thumbnail   *EmbedThumbnail `json:"thumbnail,omitempty"`
	Fields      []*EmbedField   `json:"fields,omitempty"`
}

type EmbedThumbnail struct {
	URL string `json:"url,omitempty"`
}

type EmbedField struct {
	Name string `json:"name,omitempty"`
}

// Ark is a server-side templated rich-content payload.
type Ark struct {
	TemplateID int      `json:"template_id,omitempty"`
	KV         []*ArkKV `json:"kv,omitempty"`
}

type ArkKV struct {
	Key   string    `json:"key,omitempty"`
	Value string    `json:"value,omitempty"`
	Obj   []*ArkObj `json:"obj,omitempty"`
}

type ArkObj struct {
	KV []*ArkObjKV `json:"obj_kv,omitempty"`
}

type ArkObjKV struct {
	Key   string `json:"key,omitempty"`
	Value string `json:"value,omitempty"`
}

// Markdown is the structured markdown payload: either a platform template
// (TemplateID or CustomTemplateID plus Params) or raw Content.
type Markdown struct {
	TemplateID       int               `json:"template_id,omitempty"`
	CustomTemplateID string            `json:"custom_template_id,omitempty"`
	Params           []*MarkdownParams `json:"params,omitempty"`
	Content          string            `json:"content,omitempty"`
}

type MarkdownParams struct {
	Key    string   `json:"key,omitempty"`
	Values []string `json:"values,omitempty"`
}

// Reference quotes another message.
type Reference struct {
	MessageID             string `json:"message_id"`
	IgnoreGetMessageError bool   `json:"ignore_get_message_error,omitempty"`
}
