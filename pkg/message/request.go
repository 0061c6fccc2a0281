package message

import "io"

// MessageRequest is the canonical outbound payload for a message-create
// call. All fields are optional; the platform decides which combinations
// are meaningful (e.g. Image and FileImage are mutually exclusive on the
// remote side, not enforced here).
type MessageRequest struct {
	Content          string        `json:"content,omitempty"`
	Embed            *Embed        `json:"embed,omitempty"`
	Ark              *Ark          `json:"ark,omitempty"`
	MessageReference *Reference    `json:"message_reference,omitempty"`
	Image            string        `json:"image,omitempty"`
	MsgID            string        `json:"msg_id,omitempty"`
	EventID          string        `json:"event_id,omitempty"`
	Markdown         MarkdownInput `json:"markdown,omitempty"`

	// FileImage is a binary image stream. When set, the request is encoded
	// as a multipart form instead of JSON.
	FileImage io.Reader `json:"-"`
}

// MarkdownInput is a markdown payload in one of its accepted input
// shapes: the raw-string shorthand MarkdownText or a structured
// *Markdown. The transport only ever sees the structured form.
type MarkdownInput interface {
	structured() *Markdown
}

// MarkdownText is the raw markdown string shorthand. Normalization
// rewrites it to Markdown{Content: ...}.
type MarkdownText string

func (t MarkdownText) structured() *Markdown {
	return &Markdown{Content: string(t)}
}

func (m *Markdown) structured() *Markdown { return m }

// RequestInput is an outbound payload in one of its accepted input
// shapes: the plain-content shorthand Text or a full *MessageRequest.
type RequestInput interface {
	normalize() *MessageRequest
}

// Text is the plain-content request shorthand.
type Text string

func (t Text) normalize() *MessageRequest {
	return &MessageRequest{Content: string(t)}
}

func (r *MessageRequest) normalize() *MessageRequest {
	out := *r
	if r.Markdown != nil {
		out.Markdown = r.Markdown.structured()
	}
	return &out
}

// Normalize converts a request input into its canonical form: a plain
// string becomes a content-only request, a raw markdown string becomes
// the structured markdown shape, everything else passes through
// untouched. Normalization is pure and target-agnostic; the input is
// never mutated.
func Normalize(in RequestInput) *MessageRequest {
	return in.normalize()
}
