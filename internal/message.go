package internal

import (
	"github.com/google/uuid"
)

// Canonical message roles. Legacy role vocabularies are folded into these
// three by the normalizer.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Part is one atomic content unit within a message. Parts are tagged maps
// rather than structs so that part kinds this tool does not understand
// (tool calls, files already in canonical shape, future types) survive an
// import round trip byte-for-byte.
type Part map[string]any

// Type returns the part's type tag, or "" when the part is untagged.
func (p Part) Type() string {
	t, _ := p["type"].(string)
	return t
}

// Text returns the part's text field, or "" when absent or not a string.
func (p Part) Text() string {
	t, _ := p["text"].(string)
	return t
}

// TextPart builds a canonical text part.
func TextPart(text string) Part {
	return Part{"type": "text", "text": text}
}

// ReasoningPart builds a canonical reasoning part.
func ReasoningPart(text string) Part {
	return Part{"type": "reasoning", "text": text}
}

// FilePart builds a canonical file part for image references.
func FilePart(url, filename, mediaType string) Part {
	return Part{
		"type":      "file",
		"url":       url,
		"filename":  filename,
		"mediaType": mediaType,
	}
}

// Message is the canonical chat message representation: an id, a role and a
// list of typed parts. Metadata is carried through from the source only when
// it was a plain object.
type Message struct {
	ID       string         `json:"id" yaml:"id"`
	Role     string         `json:"role" yaml:"role"`
	Metadata map[string]any `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	Parts    []Part         `json:"parts" yaml:"parts"`
}

// NewMessageID returns a fresh collision-resistant message id. Used whenever
// a source message has no usable id of its own.
func NewMessageID() string {
	return uuid.NewString()
}
