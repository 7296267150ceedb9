package internal

import "time"

// Conversation is one normalized import result. Title is never empty and
// Messages is never empty; conversations that normalize to zero usable
// messages are dropped before this type is constructed. CreatedAt and
// UpdatedAt are nil unless the source value parsed to a valid time.
type Conversation struct {
	Title     string     `json:"title" yaml:"title"`
	Messages  []Message  `json:"messages" yaml:"messages"`
	CreatedAt *time.Time `json:"createdAt,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty" yaml:"updated_at,omitempty"`
}

// Chat is a conversation persisted in the archive store, with the ids and
// provenance the store assigns at import time.
type Chat struct {
	ID         string     `json:"id" yaml:"id"`
	Title      string     `json:"title" yaml:"title"`
	Source     string     `json:"source,omitempty" yaml:"source,omitempty"`
	CreatedAt  *time.Time `json:"createdAt,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt  *time.Time `json:"updatedAt,omitempty" yaml:"updated_at,omitempty"`
	ImportedAt time.Time  `json:"importedAt" yaml:"imported_at"`
	Messages   []Message  `json:"messages" yaml:"messages"`
}
