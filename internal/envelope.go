package internal

import (
	"fmt"
	"time"
)

// EnvelopeFormat and EnvelopeVersion pin the bundle schema written by
// `export --bundle`. Readers treat a different version as a forward
// compatibility warning, not an error.
const (
	EnvelopeFormat  = "chat-archive"
	EnvelopeVersion = 1
)

// Envelope is the versioned bundle wrapping exported chats. Its chats carry
// an array-valued messages field, so a bundle re-imports through the regular
// payload path via the "chats" wrapper key.
type Envelope struct {
	Format     string         `json:"format"`
	Version    int            `json:"version"`
	ExportedAt time.Time      `json:"exportedAt"`
	Source     string         `json:"source"`
	Chats      []EnvelopeChat `json:"chats"`
}

// EnvelopeChat is one chat inside a bundle. Title and the date fields are
// nullable by contract.
type EnvelopeChat struct {
	ID        string    `json:"id"`
	Title     *string   `json:"title"`
	CreatedAt *string   `json:"createdAt"`
	UpdatedAt *string   `json:"updatedAt"`
	Messages  []Message `json:"messages"`
}

// NewEnvelope wraps stored chats in a fresh bundle.
func NewEnvelope(source string, chats []*Chat) Envelope {
	env := Envelope{
		Format:     EnvelopeFormat,
		Version:    EnvelopeVersion,
		ExportedAt: time.Now().UTC(),
		Source:     source,
		Chats:      make([]EnvelopeChat, 0, len(chats)),
	}
	for _, chat := range chats {
		ec := EnvelopeChat{ID: chat.ID, Messages: chat.Messages}
		if chat.Title != "" {
			title := chat.Title
			ec.Title = &title
		}
		ec.CreatedAt = isoDate(chat.CreatedAt)
		ec.UpdatedAt = isoDate(chat.UpdatedAt)
		env.Chats = append(env.Chats, ec)
	}
	return env
}

// CheckEnvelope inspects a decoded payload for a bundle header and returns a
// warning when the version does not match this build's pin. Payloads that
// are not bundles produce no warnings.
func CheckEnvelope(payload any) []string {
	obj, ok := payload.(map[string]any)
	if !ok {
		return nil
	}
	if format, _ := obj["format"].(string); format != EnvelopeFormat {
		return nil
	}
	if version, ok := obj["version"].(float64); ok && int(version) == EnvelopeVersion {
		return nil
	}
	return []string{fmt.Sprintf("bundle version %v does not match version %d, importing best-effort", obj["version"], EnvelopeVersion)}
}

func isoDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}
