package internal

import (
	"fmt"
	"strings"
)

// ImportResult is the outcome of normalizing one uploaded payload: whatever
// could be salvaged, plus a human-readable warning for everything that
// could not.
type ImportResult struct {
	Conversations []Conversation
	Warnings      []string
}

// NormalizePayload converts an untyped, untrusted payload into normalized
// conversations. Malformed or partial input never fails; it degrades to
// fewer (possibly zero) conversations plus warnings. The call is pure and
// re-entrant; persistence belongs to the caller.
func NormalizePayload(payload any) ImportResult {
	legacy, warnings := ExtractLegacyConversations(payload)

	var conversations []Conversation
	for i, lc := range legacy {
		n := i + 1
		messages, msgWarnings := NormalizeMessages(lc.Messages)
		for _, w := range msgWarnings {
			warnings = append(warnings, fmt.Sprintf("conversation %d: %s", n, w))
		}
		if len(messages) == 0 {
			warnings = append(warnings, fmt.Sprintf("conversation %d: no valid messages found", n))
			continue
		}
		conversations = append(conversations, Conversation{
			Title:     normalizeTitle(lc.Title, n),
			Messages:  messages,
			CreatedAt: parseDate(lc.CreatedAt),
			UpdatedAt: parseDate(lc.UpdatedAt),
		})
	}

	return ImportResult{Conversations: conversations, Warnings: warnings}
}

// normalizeTitle keeps a trimmed non-blank source title, else numbers the
// fallback so multiple untitled imports stay distinguishable.
func normalizeTitle(raw any, n int) string {
	if title, ok := raw.(string); ok {
		if trimmed := strings.TrimSpace(title); trimmed != "" {
			return trimmed
		}
	}
	return fmt.Sprintf("Imported Chat %d", n)
}
