package internal

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Deduplicator removes conversations whose normalized content is identical.
type Deduplicator struct{}

// NewDeduplicator creates a new Deduplicator.
func NewDeduplicator() *Deduplicator {
	return &Deduplicator{}
}

// Deduplicate keeps the first of each content-identical conversation.
func (d *Deduplicator) Deduplicate(conversations []Conversation) []Conversation {
	seen := make(map[string]bool)
	var unique []Conversation
	for _, conv := range conversations {
		hash := HashConversation(conv)
		if seen[hash] {
			continue
		}
		seen[hash] = true
		unique = append(unique, conv)
	}
	return unique
}

// HashConversation hashes a conversation's normalized content. Titles,
// timestamps and regenerated message ids are excluded so re-exports of the
// same chat collapse to one hash. The same hash backs the store's duplicate
// skip across import runs.
func HashConversation(conv Conversation) string {
	h := sha256.New()
	for _, msg := range conv.Messages {
		h.Write([]byte(msg.Role))
		for _, part := range msg.Parts {
			// json.Marshal sorts map keys, so the encoding is stable.
			encoded, _ := json.Marshal(part)
			h.Write(encoded)
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}
