package internal

import (
	"fmt"
	"strings"
)

// roleAliases folds the role vocabularies seen across legacy exports into
// the canonical roles. Lookups are trimmed and lower-cased first; markers
// not in the table fall back to RoleUser. The mapping is deliberately lossy;
// legacy exports never agreed on a role vocabulary.
var roleAliases = map[string]string{
	"user":      RoleUser,
	"human":     RoleUser,
	"assistant": RoleAssistant,
	"ai":        RoleAssistant,
	"bot":       RoleAssistant,
	"system":    RoleSystem,
}

// roleFields are probed in priority order for a role marker. The first field
// holding a string value decides the role.
var roleFields = []string{"role", "sender", "from", "type"}

// NormalizeMessage converts one raw element of a legacy messages array into
// a canonical Message. It returns nil for values that cannot be interpreted
// as a message at all. A non-nil result may still carry zero parts; the
// batch wrapper rejects those.
func NormalizeMessage(raw any) *Message {
	if text, ok := raw.(string); ok {
		return &Message{
			ID:    NewMessageID(),
			Role:  RoleUser,
			Parts: []Part{TextPart(text)},
		}
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil
	}

	msg := &Message{
		ID:    messageID(obj),
		Role:  normalizeRole(obj),
		Parts: normalizeMessageParts(obj),
	}
	if meta, ok := obj["metadata"].(map[string]any); ok {
		msg.Metadata = meta
	}
	return msg
}

// NormalizeMessages normalizes a legacy message list, dropping entries that
// cannot be interpreted or that yield no parts. One warning is recorded per
// dropped entry, indexed 1-based for user display.
func NormalizeMessages(raw []any) ([]Message, []string) {
	var messages []Message
	var warnings []string
	for i, entry := range raw {
		msg := NormalizeMessage(entry)
		if msg == nil {
			warnings = append(warnings, fmt.Sprintf("message %d is not recognized", i+1))
			continue
		}
		if len(msg.Parts) == 0 {
			warnings = append(warnings, fmt.Sprintf("message %d has no recognizable content", i+1))
			continue
		}
		messages = append(messages, *msg)
	}
	return messages, warnings
}

// messageID keeps a non-blank source id and generates a fresh one otherwise.
// No uniqueness check against sibling messages is performed.
func messageID(obj map[string]any) string {
	if id, ok := obj["id"].(string); ok && strings.TrimSpace(id) != "" {
		return id
	}
	return NewMessageID()
}

func normalizeRole(obj map[string]any) string {
	for _, field := range roleFields {
		marker, ok := obj[field].(string)
		if !ok {
			continue
		}
		if role, ok := roleAliases[strings.ToLower(strings.TrimSpace(marker))]; ok {
			return role
		}
		return RoleUser
	}
	return RoleUser
}

// normalizeMessageParts derives parts from a legacy message object. The
// known carrier fields are tried in fixed order and the first present one
// wins; a message matching none of them yields no parts and is rejected by
// the caller.
func normalizeMessageParts(obj map[string]any) []Part {
	if parts, ok := obj["parts"].([]any); ok {
		return NormalizePartsArray(parts)
	}
	if content, ok := obj["content"].(string); ok {
		return []Part{TextPart(content)}
	}
	if content, ok := obj["content"].([]any); ok {
		return NormalizeContentArray(content)
	}
	if text, ok := obj["text"].(string); ok {
		return []Part{TextPart(text)}
	}
	if message, ok := obj["message"].(string); ok {
		return []Part{TextPart(message)}
	}
	return nil
}
