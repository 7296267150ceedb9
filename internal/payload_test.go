package internal

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestNormalizePayload_MessageArray(t *testing.T) {
	payload := []any{
		map[string]any{"role": "user", "content": "Hello"},
		map[string]any{"role": "assistant", "content": "Hi"},
	}

	result := NormalizePayload(payload)

	if len(result.Warnings) != 0 {
		t.Errorf("Warnings = %v, want none", result.Warnings)
	}
	if len(result.Conversations) != 1 {
		t.Fatalf("got %d conversations, want 1", len(result.Conversations))
	}
	conv := result.Conversations[0]
	if conv.Title != "Imported Chat" {
		t.Errorf("Title = %q, want Imported Chat", conv.Title)
	}
	if len(conv.Messages) != 2 {
		t.Errorf("got %d messages, want 2", len(conv.Messages))
	}
}

func TestNormalizePayload_ConversationArray(t *testing.T) {
	payload := []any{
		map[string]any{
			"title":     "  Spaced Title  ",
			"createdAt": "2024-03-01T10:00:00Z",
			"messages":  []any{map[string]any{"role": "user", "content": "hi"}},
		},
		map[string]any{
			"messages": []any{map[string]any{"role": "assistant", "text": "yo"}},
		},
	}

	result := NormalizePayload(payload)

	if len(result.Conversations) != 2 {
		t.Fatalf("got %d conversations, want 2", len(result.Conversations))
	}
	if result.Conversations[0].Title != "Spaced Title" {
		t.Errorf("Title = %q, want trimmed Spaced Title", result.Conversations[0].Title)
	}
	want := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	if got := result.Conversations[0].CreatedAt; got == nil || !got.Equal(want) {
		t.Errorf("CreatedAt = %v, want %v", got, want)
	}
	if result.Conversations[1].Title != "Imported Chat 2" {
		t.Errorf("fallback Title = %q, want Imported Chat 2", result.Conversations[1].Title)
	}
}

func TestNormalizePayload_DropsEmptyConversations(t *testing.T) {
	payload := []any{
		map[string]any{"title": "Empty", "messages": []any{}},
		map[string]any{
			"title":    "Kept",
			"messages": []any{map[string]any{"role": "user", "content": "hi"}},
		},
	}

	result := NormalizePayload(payload)

	if len(result.Conversations) != 1 || result.Conversations[0].Title != "Kept" {
		t.Fatalf("Conversations = %v, want only Kept", result.Conversations)
	}
	if !reflect.DeepEqual(result.Warnings, []string{"conversation 1: no valid messages found"}) {
		t.Errorf("Warnings = %v", result.Warnings)
	}
}

func TestNormalizePayload_WarningPrefixes(t *testing.T) {
	payload := []any{
		map[string]any{
			"title": "Partial",
			"messages": []any{
				map[string]any{"role": "user", "content": "ok"},
				true,
			},
		},
	}

	result := NormalizePayload(payload)

	if len(result.Warnings) != 1 {
		t.Fatalf("Warnings = %v, want 1", result.Warnings)
	}
	if result.Warnings[0] != "conversation 1: message 2 is not recognized" {
		t.Errorf("warning = %q", result.Warnings[0])
	}
}

func TestNormalizePayload_WarningNumbersUseSourcePosition(t *testing.T) {
	// The second source conversation is empty; its warning must say
	// "conversation 2" even though the first conversation is also dropped.
	payload := []any{
		map[string]any{"messages": []any{}},
		map[string]any{"messages": []any{42.0}},
	}

	result := NormalizePayload(payload)

	if len(result.Conversations) != 0 {
		t.Fatalf("Conversations = %v, want none", result.Conversations)
	}
	joined := strings.Join(result.Warnings, "\n")
	for _, want := range []string{
		"conversation 1: no valid messages found",
		"conversation 2: message 1 is not recognized",
		"conversation 2: no valid messages found",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("Warnings missing %q in %v", want, result.Warnings)
		}
	}
}

func TestNormalizePayload_Unrecognized(t *testing.T) {
	result := NormalizePayload(map[string]any{"foo": "bar"})
	if len(result.Conversations) != 0 {
		t.Errorf("Conversations = %v, want none", result.Conversations)
	}
	if !reflect.DeepEqual(result.Warnings, []string{"no conversations found in payload"}) {
		t.Errorf("Warnings = %v", result.Warnings)
	}
}

func TestNormalizePayload_Idempotent(t *testing.T) {
	// Normalizing the output of a previous normalization yields the same
	// messages again; canonical messages already satisfy the parts path.
	payload := []any{
		map[string]any{"role": "assistant", "content": "first pass"},
		map[string]any{"role": "user", "parts": []any{map[string]any{"type": "text", "text": "typed"}}},
	}
	first := NormalizePayload(payload)
	if len(first.Conversations) != 1 {
		t.Fatalf("first pass: %v", first)
	}

	var raw []any
	for _, msg := range first.Conversations[0].Messages {
		var parts []any
		for _, part := range msg.Parts {
			parts = append(parts, map[string]any(part))
		}
		raw = append(raw, map[string]any{"id": msg.ID, "role": msg.Role, "parts": parts})
	}
	second := NormalizePayload(map[string]any{"messages": raw})

	if len(second.Warnings) != 0 {
		t.Errorf("second pass warnings = %v", second.Warnings)
	}
	if len(second.Conversations) != 1 {
		t.Fatalf("second pass: %v", second)
	}
	if !reflect.DeepEqual(second.Conversations[0].Messages, first.Conversations[0].Messages) {
		t.Errorf("second pass messages differ:\n%v\n%v",
			second.Conversations[0].Messages, first.Conversations[0].Messages)
	}
}

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		n    int
		want string
	}{
		{"plain title", "My Chat", 1, "My Chat"},
		{"trimmed", "  My Chat  ", 1, "My Chat"},
		{"blank", "   ", 3, "Imported Chat 3"},
		{"empty", "", 2, "Imported Chat 2"},
		{"absent", nil, 5, "Imported Chat 5"},
		{"non-string", 12.0, 1, "Imported Chat 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeTitle(tt.raw, tt.n); got != tt.want {
				t.Errorf("normalizeTitle(%v, %d) = %q, want %q", tt.raw, tt.n, got, tt.want)
			}
		})
	}
}
