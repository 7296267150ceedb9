package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestJSONLExporter_Export(t *testing.T) {
	var buf bytes.Buffer
	if err := (&JSONLExporter{}).Export(testChat(), &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}

	var first map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("line 1 is not valid JSON: %v", err)
	}
	if first["id"] != "m1" || first["role"] != "user" {
		t.Errorf("line 1 = %v", first)
	}
	if _, ok := first["metadata"]; !ok {
		t.Error("line 1 is missing metadata")
	}

	var second map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &second); err != nil {
		t.Fatalf("line 2 is not valid JSON: %v", err)
	}
	if _, ok := second["metadata"]; ok {
		t.Error("line 2 has metadata, want omitted when nil")
	}
	parts, ok := second["parts"].([]any)
	if !ok || len(parts) != 3 {
		t.Errorf("line 2 parts = %v", second["parts"])
	}
}

func TestJSONLExporter_EmptyChat(t *testing.T) {
	chat := testChat()
	chat.Messages = nil

	var buf bytes.Buffer
	if err := (&JSONLExporter{}).Export(chat, &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("output = %q, want empty", buf.String())
	}
}

func TestJSONLExporter_Extension(t *testing.T) {
	if got := (&JSONLExporter{}).Extension(); got != "jsonl" {
		t.Errorf("Extension() = %q, want jsonl", got)
	}
}
