package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mkrall/chat-import/internal"
)

// JSONLExporter exports chats in JSONL format (one message per line)
type JSONLExporter struct{}

// Export exports a chat to JSONL format
func (e *JSONLExporter) Export(chat *internal.Chat, w io.Writer) error {
	enc := json.NewEncoder(w)

	for _, msg := range chat.Messages {
		obj := map[string]interface{}{
			"id":    msg.ID,
			"role":  msg.Role,
			"parts": msg.Parts,
		}
		if msg.Metadata != nil {
			obj["metadata"] = msg.Metadata
		}

		if err := enc.Encode(obj); err != nil {
			return fmt.Errorf("failed to encode message: %w", err)
		}
	}

	return nil
}

// Extension returns the file extension for this format
func (e *JSONLExporter) Extension() string {
	return "jsonl"
}
