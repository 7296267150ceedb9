package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mkrall/chat-import/internal"
)

// MarkdownExporter exports chats in Markdown format
type MarkdownExporter struct{}

// Export exports a chat to Markdown format
func (e *MarkdownExporter) Export(chat *internal.Chat, w io.Writer) error {
	_, _ = fmt.Fprintf(w, "# %s\n\n", chat.Title)

	if chat.Source != "" {
		_, _ = fmt.Fprintf(w, "**Source:** %s  \n", chat.Source)
	}
	if chat.CreatedAt != nil {
		_, _ = fmt.Fprintf(w, "**Created:** %s  \n", chat.CreatedAt.Format(time.RFC3339))
	}
	_, _ = fmt.Fprintf(w, "**Imported:** %s  \n", chat.ImportedAt.Format(time.RFC3339))
	_, _ = fmt.Fprintf(w, "**Messages:** %d\n\n", len(chat.Messages))

	_, _ = fmt.Fprintf(w, "---\n\n")

	for i, msg := range chat.Messages {
		_, _ = fmt.Fprintf(w, "**%s:**\n\n", msg.Role)

		for _, part := range msg.Parts {
			_, _ = fmt.Fprintf(w, "%s\n\n", renderPart(part))
		}

		if i < len(chat.Messages)-1 {
			_, _ = fmt.Fprintf(w, "---\n\n")
		}
	}

	return nil
}

// renderPart renders one message part as markdown.
func renderPart(part internal.Part) string {
	switch part.Type() {
	case "text":
		return escapeMarkdown(part.Text())
	case "reasoning":
		lines := strings.Split(part.Text(), "\n")
		return "> " + strings.Join(lines, "\n> ")
	case "file":
		url, _ := part["url"].(string)
		filename, _ := part["filename"].(string)
		if filename == "" {
			filename = "file"
		}
		return fmt.Sprintf("![%s](%s)", filename, url)
	default:
		// Unknown part kinds are shown raw rather than dropped.
		encoded, err := json.MarshalIndent(part, "", "  ")
		if err != nil {
			return fmt.Sprintf("[unrenderable %s part]", part.Type())
		}
		return fmt.Sprintf("```json\n%s\n```", encoded)
	}
}

// escapeMarkdown escapes emphasis markers outside code blocks so imported
// text cannot restyle the document.
func escapeMarkdown(text string) string {
	lines := strings.Split(text, "\n")
	var result []string
	inCodeBlock := false

	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "```"):
			inCodeBlock = !inCodeBlock
			result = append(result, line)
		case inCodeBlock:
			result = append(result, line)
		default:
			line = strings.ReplaceAll(line, "**", "\\*\\*")
			line = strings.ReplaceAll(line, "__", "\\_\\_")
			result = append(result, line)
		}
	}

	return strings.Join(result, "\n")
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}
