package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mkrall/chat-import/internal"
	"github.com/mkrall/chat-import/internal/export"
	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOut    string
	exportChatID string
	exportBundle bool
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export archived chats to files",
	Long: `Export archived chats to files in various formats.

By default every chat in the archive is written as one file per chat.
Use --chat-id to export a single chat, or --bundle to write the whole
archive as one re-importable JSON bundle.

Supported formats: json, jsonl, yaml, markdown (md)

Examples:
  chat-import export --format md --out ./exported
  chat-import export --chat-id 3f2a --format yaml
  chat-import export --bundle --out ./backup`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		store, err := openStore()
		if err != nil {
			return fmt.Errorf("failed to open archive: %w", err)
		}
		defer func() { _ = store.Close() }()

		var chats []*internal.Chat
		if exportChatID != "" {
			chat, err := store.GetChat(ctx, exportChatID)
			if err != nil {
				return err
			}
			chats = []*internal.Chat{chat}
		} else {
			summaries, err := store.ListChats(ctx)
			if err != nil {
				return fmt.Errorf("failed to list chats: %w", err)
			}
			for _, sum := range summaries {
				chat, err := store.GetChat(ctx, sum.ID)
				if err != nil {
					return err
				}
				chats = append(chats, chat)
			}
		}

		if len(chats) == 0 {
			internal.PrintInfo("Nothing to export")
			return nil
		}

		if err := os.MkdirAll(exportOut, 0o755); err != nil {
			return &internal.ExportError{Format: exportFormat, Path: exportOut, Err: err}
		}

		if exportBundle {
			return writeBundle(chats)
		}
		return writeChatFiles(chats)
	},
}

// writeBundle writes every chat into a single versioned bundle file.
func writeBundle(chats []*internal.Chat) error {
	env := internal.NewEnvelope("chat-import", chats)
	path := filepath.Join(exportOut, "chat-archive.json")

	f, err := os.Create(path)
	if err != nil {
		return &internal.ExportError{Format: "bundle", Path: path, Err: err}
	}
	defer func() { _ = f.Close() }()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(env); err != nil {
		return &internal.ExportError{Format: "bundle", Path: path, Err: err}
	}

	internal.PrintSuccess(fmt.Sprintf("Exported %d chat(s) to %s", len(chats), path))
	return nil
}

// writeChatFiles writes one file per chat in the selected format.
func writeChatFiles(chats []*internal.Chat) error {
	exporter, err := export.NewExporter(exportFormat)
	if err != nil {
		return err
	}

	for _, chat := range chats {
		shortID := chat.ID
		if len(shortID) > 8 {
			shortID = shortID[:8]
		}
		path := filepath.Join(exportOut, fmt.Sprintf("chat_%s.%s", shortID, exporter.Extension()))

		f, err := os.Create(path)
		if err != nil {
			return &internal.ExportError{Format: exportFormat, Path: path, Err: err}
		}
		if err := exporter.Export(chat, f); err != nil {
			_ = f.Close()
			return &internal.ExportError{Format: exportFormat, Path: path, Err: err}
		}
		if err := f.Close(); err != nil {
			return &internal.ExportError{Format: exportFormat, Path: path, Err: err}
		}
		internal.LogDebug("Wrote %s", path)
	}

	internal.PrintSuccess(fmt.Sprintf("Exported %d chat(s) to %s/", len(chats), exportOut))
	return nil
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "Export format: json, jsonl, yaml, markdown")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "./exported", "Output directory")
	exportCmd.Flags().StringVar(&exportChatID, "chat-id", "", "Export a single chat by id or id prefix")
	exportCmd.Flags().BoolVar(&exportBundle, "bundle", false, "Write the archive as one re-importable JSON bundle")
}
