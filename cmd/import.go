package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mkrall/chat-import/internal"
	"github.com/spf13/cobra"
)

var (
	importSource string
	importDryRun bool
)

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import <file>...",
	Short: "Import legacy chat export files into the archive",
	Long: `Import one or more chat export files into the local archive.

Each file is parsed (JSON or YAML), classified into one of the known
legacy export shapes, and normalized into canonical conversations.
Anything that cannot be interpreted is skipped with a warning; the rest
is imported. Conversations whose content is already archived are skipped.

A file with nothing importable is reported but is not an error.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var store *internal.Store
		if !importDryRun {
			var err error
			store, err = openStore()
			if err != nil {
				return fmt.Errorf("failed to open archive: %w", err)
			}
			defer func() { _ = store.Close() }()
		}

		dedup := internal.NewDeduplicator()
		totalImported := 0
		totalSkipped := 0

		for _, path := range args {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}

			payload, err := internal.DecodePayload(data)
			if err != nil {
				var decodeErr *internal.DecodeError
				if errors.As(err, &decodeErr) {
					decodeErr.Path = path
				}
				return err
			}

			warnings := internal.CheckEnvelope(payload)
			result := internal.NormalizePayload(payload)
			warnings = append(warnings, result.Warnings...)

			conversations := dedup.Deduplicate(result.Conversations)
			if dupes := len(result.Conversations) - len(conversations); dupes > 0 {
				internal.LogDebug("Dropped %d duplicate conversation(s) from %s", dupes, path)
			}

			name := filepath.Base(path)
			for _, w := range warnings {
				internal.PrintWarning(fmt.Sprintf("%s: %s", name, w))
			}

			if len(conversations) == 0 {
				internal.PrintInfo(fmt.Sprintf("%s: nothing importable", name))
				continue
			}

			if importDryRun {
				internal.PrintInfo(fmt.Sprintf("%s: would import %d conversation(s)", name, len(conversations)))
				totalImported += len(conversations)
				continue
			}

			source := importSource
			if source == "" {
				source = name
			}

			imported := 0
			skipped := 0
			err = internal.ShowProgress(ctx, fmt.Sprintf("Importing %d conversation(s) from %s", len(conversations), name), func() error {
				for _, conv := range conversations {
					_, saved, err := store.SaveChat(ctx, conv, source)
					if err != nil {
						return err
					}
					if saved {
						imported++
					} else {
						skipped++
					}
				}
				return nil
			})
			if err != nil {
				return fmt.Errorf("failed to import %s: %w", path, err)
			}

			if skipped > 0 {
				internal.PrintInfo(fmt.Sprintf("%s: %d conversation(s) already archived", name, skipped))
			}
			totalImported += imported
			totalSkipped += skipped
		}

		if importDryRun {
			internal.PrintSuccess(fmt.Sprintf("Dry run complete: %d conversation(s) would be imported", totalImported))
			return nil
		}
		internal.PrintSuccess(fmt.Sprintf("Import complete: %d conversation(s) imported, %d skipped", totalImported, totalSkipped))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().StringVar(&importSource, "source", "", "Source label recorded on imported chats (defaults to the file name)")
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "Normalize and report without writing to the archive")
}
