package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/mkrall/chat-import/internal"
	"github.com/spf13/cobra"
)

var (
	shapeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)

	convTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	convMetaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Classify an export file without importing it",
	Long: `Inspect a chat export file and report what an import would do.

This command shows:
  • Which known export shape the payload matched
  • How many conversations and messages would be imported
  • Every warning the import would produce

Nothing is written to the archive.

Examples:
  chat-import inspect export.json
  chat-import inspect --verbose old-backup.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
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

		legacy, _, shape := internal.ClassifyPayload(payload)
		result := internal.NormalizePayload(payload)
		envelopeWarnings := internal.CheckEnvelope(payload)

		fmt.Printf("File:  %s\n", filepath.Base(path))
		fmt.Printf("Shape: %s\n", shapeStyle.Render(shape))
		fmt.Printf("Found: %d conversation-like record(s), %d importable\n\n",
			len(legacy), len(result.Conversations))

		for i, conv := range result.Conversations {
			created := "—"
			if conv.CreatedAt != nil {
				created = conv.CreatedAt.Format("2006-01-02 15:04")
			}
			fmt.Printf("  [%d] %s\n", i+1, convTitleStyle.Render(conv.Title))
			fmt.Printf("      %s\n", convMetaStyle.Render(fmt.Sprintf("%d message(s), created %s", len(conv.Messages), created)))
		}
		if len(result.Conversations) > 0 {
			fmt.Println()
		}

		warnings := append(envelopeWarnings, result.Warnings...)
		if len(warnings) > 0 {
			fmt.Printf("Warnings (%d):\n", len(warnings))
			for _, w := range warnings {
				internal.PrintWarning(w)
			}
		} else {
			internal.PrintSuccess("No warnings")
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
