package cmd

import (
	"fmt"

	"github.com/mkrall/chat-import/internal"
	"github.com/spf13/cobra"
)

// healthcheckCmd represents the healthcheck command
var healthcheckCmd = &cobra.Command{
	Use:   "healthcheck",
	Short: "Verify the archive database",
	Long: `Verify that the archive database can be opened and is internally
consistent, and report what it contains.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		path, err := internal.ResolveStorePath(storePath)
		if err != nil {
			internal.PrintError(fmt.Sprintf("Cannot resolve archive location: %v", err))
			return err
		}
		internal.PrintInfo(fmt.Sprintf("Archive: %s", path))

		store, err := internal.OpenStore(path)
		if err != nil {
			internal.PrintError(fmt.Sprintf("Cannot open archive: %v", err))
			return err
		}
		defer func() { _ = store.Close() }()
		internal.PrintSuccess("Archive opened")

		stats, err := store.Stats(ctx)
		if err != nil {
			internal.PrintError(fmt.Sprintf("Cannot read archive stats: %v", err))
			return err
		}

		internal.PrintInfo(fmt.Sprintf("Chats:    %d", stats.Chats))
		internal.PrintInfo(fmt.Sprintf("Messages: %d", stats.Messages))

		if stats.OrphanedMessages > 0 {
			internal.PrintWarning(fmt.Sprintf("%d message(s) reference a missing chat", stats.OrphanedMessages))
			return fmt.Errorf("archive is inconsistent: %d orphaned message(s)", stats.OrphanedMessages)
		}

		internal.PrintSuccess("Archive is healthy")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(healthcheckCmd)
}
