package cmd

import (
	"fmt"
	"os"

	"github.com/mkrall/chat-import/internal"
	"github.com/spf13/cobra"
)

var (
	verbose   bool
	storePath string
	version   string = "dev"
	commit    string = "unknown"
	date      string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "chat-import",
	Short: "Import and archive legacy chat exports",
	Long: `A CLI tool to import chat conversations from legacy export files.

chat-import accepts export files in every shape old chat apps produced
(bare message arrays, conversation arrays, wrapped collections, single
conversation objects), normalizes them into one canonical format, and
archives them in a local database.

Features:
  • Accepts unversioned JSON and YAML exports of unknown provenance
  • Normalizes inconsistent role and content vocabularies
  • Skips duplicates by content, across files and across runs
  • Exports archived chats as JSON, JSONL, YAML or Markdown
  • Surfaces everything it could not interpret as warnings, never errors

Quick Start:
  chat-import import export.json         # Import a legacy export file
  chat-import list                       # List archived chats
  chat-import export --format md         # Export archive as Markdown

For detailed usage, see: https://github.com/mkrall/chat-import`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openStore resolves the archive location (honoring --store) and opens it.
func openStore() (*internal.Store, error) {
	path, err := internal.ResolveStorePath(storePath)
	if err != nil {
		return nil, err
	}
	internal.LogDebug("Using archive at %s", path)
	return internal.OpenStore(path)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&storePath, "store", "", "Custom archive location (path to the chats database)")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}
