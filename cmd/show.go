package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/mkrall/chat-import/internal"
	"github.com/spf13/cobra"
)

var (
	roleStyles = map[string]lipgloss.Style{
		internal.RoleUser:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		internal.RoleAssistant: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62")),
		internal.RoleSystem:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
	}

	reasoningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			Italic(true)

	partMetaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <chat-id>",
	Short: "Display one archived chat",
	Long: `Display an archived chat with all of its messages.

The chat id may be shortened to any unique prefix, as printed by
'chat-import list'.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return fmt.Errorf("failed to open archive: %w", err)
		}
		defer func() { _ = store.Close() }()

		chat, err := store.GetChat(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		displayChat(chat)
		return nil
	},
}

func displayChat(chat *internal.Chat) {
	fmt.Println(headerStyle.Render("💬 " + chat.Title))

	meta := fmt.Sprintf("id %s", chat.ID)
	if chat.Source != "" {
		meta += fmt.Sprintf(" · source %s", chat.Source)
	}
	if chat.CreatedAt != nil {
		meta += fmt.Sprintf(" · created %s", chat.CreatedAt.Format("2006-01-02 15:04"))
	}
	fmt.Println(convMetaStyle.Render(meta))
	fmt.Println()

	for _, msg := range chat.Messages {
		style, ok := roleStyles[msg.Role]
		if !ok {
			style = roleStyles[internal.RoleUser]
		}
		fmt.Println(style.Render(msg.Role + ":"))

		for _, part := range msg.Parts {
			switch part.Type() {
			case "text":
				fmt.Println(part.Text())
			case "reasoning":
				fmt.Println(reasoningStyle.Render(part.Text()))
			case "file":
				url, _ := part["url"].(string)
				fmt.Println(partMetaStyle.Render(fmt.Sprintf("[file: %s]", url)))
			default:
				fmt.Println(partMetaStyle.Render(fmt.Sprintf("[%s part]", part.Type())))
			}
		}
		fmt.Println()
	}

	fmt.Println(convMetaStyle.Render(fmt.Sprintf("%d message(s)", len(chat.Messages))))
}

func init() {
	rootCmd.AddCommand(showCmd)
}
