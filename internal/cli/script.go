package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/example/creatorvault/internal/ports/primary"
	"github.com/example/creatorvault/internal/wire"
)

var scriptCmd = &cobra.Command{
	Use:   "script",
	Short: "Manage idea scripts (one per idea)",
}

var scriptShowCmd = &cobra.Command{
	Use:   "show [idea-id]",
	Short: "Show an idea's script",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ideaID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid idea id: %s", args[0])
		}

		s, err := wire.ScriptService().GetScript(cmd.Context(), ideaID)
		if err != nil {
			return fmt.Errorf("failed to get script: %w", err)
		}
		if s == nil {
			fmt.Println("No script yet")
			return nil
		}

		fmt.Printf("Script for idea %d (%d words, updated %s)\n\n", s.IdeaID, s.WordCount, s.UpdatedAt)
		fmt.Println(s.Content)
		if s.Notes != "" {
			fmt.Printf("\nNotes:\n%s\n", s.Notes)
		}
		return nil
	},
}

var scriptSaveCmd = &cobra.Command{
	Use:   "save [idea-id]",
	Short: "Save an idea's script from a file or flag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ideaID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid idea id: %s", args[0])
		}

		content, _ := cmd.Flags().GetString("content")
		if file, _ := cmd.Flags().GetString("file"); file != "" {
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("failed to read script file: %w", err)
			}
			content = string(data)
		}
		notes, _ := cmd.Flags().GetString("notes")

		s, err := wire.ScriptService().SaveScript(cmd.Context(), primary.SaveScriptRequest{
			IdeaID:  ideaID,
			Content: content,
			Notes:   notes,
		})
		if err != nil {
			return fmt.Errorf("failed to save script: %w", err)
		}

		fmt.Printf("✓ Saved script for idea %d (%d words)\n", s.IdeaID, s.WordCount)
		return nil
	},
}

func init() {
	scriptSaveCmd.Flags().String("content", "", "Script content")
	scriptSaveCmd.Flags().String("file", "", "Read script content from a file")
	scriptSaveCmd.Flags().String("notes", "", "Script notes")

	scriptCmd.AddCommand(scriptShowCmd)
	scriptCmd.AddCommand(scriptSaveCmd)
}

// ScriptCmd returns the script command tree.
func ScriptCmd() *cobra.Command {
	return scriptCmd
}
