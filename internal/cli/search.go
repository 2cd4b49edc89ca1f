package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/creatorvault/internal/wire"
)

var searchCmd = &cobra.Command{
	Use:   "search [text...]",
	Short: "Search projects, ideas and scripts",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")

		results, err := wire.SearchService().Search(cmd.Context(), query)
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}

		if len(results) == 0 {
			fmt.Println("No matches")
			return nil
		}

		fmt.Printf("\n%-8s %-6s %-30s %s\n", "TYPE", "ID", "TITLE", "CONTENT")
		fmt.Println("────────────────────────────────────────────────────────────────────")
		for _, r := range results {
			content := r.Content
			if len(content) > 60 {
				content = content[:57] + "..."
			}
			fmt.Printf("%-8s %-6d %-30s %s\n", r.ItemType, r.ItemID, r.Title, content)
		}
		fmt.Println()
		return nil
	},
}

var searchRebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Rebuild the search index from the source tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := wire.SearchService().RebuildIndex(cmd.Context()); err != nil {
			return fmt.Errorf("failed to rebuild search index: %w", err)
		}
		fmt.Println("✓ Search index rebuilt")
		return nil
	},
}

func init() {
	searchCmd.AddCommand(searchRebuildCmd)
}

// SearchCmd returns the search command tree.
func SearchCmd() *cobra.Command {
	return searchCmd
}
