package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/example/creatorvault/internal/ports/primary"
	"github.com/example/creatorvault/internal/wire"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export scripts and metadata to files",
}

var exportScriptCmd = &cobra.Command{
	Use:   "script [idea-id]",
	Short: "Export an idea's script as txt or md",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ideaID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid idea id: %s", args[0])
		}
		format, _ := cmd.Flags().GetString("format")

		idea, err := wire.IdeaService().GetIdea(cmd.Context(), ideaID)
		if err != nil {
			return err
		}
		s, err := wire.ScriptService().GetScript(cmd.Context(), ideaID)
		if err != nil {
			return fmt.Errorf("failed to get script: %w", err)
		}
		if s == nil {
			return fmt.Errorf("idea %d has no script to export", ideaID)
		}

		svc := wire.ExportService()
		if cmd.Flags().Changed("out") {
			out, _ := cmd.Flags().GetString("out")
			svc = wire.ExportServiceWithDialogs(staticDialogs{save: out})
		}

		res, err := svc.ExportScript(cmd.Context(), primary.ExportScriptRequest{
			Title:   idea.Title,
			Content: s.Content,
			Format:  format,
		})
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
		if res.Canceled {
			fmt.Println("Canceled")
			return nil
		}

		fmt.Printf("✓ Exported script to %s\n", res.Path)
		return nil
	},
}

var exportProjectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Export the project list as csv or json",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")

		projects, err := wire.ProjectService().ListProjects(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list projects: %w", err)
		}

		columns := []string{"id", "name", "platform", "created_at"}
		rows := make([]map[string]any, 0, len(projects))
		for _, p := range projects {
			rows = append(rows, map[string]any{
				"id":         p.ID,
				"name":       p.Name,
				"platform":   p.Platform,
				"created_at": p.CreatedAt,
			})
		}

		svc := wire.ExportService()
		if cmd.Flags().Changed("out") {
			out, _ := cmd.Flags().GetString("out")
			svc = wire.ExportServiceWithDialogs(staticDialogs{save: out})
		}

		res, err := svc.ExportMetadata(cmd.Context(), primary.ExportMetadataRequest{
			Columns:  columns,
			Rows:     rows,
			Format:   format,
			Filename: "projects." + format,
		})
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
		if res.Canceled {
			fmt.Println("Canceled")
			return nil
		}

		fmt.Printf("✓ Exported %d projects to %s\n", len(rows), res.Path)
		return nil
	},
}

func init() {
	exportScriptCmd.Flags().String("format", "txt", "Export format: txt or md")
	exportScriptCmd.Flags().String("out", "", "Output file path (skips the prompt)")

	exportProjectsCmd.Flags().String("format", "csv", "Export format: csv or json")
	exportProjectsCmd.Flags().String("out", "", "Output file path (skips the prompt)")

	exportCmd.AddCommand(exportScriptCmd)
	exportCmd.AddCommand(exportProjectsCmd)
}

// ExportCmd returns the export command tree.
func ExportCmd() *cobra.Command {
	return exportCmd
}
