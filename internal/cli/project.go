// Package cli defines the cobra command tree over the services.
package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/example/creatorvault/internal/ports/primary"
	"github.com/example/creatorvault/internal/wire"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage projects (content containers)",
	Long:  "Create, list, update, and delete projects in the vault",
}

var projectCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		platform, _ := cmd.Flags().GetString("platform")

		id, err := wire.ProjectService().CreateProject(cmd.Context(), primary.CreateProjectRequest{
			Name:     args[0],
			Platform: platform,
		})
		if err != nil {
			return fmt.Errorf("failed to create project: %w", err)
		}

		fmt.Printf("✓ Created project %d: %s\n", id, args[0])
		return nil
	},
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		projects, err := wire.ProjectService().ListProjects(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list projects: %w", err)
		}

		if len(projects) == 0 {
			fmt.Println("No projects found")
			return nil
		}

		fmt.Printf("\n%-6s %-25s %-12s %-7s %s\n", "ID", "NAME", "PLATFORM", "IDEAS", "LAST ACTIVITY")
		fmt.Println("────────────────────────────────────────────────────────────────────")
		for _, p := range projects {
			fmt.Printf("%-6d %-25s %-12s %-7d %s\n",
				p.ID, p.Name, p.Platform, p.IdeaCount, p.LastActivity)
		}
		fmt.Println()
		return nil
	},
}

var projectUpdateCmd = &cobra.Command{
	Use:   "update [project-id]",
	Short: "Update a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid project id: %s", args[0])
		}

		req := primary.UpdateProjectRequest{ID: id}
		if cmd.Flags().Changed("name") {
			v, _ := cmd.Flags().GetString("name")
			req.Name = &v
		}
		if cmd.Flags().Changed("platform") {
			v, _ := cmd.Flags().GetString("platform")
			req.Platform = &v
		}
		if cmd.Flags().Changed("date") {
			v, _ := cmd.Flags().GetString("date")
			req.ScheduledDate = &v
		}
		if cmd.Flags().Changed("time") {
			v, _ := cmd.Flags().GetString("time")
			req.ScheduledTime = &v
		}

		if err := wire.ProjectService().UpdateProject(cmd.Context(), req); err != nil {
			return fmt.Errorf("failed to update project: %w", err)
		}

		fmt.Printf("✓ Updated project %d\n", id)
		return nil
	},
}

var projectDeleteCmd = &cobra.Command{
	Use:   "delete [project-id]",
	Short: "Delete a project and everything under it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid project id: %s", args[0])
		}

		if err := wire.ProjectService().DeleteProject(cmd.Context(), id); err != nil {
			return fmt.Errorf("failed to delete project: %w", err)
		}

		fmt.Printf("✓ Deleted project %d (ideas, scripts and assets included)\n", id)
		return nil
	},
}

func init() {
	projectCreateCmd.Flags().String("platform", "", "Target platform (defaults to Custom)")

	projectUpdateCmd.Flags().String("name", "", "New project name")
	projectUpdateCmd.Flags().String("platform", "", "New platform")
	projectUpdateCmd.Flags().String("date", "", "Scheduled date (YYYY-MM-DD, empty clears)")
	projectUpdateCmd.Flags().String("time", "", "Scheduled time (HH:MM, empty clears)")

	projectCmd.AddCommand(projectCreateCmd)
	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectUpdateCmd)
	projectCmd.AddCommand(projectDeleteCmd)
}

// ProjectCmd returns the project command tree.
func ProjectCmd() *cobra.Command {
	return projectCmd
}
