package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/example/creatorvault/internal/ports/primary"
	"github.com/example/creatorvault/internal/wire"
)

var ideaCmd = &cobra.Command{
	Use:   "idea",
	Short: "Manage ideas within a project",
	Long:  "Create, list, update, schedule, and delete ideas",
}

var ideaCreateCmd = &cobra.Command{
	Use:   "create [title]",
	Short: "Create a new idea",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		projectID, _ := cmd.Flags().GetInt64("project")
		if projectID == 0 {
			return fmt.Errorf("--project is required")
		}
		description, _ := cmd.Flags().GetString("description")
		priority, _ := cmd.Flags().GetString("priority")

		id, err := wire.IdeaService().CreateIdea(cmd.Context(), primary.CreateIdeaRequest{
			ProjectID:   projectID,
			Title:       args[0],
			Description: description,
			Priority:    priority,
		})
		if err != nil {
			return fmt.Errorf("failed to create idea: %w", err)
		}

		fmt.Printf("✓ Created idea %d: %s\n", id, args[0])
		return nil
	},
}

var ideaListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a project's ideas",
	RunE: func(cmd *cobra.Command, args []string) error {
		projectID, _ := cmd.Flags().GetInt64("project")
		if projectID == 0 {
			return fmt.Errorf("--project is required")
		}

		ideas, err := wire.IdeaService().ListIdeas(cmd.Context(), projectID)
		if err != nil {
			return fmt.Errorf("failed to list ideas: %w", err)
		}

		if len(ideas) == 0 {
			fmt.Println("No ideas found")
			return nil
		}

		fmt.Printf("\n%-6s %-30s %-10s %-10s %s\n", "ID", "TITLE", "PRIORITY", "STAGE", "SCHEDULED")
		fmt.Println("────────────────────────────────────────────────────────────────────")
		for _, i := range ideas {
			scheduled := i.ScheduledDate
			if scheduled != "" && i.ScheduledTime != "" {
				scheduled += " " + i.ScheduledTime
			}
			fmt.Printf("%-6d %-30s %-10s %-10s %s\n",
				i.ID, i.Title, i.Priority, i.WorkflowStage, scheduled)
		}
		fmt.Println()
		return nil
	},
}

var ideaShowCmd = &cobra.Command{
	Use:   "show [idea-id]",
	Short: "Show idea details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid idea id: %s", args[0])
		}

		idea, err := wire.IdeaService().GetIdea(cmd.Context(), id)
		if err != nil {
			return err
		}

		fmt.Printf("Idea %d: %s\n", idea.ID, idea.Title)
		fmt.Printf("  Project:  %d\n", idea.ProjectID)
		fmt.Printf("  Status:   %s\n", idea.Status)
		fmt.Printf("  Priority: %s\n", idea.Priority)
		fmt.Printf("  Stage:    %s\n", idea.WorkflowStage)
		if idea.Description != "" {
			fmt.Printf("  Description: %s\n", idea.Description)
		}
		if idea.ScheduledDate != "" {
			fmt.Printf("  Scheduled: %s %s\n", idea.ScheduledDate, idea.ScheduledTime)
		}
		if idea.OutputPath != "" {
			fmt.Printf("  Output:   %s\n", idea.OutputPath)
		}
		fmt.Printf("  Updated:  %s\n", idea.UpdatedAt)
		return nil
	},
}

var ideaUpdateCmd = &cobra.Command{
	Use:   "update [idea-id]",
	Short: "Update an idea",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid idea id: %s", args[0])
		}

		req := primary.UpdateIdeaRequest{ID: id}
		stringFlag := func(name string, target **string) {
			if cmd.Flags().Changed(name) {
				v, _ := cmd.Flags().GetString(name)
				*target = &v
			}
		}
		stringFlag("title", &req.Title)
		stringFlag("description", &req.Description)
		stringFlag("status", &req.Status)
		stringFlag("priority", &req.Priority)
		stringFlag("stage", &req.WorkflowStage)
		stringFlag("date", &req.ScheduledDate)
		stringFlag("time", &req.ScheduledTime)
		stringFlag("output", &req.OutputPath)

		if err := wire.IdeaService().UpdateIdea(cmd.Context(), req); err != nil {
			return fmt.Errorf("failed to update idea: %w", err)
		}

		fmt.Printf("✓ Updated idea %d\n", id)
		return nil
	},
}

var ideaDeleteCmd = &cobra.Command{
	Use:   "delete [idea-id]",
	Short: "Delete an idea and its script and assets",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid idea id: %s", args[0])
		}

		if err := wire.IdeaService().DeleteIdea(cmd.Context(), id); err != nil {
			return fmt.Errorf("failed to delete idea: %w", err)
		}

		fmt.Printf("✓ Deleted idea %d\n", id)
		return nil
	},
}

var ideaScheduledCmd = &cobra.Command{
	Use:   "scheduled",
	Short: "Show the combined schedule of ideas and projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := wire.IdeaService().ListScheduled(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list scheduled items: %w", err)
		}

		if len(items) == 0 {
			fmt.Println("Nothing scheduled")
			return nil
		}

		fmt.Printf("\n%-12s %-6s %-8s %-30s %-10s %s\n",
			"DATE", "TIME", "TYPE", "TITLE", "STAGE", "PROJECT")
		fmt.Println("──────────────────────────────────────────────────────────────────────────")
		for _, item := range items {
			fmt.Printf("%-12s %-6s %-8s %-30s %-10s %s (%s)\n",
				item.ScheduledDate, item.ScheduledTime, item.Type,
				item.Title, item.WorkflowStage, item.ProjectName, item.ProjectPlatform)
		}
		fmt.Println()
		return nil
	},
}

var ideaOutputCmd = &cobra.Command{
	Use:   "output [idea-id]",
	Short: "Record the produced file for an idea",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid idea id: %s", args[0])
		}

		svc := wire.IdeaService()
		if cmd.Flags().Changed("path") {
			path, _ := cmd.Flags().GetString("path")
			svc = wire.IdeaServiceWithDialogs(staticDialogs{pick: path})
		}

		res, err := svc.PickOutputPath(cmd.Context(), id)
		if err != nil {
			return err
		}
		if res.Canceled {
			fmt.Println("Canceled")
			return nil
		}

		fmt.Printf("✓ Recorded output for idea %d: %s\n", id, res.Path)
		return nil
	},
}

func init() {
	ideaCreateCmd.Flags().Int64("project", 0, "Parent project id (required)")
	ideaCreateCmd.Flags().String("description", "", "Idea description")
	ideaCreateCmd.Flags().String("priority", "", "Priority: low, medium, high (defaults to medium)")

	ideaListCmd.Flags().Int64("project", 0, "Project id (required)")

	ideaUpdateCmd.Flags().String("title", "", "New title")
	ideaUpdateCmd.Flags().String("description", "", "New description")
	ideaUpdateCmd.Flags().String("status", "", "New status")
	ideaUpdateCmd.Flags().String("priority", "", "New priority")
	ideaUpdateCmd.Flags().String("stage", "", "Workflow stage: idea, writing, recording, editing, ready, published")
	ideaUpdateCmd.Flags().String("date", "", "Scheduled date (YYYY-MM-DD, empty clears)")
	ideaUpdateCmd.Flags().String("time", "", "Scheduled time (HH:MM, empty clears)")
	ideaUpdateCmd.Flags().String("output", "", "Produced file path")

	ideaOutputCmd.Flags().String("path", "", "Produced file path (skips the prompt)")

	ideaCmd.AddCommand(ideaCreateCmd)
	ideaCmd.AddCommand(ideaListCmd)
	ideaCmd.AddCommand(ideaShowCmd)
	ideaCmd.AddCommand(ideaUpdateCmd)
	ideaCmd.AddCommand(ideaDeleteCmd)
	ideaCmd.AddCommand(ideaScheduledCmd)
	ideaCmd.AddCommand(ideaOutputCmd)
}

// IdeaCmd returns the idea command tree.
func IdeaCmd() *cobra.Command {
	return ideaCmd
}
