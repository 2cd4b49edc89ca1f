package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/creatorvault/internal/wire"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Create and restore backups",
}

var backupCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Write a backup folder (database, assets, metadata)",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := wire.BackupService()
		if cmd.Flags().Changed("dest") {
			dest, _ := cmd.Flags().GetString("dest")
			svc = wire.BackupServiceWithDialogs(staticDialogs{pick: dest})
		}

		res, err := svc.CreateBackup(cmd.Context())
		if err != nil {
			return fmt.Errorf("backup failed: %w", err)
		}
		if res.Canceled {
			fmt.Println("Canceled")
			return nil
		}

		fmt.Printf("✓ Backup written to %s\n", res.Path)
		return nil
	},
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Restore from a backup folder (overwrites current data)",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := wire.BackupService()
		if cmd.Flags().Changed("from") {
			from, _ := cmd.Flags().GetString("from")
			yes, _ := cmd.Flags().GetBool("yes")
			if !yes {
				fmt.Println(color.New(color.FgYellow).Sprint("! restore overwrites all current data; pass --yes to confirm"))
				return nil
			}
			svc = wire.BackupServiceWithDialogs(staticDialogs{pick: from, confirm: true})
		}

		res, err := svc.RestoreBackup(cmd.Context())
		if err != nil {
			return fmt.Errorf("restore failed: %w", err)
		}
		if res.Canceled {
			fmt.Println("Canceled")
			return nil
		}

		// Normally unreachable: a successful restore restarts the process.
		fmt.Printf("✓ Restored from %s\n", res.Path)
		return nil
	},
}

func init() {
	backupCreateCmd.Flags().String("dest", "", "Destination directory (skips the prompt)")
	backupRestoreCmd.Flags().String("from", "", "Backup folder to restore from (skips the prompt)")
	backupRestoreCmd.Flags().Bool("yes", false, "Confirm the destructive overwrite")

	backupCmd.AddCommand(backupCreateCmd)
	backupCmd.AddCommand(backupRestoreCmd)
}

// BackupCmd returns the backup command tree.
func BackupCmd() *cobra.Command {
	return backupCmd
}
