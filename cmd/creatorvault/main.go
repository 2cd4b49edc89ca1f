package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/example/creatorvault/internal/cli"
	"github.com/example/creatorvault/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "creatorvault",
		Short:   "CreatorVault - local-first content production tracker",
		Version: version.String(),
		Long: `CreatorVault tracks content production from idea to published artifact:
projects hold ideas, ideas hold scripts and assets, and everything is
searchable. All data lives in a single local database file.`,
	}

	rootCmd.AddCommand(cli.ProjectCmd())
	rootCmd.AddCommand(cli.IdeaCmd())
	rootCmd.AddCommand(cli.ScriptCmd())
	rootCmd.AddCommand(cli.AssetCmd())
	rootCmd.AddCommand(cli.SearchCmd())
	rootCmd.AddCommand(cli.SettingsCmd())
	rootCmd.AddCommand(cli.BackupCmd())
	rootCmd.AddCommand(cli.ExportCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
