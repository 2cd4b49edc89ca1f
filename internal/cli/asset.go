package cli

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/creatorvault/internal/ports/primary"
	"github.com/example/creatorvault/internal/wire"
)

var assetCmd = &cobra.Command{
	Use:   "asset",
	Short: "Manage idea assets (files, images, links)",
}

var assetAddFileCmd = &cobra.Command{
	Use:   "add-file [idea-id]",
	Short: "Copy a file into the idea's asset directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ideaID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid idea id: %s", args[0])
		}

		svc := wire.AssetService()
		if cmd.Flags().Changed("path") {
			path, _ := cmd.Flags().GetString("path")
			svc = wire.AssetServiceWithDialogs(staticDialogs{pick: path})
		}

		res, err := svc.AddFileAsset(cmd.Context(), ideaID)
		if err != nil {
			return fmt.Errorf("failed to add asset: %w", err)
		}
		if res.Canceled {
			fmt.Println("Canceled")
			return nil
		}

		fmt.Printf("✓ Added %s asset %d: %s\n", res.Type, res.ID, res.Path)
		return nil
	},
}

var assetAddLinkCmd = &cobra.Command{
	Use:   "add-link [idea-id] [url]",
	Short: "Catalog a web link",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ideaID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid idea id: %s", args[0])
		}
		label, _ := cmd.Flags().GetString("label")

		id, err := wire.AssetService().AddLinkAsset(cmd.Context(), primary.AddLinkAssetRequest{
			IdeaID: ideaID,
			Label:  label,
			URL:    args[1],
		})
		if err != nil {
			return fmt.Errorf("failed to add link: %w", err)
		}

		fmt.Printf("✓ Added link asset %d: %s\n", id, args[1])
		return nil
	},
}

var assetListCmd = &cobra.Command{
	Use:   "list [idea-id]",
	Short: "List an idea's assets",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ideaID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid idea id: %s", args[0])
		}

		assets, err := wire.AssetService().ListAssets(cmd.Context(), ideaID)
		if err != nil {
			return fmt.Errorf("failed to list assets: %w", err)
		}

		if len(assets) == 0 {
			fmt.Println("No assets found")
			return nil
		}

		fmt.Printf("\n%-6s %-7s %-20s %s\n", "ID", "TYPE", "LABEL", "PATH / URL")
		fmt.Println("────────────────────────────────────────────────────────────────")
		for _, a := range assets {
			fmt.Printf("%-6d %-7s %-20s %s\n", a.ID, a.Type, a.Label, a.PathOrURL)
		}
		fmt.Println()
		return nil
	},
}

var assetDeleteCmd = &cobra.Command{
	Use:   "delete [asset-id]",
	Short: "Delete an asset and its backing file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid asset id: %s", args[0])
		}
		path, _ := cmd.Flags().GetString("path")
		assetType, _ := cmd.Flags().GetString("type")

		if assetType != "link" && path == "" {
			fmt.Println(color.New(color.FgYellow).Sprint("! no --path given; the backing file, if any, is left in place"))
		}

		if err := wire.AssetService().DeleteAsset(cmd.Context(), primary.DeleteAssetRequest{
			ID:   id,
			Path: path,
			Type: assetType,
		}); err != nil {
			return fmt.Errorf("failed to delete asset: %w", err)
		}

		fmt.Printf("✓ Deleted asset %d\n", id)
		return nil
	},
}

func init() {
	assetAddFileCmd.Flags().String("path", "", "Source file path (skips the prompt)")
	assetAddLinkCmd.Flags().String("label", "", "Display label for the link")
	assetDeleteCmd.Flags().String("path", "", "Backing file path to remove")
	assetDeleteCmd.Flags().String("type", "file", "Asset type: image, file, link")

	assetCmd.AddCommand(assetAddFileCmd)
	assetCmd.AddCommand(assetAddLinkCmd)
	assetCmd.AddCommand(assetListCmd)
	assetCmd.AddCommand(assetDeleteCmd)
}

// AssetCmd returns the asset command tree.
func AssetCmd() *cobra.Command {
	return assetCmd
}
