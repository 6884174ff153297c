package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andy/toolrent/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Seed or export the tool catalog",
}

var catalogSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write the standard tool lineup into the catalog database",
	Long: `Insert the standard tools (LADW, CHNS, JAKD, JAKR) into the catalog
database, replacing any edited rows with the same codes. Other tools are kept.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		repo, err := appInstance.OpenDatabase(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, item := range catalog.ReferenceItems() {
			if err := repo.Upsert(ctx, item); err != nil {
				return fmt.Errorf("failed to seed %s: %w", item.Code, err)
			}
			fmt.Fprintf(out, "✓ %s %s %s\n", item.Code, item.Brand, item.Type)
		}
		databaseNote(out)
		return nil
	},
}

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the active catalog as YAML",
	Long: `Print the active catalog in the format read by catalog.source: file.

Example:
  toolrent catalog export > ~/.config/toolrent/items.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return appInstance.Catalog.WriteYAML(cmd.OutOrStdout())
	},
}

func init() {
	catalogCmd.AddCommand(catalogSeedCmd)
	catalogCmd.AddCommand(catalogExportCmd)
}
