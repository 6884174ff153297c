package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/andy/toolrent/internal/config"
	"github.com/andy/toolrent/internal/domain"
)

var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "Show and maintain rentable tools",
	Long: `List and show the tools in the active catalog, or add and remove tools
in the encrypted catalog database.`,
}

var itemsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tools",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		items := appInstance.RentalService.Items()

		if len(items) == 0 {
			fmt.Fprintln(out, "No tools found")
			return nil
		}

		fmt.Fprintf(out, "%-6s %-12s %-10s %10s  %-7s %-7s %-7s\n",
			"Code", "Type", "Brand", "Daily", "Weekday", "Weekend", "Holiday")
		fmt.Fprintln(out, "----------------------------------------------------------------")

		for _, item := range items {
			fmt.Fprintf(out, "%-6s %-12s %-10s %10s  %-7s %-7s %-7s\n",
				item.Code,
				truncate(item.Type, 12),
				truncate(item.Brand, 10),
				domain.FormatMoney(item.DailyFee),
				yesNo(item.WeekdayCharge),
				yesNo(item.WeekendCharge),
				yesNo(item.HolidayCharge),
			)
		}

		fmt.Fprintf(out, "\nTotal: %d tool(s)\n", len(items))
		return nil
	},
}

var itemsShowCmd = &cobra.Command{
	Use:   "show <code>",
	Short: "Show a single tool",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		item, err := appInstance.RentalService.Item(args[0])
		if err != nil {
			return err
		}
		printItem(cmd.OutOrStdout(), item)
		return nil
	},
}

var itemsAddCmd = &cobra.Command{
	Use:   "add <code>",
	Short: "Add or replace a tool in the catalog database",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		itemType, _ := cmd.Flags().GetString("type")
		brand, _ := cmd.Flags().GetString("brand")
		fee, _ := cmd.Flags().GetFloat64("fee")
		weekday, _ := cmd.Flags().GetBool("weekday")
		weekend, _ := cmd.Flags().GetBool("weekend")
		holiday, _ := cmd.Flags().GetBool("holiday")

		item := domain.Item{
			Code:          args[0],
			Type:          itemType,
			Brand:         brand,
			DailyFee:      fee,
			WeekdayCharge: weekday,
			WeekendCharge: weekend,
			HolidayCharge: holiday,
		}
		if err := item.Validate(); err != nil {
			return fmt.Errorf("invalid tool: %w", err)
		}

		repo, err := appInstance.OpenDatabase(ctx)
		if err != nil {
			return err
		}
		existing, err := repo.GetByCode(ctx, item.Code)
		if err != nil {
			return fmt.Errorf("failed to look up tool: %w", err)
		}
		if err := repo.Upsert(ctx, item); err != nil {
			return fmt.Errorf("failed to save tool: %w", err)
		}

		action := "added"
		if existing != nil {
			action = "replaced"
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "✓ Tool %s: %s (%s %s, %s/day)\n",
			action, item.Code, item.Brand, item.Type, domain.FormatMoney(item.DailyFee))
		databaseNote(out)
		return nil
	},
}

var itemsRemoveCmd = &cobra.Command{
	Use:   "remove <code>",
	Short: "Remove a tool from the catalog database",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		repo, err := appInstance.OpenDatabase(ctx)
		if err != nil {
			return err
		}
		if err := repo.Delete(ctx, args[0]); err != nil {
			return fmt.Errorf("failed to remove tool: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "✓ Tool removed: %s\n", args[0])
		databaseNote(out)
		return nil
	},
}

func printItem(w io.Writer, item domain.Item) {
	fmt.Fprint(w, item.String())
	fmt.Fprintf(w, "Daily charge: %s\n", domain.FormatMoney(item.DailyFee))
	fmt.Fprintf(w, "Weekday charge: %s\n", yesNo(item.WeekdayCharge))
	fmt.Fprintf(w, "Weekend charge: %s\n", yesNo(item.WeekendCharge))
	fmt.Fprintf(w, "Holiday charge: %s\n", yesNo(item.HolidayCharge))
}

// databaseNote reminds the user when edits are not what rentals read
func databaseNote(w io.Writer) {
	switch {
	case appInstance.Config.Catalog.Source != config.SourceDatabase:
		fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf(
			"  Note: catalog.source is %q; set it to \"database\" to rent from the database.",
			appInstance.Config.Catalog.Source)))
	default:
		fmt.Fprintln(w, mutedStyle.Render("  Changes apply from the next run."))
	}
}

func init() {
	itemsCmd.AddCommand(itemsListCmd)
	itemsCmd.AddCommand(itemsShowCmd)
	itemsCmd.AddCommand(itemsAddCmd)
	itemsCmd.AddCommand(itemsRemoveCmd)

	// Add flags
	itemsAddCmd.Flags().String("type", "", "Tool type, e.g. Ladder")
	itemsAddCmd.Flags().String("brand", "", "Tool brand")
	itemsAddCmd.Flags().Float64("fee", 0, "Daily rental charge")
	itemsAddCmd.Flags().Bool("weekday", true, "Charge on weekdays")
	itemsAddCmd.Flags().Bool("weekend", false, "Charge on weekends")
	itemsAddCmd.Flags().Bool("holiday", false, "Charge on holidays")
	_ = itemsAddCmd.MarkFlagRequired("type")
	_ = itemsAddCmd.MarkFlagRequired("brand")
	_ = itemsAddCmd.MarkFlagRequired("fee")
}
