package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/andy/toolrent/internal/service"
)

var rentCmd = &cobra.Command{
	Use:   "rent <item-code>",
	Short: "Compute a rental agreement",
	Long: `Compute the rental agreement for a tool.

Rental days start the day after the checkout date. Discount is a whole
percentage between 0 and 100.`,
	Example: `  toolrent rent LADW --days 3 --discount 10 --date 07/02/20
  toolrent rent JAKR --days 9 --date 07/02/15 --breakdown`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		days, _ := cmd.Flags().GetInt("days")
		discount, _ := cmd.Flags().GetInt("discount")
		date, _ := cmd.Flags().GetString("date")
		breakdown, _ := cmd.Flags().GetBool("breakdown")

		contract, err := appInstance.RentalService.Quote(service.RentalRequest{
			ItemCode:        args[0],
			RentalDays:      days,
			DiscountPercent: discount,
			StartDate:       strings.TrimSpace(date),
			Breakdown:       breakdown,
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		printContract(out, contract)
		if breakdown {
			printSchedule(out, contract)
		}
		return nil
	},
}

func init() {
	rentCmd.Flags().Int("days", 0, "Number of rental days (1 to 3650)")
	rentCmd.Flags().Int("discount", 0, "Discount percent (0-100)")
	rentCmd.Flags().String("date", "", "Checkout date (MM/dd/yy)")
	rentCmd.Flags().Bool("breakdown", false, "Also print how each rental day was charged")

	_ = rentCmd.MarkFlagRequired("days")
	_ = rentCmd.MarkFlagRequired("date")
}
