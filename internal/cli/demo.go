package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/andy/toolrent/internal/catalog"
	"github.com/andy/toolrent/internal/holiday"
	"github.com/andy/toolrent/internal/service"
)

// demoScenarios are the acceptance rentals for the standard tool lineup
var demoScenarios = []service.RentalRequest{
	{ItemCode: "JAKR", RentalDays: 5, DiscountPercent: 101, StartDate: "09/03/15"},
	{ItemCode: "LADW", RentalDays: 3, DiscountPercent: 10, StartDate: "07/02/20"},
	{ItemCode: "CHNS", RentalDays: 5, DiscountPercent: 25, StartDate: "07/02/15"},
	{ItemCode: "JAKD", RentalDays: 6, DiscountPercent: 0, StartDate: "09/03/15"},
	{ItemCode: "JAKR", RentalDays: 9, DiscountPercent: 0, StartDate: "07/02/15"},
	{ItemCode: "JAKR", RentalDays: 4, DiscountPercent: 50, StartDate: "07/02/20"},
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the standard rental scenarios",
	Long: `Run the standard acceptance rentals against the built-in tool lineup and
US holidays, regardless of the configured catalog and holidays.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		breakdown, _ := cmd.Flags().GetBool("breakdown")

		log := zap.NewNop()
		if appInstance != nil && appInstance.Log != nil {
			log = appInstance.Log
		}
		svc := service.NewRentalService(catalog.Reference(), holiday.USCalendar(), log)

		out := cmd.OutOrStdout()
		for i, req := range demoScenarios {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintln(out, headingStyle.Render(fmt.Sprintf("Scenario %d: %s for %d day(s) at %d%% from %s",
				i+1, req.ItemCode, req.RentalDays, req.DiscountPercent, req.StartDate)))

			req.Breakdown = breakdown
			contract, err := svc.Quote(req)
			if err != nil {
				fmt.Fprintln(out, warningStyle.Render(fmt.Sprintf("✗ Rejected: %v", err)))
				continue
			}
			printContract(out, contract)
			if breakdown {
				printSchedule(out, contract)
			}
		}
		return nil
	},
}

func init() {
	demoCmd.Flags().Bool("breakdown", false, "Also print how each rental day was charged")
}
