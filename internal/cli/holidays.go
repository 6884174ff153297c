package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/andy/toolrent/internal/domain"
)

var holidaysCmd = &cobra.Command{
	Use:   "holidays [year]",
	Short: "List the observed holidays of a year",
	Long: `List the days treated as holidays in a year (the current year by default).
Holidays that fall on a weekend are shown on the day they are observed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		year := time.Now().Year()
		if len(args) == 1 {
			y, err := strconv.Atoi(args[0])
			if err != nil || y < 1 || y > 9999 {
				return fmt.Errorf("invalid year: %s", args[0])
			}
			year = y
		}

		out := cmd.OutOrStdout()
		hs := appInstance.RentalService.Holidays(year)
		if len(hs) == 0 {
			fmt.Fprintf(out, "No holidays configured for %d\n", year)
			return nil
		}

		fmt.Fprintln(out, headingStyle.Render(fmt.Sprintf("Observed holidays %d", year)))
		for _, h := range hs {
			fmt.Fprintf(out, "  %s  %s  %s\n", shortWeekday(h.Date), domain.FormatDate(h.Date), h.Name)
		}
		return nil
	},
}
