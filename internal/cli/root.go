package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/andy/toolrent/internal/app"
)

var (
	appInstance *app.App
	configPath  string
)

var rootCmd = &cobra.Command{
	Use:   "toolrent",
	Short: "Compute tool rental agreements",
	Long: `Toolrent prices tool rentals: it counts the chargeable days of a rental
(skipping weekends or holidays depending on the tool), applies a discount,
and prints the resulting rental agreement.

By default, running toolrent without arguments launches the interactive TUI.
Use subcommands for CLI operations.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: launch TUI
		return launchTUI(cmd, args)
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetApp sets the app instance for commands to use
func SetApp(a *app.App) {
	appInstance = a
}

// ConfigPathFromArgs returns the --config value from raw arguments. The app is
// built before cobra parses flags, so main needs it early.
func ConfigPathFromArgs(args []string) string {
	for i, a := range args {
		switch {
		case a == "--":
			return ""
		case a == "--config" && i+1 < len(args):
			return args[i+1]
		case strings.HasPrefix(a, "--config="):
			return strings.TrimPrefix(a, "--config=")
		}
	}
	return ""
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/toolrent/config.yaml)")

	// Add all subcommands
	rootCmd.AddCommand(rentCmd)
	rootCmd.AddCommand(itemsCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(holidaysCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(tuiCmd)
}
