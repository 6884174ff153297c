package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the catalog database and its stored key",
	Long: `Delete the encrypted catalog database file and remove its password from the
system keyring. The next command that needs the database creates a fresh one
with the standard tools and asks for a new password.

Examples:
  toolrent reset          # Asks for confirmation
  toolrent reset --yes    # No confirmation`,
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		out := cmd.OutOrStdout()
		path := appInstance.Config.Database.Path

		if !yes && !confirmPrompt(cmd.InOrStdin(), out,
			fmt.Sprintf("This will delete the catalog database at %s. Continue?", path)) {
			fmt.Fprintln(out, "Cancelled.")
			return nil
		}

		// Release the file before removing it
		if err := appInstance.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}

		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to delete database: %w", err)
		}
		fmt.Fprintln(out, "✓ Catalog database deleted.")

		if err := appInstance.Keyring().DeleteKey(); err != nil {
			fmt.Fprintln(out, mutedStyle.Render(fmt.Sprintf("  Key not removed: %v", err)))
		} else {
			fmt.Fprintln(out, "✓ Stored key removed.")
		}
		return nil
	},
}

func confirmPrompt(in io.Reader, out io.Writer, message string) bool {
	fmt.Fprintf(out, "%s [y/N] ", message)
	reader := bufio.NewReader(in)
	input, err := reader.ReadString('\n')
	if err != nil && input == "" {
		return false
	}
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Skip confirmation")
}
