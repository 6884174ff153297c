package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	apihttp "github.com/andy/toolrent/internal/api/http"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the rental API over HTTP",
	Long: `Serve the rental calculator as a JSON API until interrupted.

Endpoints:
  GET  /health
  GET  /items
  GET  /items/:code
  GET  /holidays/:year
  POST /rentals         {"item_code", "rental_days", "discount_percent", "start_date"}`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		if addr == "" {
			addr = appInstance.Config.Server.Addr
		}

		if appInstance.Config.Log.Level != "debug" {
			gin.SetMode(gin.ReleaseMode)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		router := apihttp.NewRouter(appInstance.RentalService, appInstance.Log)
		return apihttp.Serve(ctx, addr, router, appInstance.Log)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (default from config, :8080)")
}
