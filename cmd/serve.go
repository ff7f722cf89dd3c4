package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/huangsam/shsat/internal/contract"
	"github.com/huangsam/shsat/internal/httpapi"
	"github.com/spf13/cobra"
)

// serveCmd runs the JSON HTTP API.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve estimates over a JSON HTTP API.",
	Long: `Start an HTTP server exposing the estimator.

Routes:
  GET  /healthz
  GET  /api/estimate?math=40&ela=45
  POST /api/estimate   {"math": 40, "ela": 45}
  GET  /api/schools
  GET  /api/curve?curve=linear

Examples:
  shsat serve --addr :9090
  shsat serve --cors-origins http://localhost:3000`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		ctx, stop := signal.NotifyContext(rootCtx, os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := httpapi.Serve(ctx, cfg, historyManager); err != nil {
			contract.LogFatal("HTTP server failed", err)
		}
	},
}
