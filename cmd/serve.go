package cmd

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Max-Nicolai/MindPath/internal/jobs"
)

const defaultServeAddr = ":8000"

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the job-search proxy server",
	Long:  "Starts an HTTP server exposing GET /api/jobs, so browser or mobile clients can query postings without holding the provider API key.",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		if addr == "" {
			addr = os.Getenv("MINDPATH_SERVE_ADDR")
		}
		if addr == "" {
			addr = defaultServeAddr
		}

		log, err := zap.NewProduction()
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer log.Sync()

		if os.Getenv("THEIRSTACK_API_KEY") == "" {
			log.Warn("THEIRSTACK_API_KEY not set; /api/jobs will return empty lists")
		}

		srv := &http.Server{
			Addr:              addr,
			Handler:           jobs.NewServer(jobs.NewTheirStack(), log).Handler(),
			ReadHeaderTimeout: 5 * time.Second,
		}

		log.Info("listening", zap.String("addr", addr))
		return srv.ListenAndServe()
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides MINDPATH_SERVE_ADDR, default :8000)")
}
