package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/pagelayout/pkg/server"
)

func serveCmd(load configLoader) *cobra.Command {
	var (
		port int
		host string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the preview server",
		Long: `Start an HTTP server that renders the page on every request.

Routes:
  GET /         the page
  GET /healthz  liveness probe
  GET /metrics  Prometheus metrics

Examples:
  pagelayout serve
  pagelayout serve --port=8080
  pagelayout serve --host=0.0.0.0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}

			// Apply command-line overrides
			if port > 0 {
				cfg.Server.Port = port
			}
			if host != "" {
				cfg.Server.Host = host
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			logger := newLogger(cfg)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			info(cmd.OutOrStdout(), "Serving %s", cfg.URL())
			return server.New(cfg, server.WithLogger(logger)).Run(ctx)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from pagelayout.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from pagelayout.json)")

	return cmd
}
