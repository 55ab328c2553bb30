package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formwidget/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the form over HTTP with live validation",
	Long: `Serve the form at / with a websocket live validation channel at /live.
Posting the form without JavaScript re-renders it with the validation messages.
A JSON submission sink is served at /api/submissions, described by /openapi.json.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		addr := serveAddr
		if addr == "" {
			addr = cfg.Server.Addr
		}

		registry := prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)

		html, err := htmlRenderer()
		if err != nil {
			return err
		}
		srv, err := server.New(server.Config{
			Logger:    logger,
			HTML:      html,
			Submitter: submitter(),
			Registry:  registry,
		})
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return srv.Run(ctx, addr, cfg.Server.ReadHeaderTimeout)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (defaults to server.addr)")
}
