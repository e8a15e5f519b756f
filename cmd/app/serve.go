package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	logadapter "standby-builder/internal/adapters/logger"
	"standby-builder/internal/adapters/server"
)

func newServeCommand() *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the validate, render and trigger HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Logs go to stdout and to websocket viewers on /logs.
			logBroadcaster := server.NewLogBroadcaster()
			a, err := newApp(logadapter.NewFanoutWriter(os.Stdout, logBroadcaster))
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("port") {
				port = a.cfg.HTTPPort
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			go logBroadcaster.Run(ctx)

			httpServer := server.NewHTTPServer(a.logger, a.service, logBroadcaster, port)
			go httpServer.Start()

			if a.cfg.DryRun() {
				a.logger.Warn("GITHUB_TOKEN not set, triggers run in dry-run mode")
			}

			<-ctx.Done()
			a.slogger.Info("Received signal, initiating shutdown...")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := httpServer.Stop(shutdownCtx); err != nil {
				a.slogger.Error("Failed to shutdown HTTP server gracefully", "error", err)
				return err
			}
			a.slogger.Info("Application finished successfully.")
			return nil
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 0, "listen port (default from HTTP_PORT)")
	return cmd
}
