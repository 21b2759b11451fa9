package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sartorproj/tempstats/internal/router"
	"github.com/sartorproj/tempstats/internal/services"
)

func newServeCommand(rt *runtime) *cobra.Command {
	var input inputFlags

	cmd := &cobra.Command{
		Use:   "serve [readings...]",
		Short: "Serve the series over an HTTP API",
		Long: `Serve keeps one series in memory and exposes it under /api/v1.
Initial readings may be given as arguments or with --file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			initial, err := input.load(rt, args)
			if err != nil {
				return err
			}
			svc, err := services.NewSeriesService(rt.logger, initial)
			if err != nil {
				return err
			}

			app := router.New(rt.logger, svc)
			addr := rt.cfg.Server.Address()

			errCh := make(chan error, 1)
			go func() {
				rt.logger.Info("Server listening", "address", addr, "readings", len(initial), "version", Version)
				errCh <- app.Listen(addr)
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(quit)

			select {
			case err := <-errCh:
				return err
			case <-quit:
			}

			rt.logger.Info("Shutting down server...")
			return app.Shutdown()
		},
	}

	input.register(cmd)
	return cmd
}
