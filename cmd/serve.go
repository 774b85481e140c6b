package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/schedsim/schedsim/api"
)

// newServeCmd starts the HTTP simulation service.
func newServeCmd() *cobra.Command {
	var (
		addr string
		cfg  api.ServerConfig
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve simulations over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			srv := api.NewServer(cfg)
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() { errCh <- srv.Listen(addr) }()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
				logrus.Info("shutting down")
				return srv.Shutdown()
			}
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":9095", "Listen address")
	cmd.Flags().IntVar(&cfg.CacheSize, "cache-size", api.DefaultCacheSize, "Number of simulation results to cache")
	return cmd
}
