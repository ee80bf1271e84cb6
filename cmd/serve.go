package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/bnema/dsec/internal/adapters/httpapi"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd(app *app) *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the secret store over a local HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if listen == "" {
				listen = app.cfg.Server.Listen
			}

			gin.SetMode(gin.ReleaseMode)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			server := httpapi.NewServer(listen, httpapi.Options{
				Apps:           app.apps,
				Secrets:        app.secrets,
				Logger:         app.logger.Named("http"),
				MetricsEnabled: app.cfg.Metrics.Enabled,
			})

			app.logger.Info("serving secret store",
				zap.String("listen", listen),
				zap.String("storage_root", app.cfg.Storage.Root),
			)
			return server.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "Listen address (default from config server.listen)")

	return cmd
}
