package cmd

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/yungbote/recipegraph-backend/internal/app"
)

func init() {
	serveCmd.Flags().Bool("skip-bootstrap", false, "do not apply the schema or seed categories on startup")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		log, err := app.NewLogger(cfg)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		application, err := app.New(ctx, log, cfg)
		if err != nil {
			log.Error("init app failed", "error", err)
			log.Sync()
			return err
		}
		defer func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			application.Close(closeCtx)
		}()

		if skip, _ := cmd.Flags().GetBool("skip-bootstrap"); !skip {
			if err := application.Bootstrap(ctx); err != nil {
				log.Error("bootstrap failed", "error", err)
				return err
			}
		}
		return application.Run(ctx)
	},
}
