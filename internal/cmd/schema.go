package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/yungbote/recipegraph-backend/internal/app"
	"github.com/yungbote/recipegraph-backend/internal/data/graph"
	"github.com/yungbote/recipegraph-backend/internal/services"
)

func init() {
	schemaCmd.Flags().Bool("seed", true, "seed the default categories")
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Apply Neo4j constraints and the description full-text index",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		log, err := app.NewLogger(cfg)
		if err != nil {
			return err
		}
		defer log.Sync()

		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		client, _, err := app.OpenStore(ctx, log, cfg)
		if err != nil {
			return err
		}
		defer func() { _ = client.Close(context.Background()) }()

		if err := graph.ApplySchema(ctx, client, log); err != nil {
			return err
		}
		if seed, _ := cmd.Flags().GetBool("seed"); seed {
			categories := services.NewCategoryService(log, graph.NewCategoryRepo(client, log))
			if err := categories.SeedDefaults(ctx); err != nil {
				return err
			}
		}
		log.Info("schema applied")
		return nil
	},
}
